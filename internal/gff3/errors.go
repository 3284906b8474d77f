package gff3

import "errors"

// Failure kinds for one extraction run. All are terminal; callers wrap them
// with context and test with errors.Is.
var (
	// ErrMalformedRecord marks an annotation line with the wrong column
	// count or invalid coordinates.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMalformedAttributes marks an attribute entry without a '='.
	ErrMalformedAttributes = errors.New("malformed attributes")

	// ErrNoFastaSection is returned when sequence extraction is attempted
	// but the file never contained a ##FASTA marker.
	ErrNoFastaSection = errors.New("no ##FASTA section in input")

	// ErrNoMatch means zero features satisfied the type/attribute filter.
	ErrNoMatch = errors.New("no matching feature")

	// ErrAmbiguous means more than one feature satisfied the filter.
	ErrAmbiguous = errors.New("ambiguous match")

	// ErrUnknownRegion means a feature's seqid has no FASTA entry.
	ErrUnknownRegion = errors.New("unknown sequence region")

	// ErrOutOfRange means feature coordinates fall outside the region.
	ErrOutOfRange = errors.New("coordinates out of range")
)
