// Package extract slices a located feature's coordinate range out of its
// parsed sequence region, reverse-complementing on the negative strand.
package extract

import (
	"fmt"

	"gffx/internal/dna"
	"gffx/internal/gff3"
)

// Sequence returns the nucleotide subsequence covered by f. Strand "-" yields
// the reverse complement of the slice; "+", "." and "?" yield the slice as-is.
func Sequence(res *gff3.ParseResult, f *gff3.Feature) (string, error) {
	if !res.HasFASTA() {
		return "", gff3.ErrNoFastaSection
	}
	region, ok := res.Region(f.SeqID)
	if !ok {
		return "", fmt.Errorf("%w: %q has no FASTA entry", gff3.ErrUnknownRegion, f.SeqID)
	}
	if f.Start < 1 || f.End > len(region) {
		return "", fmt.Errorf("%w: %d-%d outside region %q (length %d)",
			gff3.ErrOutOfRange, f.Start, f.End, f.SeqID, len(region))
	}
	seq := region[f.Start-1 : f.End]
	if f.Strand == "-" {
		return dna.RevComp(seq)
	}
	return seq, nil
}
