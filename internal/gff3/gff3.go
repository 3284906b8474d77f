// Package gff3 reads GFF3 annotation files with an embedded FASTA section.
// It parses only as much of the format as feature extraction needs: the nine
// tab-delimited annotation columns, `key=value;` attributes, and the sequence
// regions following a ##FASTA marker.
package gff3

// Column indices of the tab-delimited annotation fields.
// http://www.sequenceontology.org/gff3.shtml
const (
	colSeqID = iota
	colSource
	colType
	colStart
	colEnd
	colScore
	colStrand
	colPhase
	colAttributes
	numCols
)

// Feature is one annotated interval. Coordinates are 1-based inclusive with
// Start <= End. Features are immutable once parsed.
type Feature struct {
	SeqID      string
	Source     string
	Type       string
	Start      int
	End        int
	Score      string
	Strand     string
	Phase      string
	Attributes Attributes
}

// Attributes is an insertion-ordered key→value mapping. Keys are unique; a
// later duplicate overwrites the earlier value in place.
type Attributes struct {
	keys   []string
	values map[string]string
}

// Set stores value under key, overwriting any earlier value.
func (a *Attributes) Set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Keys returns the attribute keys in insertion order.
func (a *Attributes) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Len returns the number of stored attributes.
func (a *Attributes) Len() int { return len(a.keys) }

// ParseResult is one parsed GFF3 document: the annotation features in file
// order plus the named sequence regions from the ##FASTA section.
type ParseResult struct {
	Features []Feature
	Regions  map[string]string

	sawFASTA bool
}

// HasFASTA reports whether a ##FASTA marker was seen, regardless of whether
// any regions followed it.
func (r *ParseResult) HasFASTA() bool { return r.sawFASTA }

// Region returns the concatenated nucleotide string for a named region.
func (r *ParseResult) Region(name string) (string, bool) {
	s, ok := r.Regions[name]
	return s, ok
}
