// Package output renders extracted sequences as FASTA records.
package output

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// DefaultLineWidth is the conventional FASTA wrap width.
const DefaultLineWidth = 60

// Header builds the record header for one extraction request:
// {type}:{attribute}:{value}, literal values, colon-delimited.
func Header(typ, attribute, value string) string {
	return fmt.Sprintf("%s:%s:%s", typ, attribute, value)
}

// WriteFASTA writes one record to w with the sequence wrapped at width
// characters per line. The header line is never wrapped.
func WriteFASTA(w io.Writer, header, seq string, width int) error {
	if width < 1 {
		return fmt.Errorf("line width must be >= 1, got %d", width)
	}
	s := linear.NewSeq(header, alphabet.BytesToLetters([]byte(seq)), alphabet.DNA)
	fw := fasta.NewWriter(w, width)
	if _, err := fw.Write(s); err != nil {
		return fmt.Errorf("write FASTA record: %w", err)
	}
	return nil
}
