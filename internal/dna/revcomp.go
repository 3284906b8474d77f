// Package dna holds nucleotide-level sequence operations.
package dna

import "fmt"

// InvalidNucleotideError reports a byte outside the A/C/G/T/N alphabet.
// Pos is the 1-based position of the byte within the offending sequence.
type InvalidNucleotideError struct {
	Char byte
	Pos  int
}

func (e *InvalidNucleotideError) Error() string {
	return fmt.Sprintf("invalid nucleotide %q at position %d", e.Char, e.Pos)
}

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['N'] = 'N'
	complement['a'] = 't'
	complement['t'] = 'a'
	complement['c'] = 'g'
	complement['g'] = 'c'
	complement['n'] = 'n'
}

// RevComp returns the reverse complement of seq. Complementation is
// case-preserving and restricted to A/C/G/T/N; anything else yields an
// *InvalidNucleotideError.
func RevComp(seq string) (string, error) {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			return "", &InvalidNucleotideError{Char: b, Pos: n - i}
		}
		out[i] = c
	}
	return string(out), nil
}
