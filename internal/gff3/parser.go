package gff3

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const fastaMarker = "##FASTA"

// ParseFile opens path ("-" for stdin, .gz accepted) and parses it.
func ParseFile(path string) (*ParseResult, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc)
}

// Parse reads a GFF3 document from r. Annotation lines are parsed until a
// ##FASTA marker, after which every line belongs to the sequence section.
func Parse(r io.Reader) (*ParseResult, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	res := &ParseResult{Regions: make(map[string]string)}
	var (
		current string
		seqs    = make(map[string]*strings.Builder)
		lineNo  int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if res.sawFASTA {
			if line == "" {
				continue
			}
			if line[0] == '>' {
				current = parseRegionName(line[1:])
				if _, ok := seqs[current]; !ok {
					seqs[current] = &strings.Builder{}
				}
				continue
			}
			// Sequence data before any '>' header has no region to join.
			if current == "" {
				continue
			}
			seqs[current].WriteString(stripSpace(line))
			continue
		}

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, fastaMarker) {
			res.sawFASTA = true
			continue
		}
		if line[0] == '#' {
			continue
		}
		f, err := parseRecord(line, lineNo)
		if err != nil {
			return nil, err
		}
		res.Features = append(res.Features, f)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gff3 scan: %w", err)
	}

	for name, b := range seqs {
		res.Regions[name] = b.String()
	}
	return res, nil
}

func parseRecord(line string, lineNo int) (Feature, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != numCols {
		return Feature{}, fmt.Errorf("line %d: %w: %d columns, want %d", lineNo, ErrMalformedRecord, len(cols), numCols)
	}
	start, err := strconv.Atoi(cols[colStart])
	if err != nil {
		return Feature{}, fmt.Errorf("line %d: %w: start %q is not an integer", lineNo, ErrMalformedRecord, cols[colStart])
	}
	end, err := strconv.Atoi(cols[colEnd])
	if err != nil {
		return Feature{}, fmt.Errorf("line %d: %w: end %q is not an integer", lineNo, ErrMalformedRecord, cols[colEnd])
	}
	if start > end {
		return Feature{}, fmt.Errorf("line %d: %w: start %d > end %d", lineNo, ErrMalformedRecord, start, end)
	}
	attrs, err := parseAttributes(cols[colAttributes])
	if err != nil {
		return Feature{}, fmt.Errorf("line %d: %w", lineNo, err)
	}
	return Feature{
		SeqID:      cols[colSeqID],
		Source:     cols[colSource],
		Type:       cols[colType],
		Start:      start,
		End:        end,
		Score:      cols[colScore],
		Strand:     cols[colStrand],
		Phase:      cols[colPhase],
		Attributes: attrs,
	}, nil
}

func parseAttributes(field string) (Attributes, error) {
	var attrs Attributes
	for _, entry := range strings.Split(field, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return Attributes{}, fmt.Errorf("%w: entry %q has no '='", ErrMalformedAttributes, entry)
		}
		attrs.Set(key, value)
	}
	return attrs, nil
}

// parseRegionName extracts the region name from a FASTA header: the text up
// to the first whitespace.
func parseRegionName(hdr string) string {
	hdr = strings.TrimSpace(hdr)
	if i := strings.IndexAny(hdr, " \t"); i >= 0 {
		return hdr[:i]
	}
	return hdr
}

// stripSpace removes all whitespace from a sequence line.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			return -1
		}
		return r
	}, s)
}
