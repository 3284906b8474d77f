package pipeline

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"gffx/internal/gff3"
)

const fixture = `##gff-version 3
chrI	.	gene	2	5	.	+	.	ID=fwd
chrI	.	gene	2	5	.	-	.	ID=rev
chrI	.	gene	2	50	.	+	.	ID=far
##FASTA
>chrI
AACCGGTTAA
`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.gff")
	if err := os.WriteFile(path, []byte(fixture), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func quiet() *log.Logger { return log.New(io.Discard) }

func TestRunForward(t *testing.T) {
	var out bytes.Buffer
	err := Run(Options{
		SourceGFF: writeFixture(t),
		Type:      "gene", Attribute: "ID", Value: "fwd",
		LineWidth: 60,
	}, &out, quiet())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != ">gene:ID:fwd\nACCG\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRunReverse(t *testing.T) {
	var out bytes.Buffer
	err := Run(Options{
		SourceGFF: writeFixture(t),
		Type:      "gene", Attribute: "ID", Value: "rev",
		LineWidth: 60,
	}, &out, quiet())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// Reverse complement of ACCG.
	if got := out.String(); got != ">gene:ID:rev\nCGGT\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRunFailureWritesNothing(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  error
	}{
		{"no match", "absent", gff3.ErrNoMatch},
		{"out of range", "far", gff3.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(Options{
				SourceGFF: writeFixture(t),
				Type:      "gene", Attribute: "ID", Value: tc.value,
				LineWidth: 60,
			}, &out, quiet())
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if out.Len() != 0 {
				t.Errorf("partial output on failure: %q", out.String())
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := Run(Options{
		SourceGFF: filepath.Join(t.TempDir(), "absent.gff"),
		Type:      "gene", Attribute: "ID", Value: "fwd",
		LineWidth: 60,
	}, &out, quiet())
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if out.Len() != 0 {
		t.Errorf("partial output on failure: %q", out.String())
	}
}
