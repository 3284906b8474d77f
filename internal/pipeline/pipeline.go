// Package pipeline drives one extraction run: parse → locate → extract →
// format. Each stage either succeeds or aborts the run; the formatted record
// is built in full before anything reaches the output writer, so a failed
// run emits no partial output.
package pipeline

import (
	"bytes"
	"io"

	"github.com/charmbracelet/log"

	"gffx/internal/extract"
	"gffx/internal/gff3"
	"gffx/internal/output"
)

// Options are the parameters of one extraction run.
type Options struct {
	SourceGFF string
	Type      string
	Attribute string
	Value     string
	LineWidth int
}

// Run executes the pipeline and writes the FASTA record to w.
func Run(opts Options, w io.Writer, logger *log.Logger) error {
	res, err := gff3.ParseFile(opts.SourceGFF)
	if err != nil {
		return err
	}
	logger.Debug("parsed annotation", "features", len(res.Features), "regions", len(res.Regions))

	feat, err := gff3.Locate(res.Features, opts.Type, opts.Attribute, opts.Value)
	if err != nil {
		return err
	}
	logger.Debug("located feature",
		"seqid", feat.SeqID, "start", feat.Start, "end", feat.End, "strand", feat.Strand)

	seq, err := extract.Sequence(res, feat)
	if err != nil {
		return err
	}
	logger.Debug("extracted sequence", "length", len(seq))

	var buf bytes.Buffer
	header := output.Header(opts.Type, opts.Attribute, opts.Value)
	if err := output.WriteFASTA(&buf, header, seq, opts.LineWidth); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}
