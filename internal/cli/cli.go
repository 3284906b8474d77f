// Package cli builds the cobra command tree for gffx.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gffx/internal/config"
	"gffx/internal/version"
)

// Options holds the extract command's flag values.
type Options struct {
	SourceGFF string
	Type      string
	Attribute string
	Value     string
	LineWidth int
	Verbose   bool
}

// Validate checks flag values before the pipeline runs.
func (o Options) Validate() error {
	switch {
	case o.SourceGFF == "":
		return errors.New("--source-gff is required")
	case o.Type == "":
		return errors.New("--type is required")
	case o.Attribute == "":
		return errors.New("--attribute is required")
	case o.Value == "":
		return errors.New("--value is required")
	}
	if o.LineWidth < 1 {
		return fmt.Errorf("--line-width must be >= 1, got %d", o.LineWidth)
	}
	return nil
}

// NewRootCmd returns the root command with the extract subcommand attached.
// run is invoked with validated options; cfg supplies flag defaults.
func NewRootCmd(cfg config.Config, run func(Options) error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gffx",
		Short:         "Extract feature sequences from GFF3 annotation files",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var opts Options
	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract one feature's nucleotide sequence as FASTA",
		Long: `Locate a single feature by type and attribute key/value in a GFF3 file
with an embedded ##FASTA block, slice its coordinate range out of the named
sequence region, and print the result as a FASTA record. Features on the
negative strand are reverse complemented.

Exactly one feature must match; zero or multiple matches fail the run.`,
		Example:                    "  gffx extract --source-gff genome.gff --type gene --attribute ID --value YAL069W",
		SuggestionsMinimumDistance: 2,
		Args:                       cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return run(opts)
		},
	}

	extractCmd.Flags().StringVarP(&opts.SourceGFF, "source-gff", "s", "", "path to the GFF3 file ('-' for stdin, .gz accepted)")
	extractCmd.Flags().StringVarP(&opts.Type, "type", "t", "", "feature type to match (e.g. gene, mRNA)")
	extractCmd.Flags().StringVarP(&opts.Attribute, "attribute", "a", "", "attribute key to match (e.g. ID, Name)")
	extractCmd.Flags().StringVarP(&opts.Value, "value", "l", "", "attribute value to match (e.g. YAL069W)")
	extractCmd.Flags().IntVarP(&opts.LineWidth, "line-width", "w", cfg.Output.LineWidth, "sequence characters per output line")
	extractCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", cfg.Verbose, "log debug diagnostics to stderr")

	rootCmd.AddCommand(extractCmd)
	return rootCmd
}
