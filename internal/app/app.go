// Package app wires configuration, flag parsing, and the extraction pipeline
// behind an exit-code-returning entry point that main can call directly and
// tests can call with buffers.
package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"gffx/internal/cli"
	"gffx/internal/config"
	"gffx/internal/pipeline"
)

// Exit codes. Usage errors are distinguished from run failures so scripts can
// tell a bad invocation from a bad input file.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Run executes one invocation and returns its exit code. FASTA output goes
// to stdout, diagnostics and error messages to stderr.
func Run(argv []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	ran := false
	root := cli.NewRootCmd(cfg, func(opts cli.Options) error {
		ran = true
		logger := log.New(stderr)
		logger.SetLevel(log.WarnLevel)
		if opts.Verbose {
			logger.SetLevel(log.DebugLevel)
		}
		return pipeline.Run(pipeline.Options{
			SourceGFF: opts.SourceGFF,
			Type:      opts.Type,
			Attribute: opts.Attribute,
			Value:     opts.Value,
			LineWidth: opts.LineWidth,
		}, outw, logger)
	})
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		if !ran {
			return ExitUsage
		}
		return ExitFailure
	}
	if err := outw.Flush(); isBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}
	return ExitOK
}
