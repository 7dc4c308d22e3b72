package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"xmlstring/internal/logger"
)

type rootOptions struct {
	quiet     bool
	jobs      int
	logLevel  string
	logFormat string
}

// NewRootCommand builds the isxml command reading files from fs and "-" from stdin.
func NewRootCommand(fs afero.Fs, stdin io.Reader) *cobra.Command {
	logCfg := logger.DefaultConfig()
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "isxml [file ...]",
		Short: "Report whether inputs look like XML",
		Long: `Report whether each input looks like an XML document.

An input looks like XML when its first byte is '<'. Leading whitespace and
byte order marks are not skipped. With no arguments, or with "-", standard
input is checked.

Exit status is 0 when every input looks like XML, 1 when at least one does
not, and 2 when an input cannot be read.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs)
			}

			logCfg.Level = opts.logLevel
			logCfg.Format = opts.logFormat

			s := &sniffer{
				fs:    fs,
				stdin: stdin,
				log:   logger.NewLogger(logCfg, cmd.ErrOrStderr()),
			}

			if len(args) == 0 {
				args = []string{stdinArg}
			}

			return report(cmd.OutOrStdout(), s.sniffAll(args, opts.jobs), opts.quiet)
		},
	}

	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Print nothing, only set the exit status")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 4, "Number of inputs checked concurrently")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", logCfg.Level, "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", logCfg.Format, "Log format (text or json)")

	return cmd
}

// report prints results in input order and folds them into the command error.
func report(w io.Writer, results []result, quiet bool) error {
	var failed, notXML int

	for _, res := range results {
		switch {
		case res.err != nil:
			failed++
		case !res.xml:
			notXML++
		}

		if quiet {
			continue
		}

		if res.err != nil {
			fmt.Fprintf(w, "%s: error: %v\n", res.name, res.err)
		} else {
			fmt.Fprintf(w, "%s: %t\n", res.name, res.xml)
		}
	}

	switch {
	case failed > 0:
		return ExitWithCode(ExitFailure, fmt.Errorf("%d of %d inputs could not be read", failed, len(results)))
	case notXML > 0:
		return ExitWithCode(ExitNotXML, ErrNotXML)
	default:
		return nil
	}
}

// Execute runs the isxml command against the real filesystem and standard streams.
func Execute() error {
	return NewRootCommand(afero.NewOsFs(), os.Stdin).Execute()
}
