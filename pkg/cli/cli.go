// Package cli implements the hnode-print command-line interface: it reads
// a tree described in a small JSON surface form and renders it with
// pkg/hnode's pretty-printer.
package cli

import (
	"io"
	"os"

	"github.com/akinomyoga/oil/pkg/hnode"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flags struct {
	width           int
	noColor         bool
	perfStats       bool
	docDebug        bool
	indent          int
	maxTabularWidth int
}

var printCmd = &cobra.Command{
	Use:   "hnode-print [file]",
	Short: "pretty-print a tree described in hnode's JSON surface form",
	Long: `
Reads a tree described in hnode's small JSON surface form (tagged
leaf/array/record/already_seen objects) from a file argument, or from
stdin if no file is given, and renders it with the measured-document
pretty-printer.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func init() {
	cobra.EnableCommandSorting = false

	f := printCmd.Flags()
	f.IntVar(&flags.width, "width", 80, "maximum line width the printer tries to respect")
	f.BoolVar(&flags.noColor, "no-color", false, "force styling off regardless of terminal detection")
	f.BoolVar(&flags.perfStats, "perf-stats", false, "log node/doc counts and the printer's max stack depth")
	f.BoolVar(&flags.docDebug, "doc-debug", false, "print the document's own tree shape before the real output")
	f.IntVar(&flags.indent, "indent", 2, "indentation step in spaces")
	f.IntVar(&flags.maxTabularWidth, "max-tabular-width", 22, "width threshold below which short arrays render as padded columns")
}

func runPrint(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "cli: open %s", args[0])
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "cli: read input")
	}

	node, err := hnode.DecodeJSON(data)
	if err != nil {
		return errors.Wrapf(err, "cli: decode tree")
	}

	opts := hnode.Options{
		MaxWidth:        flags.width,
		Indent:          flags.indent,
		MaxTabularWidth: flags.maxTabularWidth,
		PerfStats:       flags.perfStats,
		DocDebug:        flags.docDebug,
		Logger:          logrus.StandardLogger(),
	}
	if flags.noColor {
		useStyles := false
		opts.UseStyles = &useStyles
	} else if color.NoColor {
		useStyles := false
		opts.UseStyles = &useStyles
	}

	if err := hnode.HNodePrettyPrint(node, os.Stdout, opts); err != nil {
		return errors.Wrapf(err, "cli: print")
	}
	return nil
}

// Main is the CLI's entry point, called from cmd/hnode-print's two-line
// main function.
func Main() {
	if err := printCmd.Execute(); err != nil {
		logrus.StandardLogger().WithError(err).Error("hnode-print failed")
		os.Exit(1)
	}
}
