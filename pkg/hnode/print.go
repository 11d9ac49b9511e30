package hnode

import (
	"bytes"
	"io"
	"os"

	"github.com/akinomyoga/oil/pkg/pretty"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// ttyWriter lets a sink report its own terminal-ness, per the writer
// contract of spec.md §6.2. An *os.File is checked through its Fd()
// instead; anything else is treated as non-interactive.
type ttyWriter interface {
	IsTerminal() bool
}

func isTerminal(w io.Writer) bool {
	if tw, ok := w.(ttyWriter); ok {
		return tw.IsTerminal()
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Options configures HNodePrettyPrint beyond the (node, writer, max_width)
// baseline of spec.md §6.1.
type Options struct {
	// MaxWidth is the target line width. Zero means 80.
	MaxWidth int
	// Indent overrides the encoder's per-level indent. Zero means 2,
	// matching the original runtime's _HNodePrettyPrint, which calls
	// SetIndent(2) rather than relying on the encoder's own default of 4.
	Indent int
	// MaxTabularWidth overrides the encoder's tabular-column threshold.
	// Zero means 22.
	MaxTabularWidth int
	// UseStyles overrides the isatty-derived default when non-nil.
	UseStyles *bool
	// PerfStats, when true, logs the node and doc counts before printing
	// and the printer's MaxStack after printing.
	PerfStats bool
	// DocDebug, when true, pretty-prints the document's own tree before
	// the real output.
	DocDebug bool
	// Logger receives PerfStats output. Defaults to logrus.StandardLogger().
	Logger logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.MaxWidth == 0 {
		o.MaxWidth = 80
	}
	if o.Indent == 0 {
		o.Indent = 2
	}
	if o.MaxTabularWidth == 0 {
		o.MaxTabularWidth = 22
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}

// HNodePrettyPrint prints node to w, appending a trailing newline. Styles
// default to on when w is a terminal and github.com/fatih/color's own
// NO_COLOR/dumb-terminal heuristic doesn't veto it; Options.UseStyles
// overrides both.
func HNodePrettyPrint(node Node, w io.Writer, opts Options) error {
	opts = opts.withDefaults()

	useStyles := isTerminal(w) && !color.NoColor
	if opts.UseStyles != nil {
		useStyles = *opts.UseStyles
	}

	if opts.PerfStats {
		opts.Logger.WithField("hnode_count", Count(node)).Info("___ HNODE COUNT")
	}

	enc := NewEncoder()
	enc.SetUseStyles(useStyles)
	enc.SetIndent(opts.Indent)
	enc.SetMaxTabularWidth(opts.MaxTabularWidth)
	d := enc.HNode(node)

	if opts.DocDebug {
		debugOpts := opts
		debugOpts.DocDebug = false
		if err := printTree(d.PrettyTree(), w, debugOpts); err != nil {
			return err
		}
	}
	if opts.PerfStats {
		opts.Logger.WithField("doc_count", pretty.DocCount(d)).Info("___ DOC COUNT")
	}

	printer := pretty.NewPrinter(opts.MaxWidth)
	var buf bytes.Buffer
	if err := printer.PrintDoc(d, &buf); err != nil {
		return errors.Wrapf(err, "hnode: print document")
	}
	buf.WriteByte('\n')
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "hnode: write output")
	}

	if opts.PerfStats {
		opts.Logger.WithField("max_stack", printer.MaxStack).Info("___ GC: after printing")
	}
	return nil
}

// printTree prints a debug document (already a pretty.MeasuredDoc, not an
// hnode.Node) using the same width/writer as the real print call.
func printTree(d pretty.MeasuredDoc, w io.Writer, opts Options) error {
	printer := pretty.NewPrinter(opts.MaxWidth)
	var buf bytes.Buffer
	if err := printer.PrintDoc(d, &buf); err != nil {
		return errors.Wrapf(err, "hnode: print debug tree")
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return errors.Wrapf(err, "hnode: write debug tree")
}
