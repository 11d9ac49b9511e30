package pretty

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// docFragment is one entry of the printer's working stack: a doc to
// render, the indentation level it inherits, whether its enclosing group
// decided flat or broken, and the measure of everything that follows it
// within its enclosing Concat (needed to evaluate _Fits for embedded
// Groups).
type docFragment struct {
	mdoc    MeasuredDoc
	indent  int
	isFlat  bool
	measure Measure
}

// Printer renders a MeasuredDoc to a byte stream, choosing per Group
// whether to lay it out flat or broken so that lines fit MaxWidth
// whenever possible. A Printer is single-use: construct one, call
// PrintDoc once.
type Printer struct {
	MaxWidth int

	// MaxStack is the high-water mark of the fragment stack depth,
	// populated after PrintDoc returns.
	MaxStack int
}

// NewPrinter returns a Printer targeting the given maximum line width.
func NewPrinter(maxWidth int) *Printer {
	return &Printer{MaxWidth: maxWidth}
}

// fits reports whether group, rendered flat, plus whatever comes after it
// (suffix), stays within MaxWidth starting at column prefixLen.
func (p *Printer) fits(prefixLen int, group MeasuredDoc, suffix Measure) bool {
	m := concatMeasure(flatten(group.Measure), suffix)
	return prefixLen+suffixLen(m) <= p.MaxWidth
}

// PrintDoc renders document to w, writing indentation as literal spaces.
// It is a single left-to-right pass over an explicit LIFO stack rather
// than recursion, so that deeply nested arrays don't blow the Go call
// stack — only the (heap-allocated) fragment stack grows.
func (p *Printer) PrintDoc(document MeasuredDoc, w io.Writer) error {
	prefixLen := 0
	fragments := []docFragment{{mdoc: Group(document), indent: 0, isFlat: false, measure: emptyMeasure()}}
	p.MaxStack = len(fragments)

	var spaces string
	writeSpaces := func(n int) error {
		if len(spaces) < n {
			spaces = strings.Repeat(" ", n)
		}
		_, err := io.WriteString(w, spaces[:n])
		return err
	}

	for len(fragments) > 0 {
		if len(fragments) > p.MaxStack {
			p.MaxStack = len(fragments)
		}
		frag := fragments[len(fragments)-1]
		fragments = fragments[:len(fragments)-1]

		switch d := frag.mdoc.doc.(type) {
		case textDoc:
			if _, err := io.WriteString(w, d.s); err != nil {
				return errors.Wrapf(err, "pretty: write text")
			}
			prefixLen += frag.mdoc.Measure.Flat

		case breakDoc:
			if frag.isFlat {
				if _, err := io.WriteString(w, d.s); err != nil {
					return errors.Wrapf(err, "pretty: write break")
				}
				prefixLen += frag.mdoc.Measure.Flat
			} else {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return errors.Wrapf(err, "pretty: write newline")
				}
				if err := writeSpaces(frag.indent); err != nil {
					return errors.Wrapf(err, "pretty: write indent")
				}
				prefixLen = frag.indent
			}

		case indentDoc:
			fragments = append(fragments, docFragment{
				mdoc:    d.child,
				indent:  frag.indent + d.k,
				isFlat:  frag.isFlat,
				measure: frag.measure,
			})

		case concatDoc:
			measure := frag.measure
			for i := len(d.children) - 1; i >= 0; i-- {
				child := d.children[i]
				fragments = append(fragments, docFragment{
					mdoc:    child,
					indent:  frag.indent,
					isFlat:  frag.isFlat,
					measure: measure,
				})
				measure = concatMeasure(child.Measure, measure)
			}

		case groupDoc:
			// A group inside a flat parent (e.g. under Flat) stays flat.
			isFlat := p.fits(prefixLen, d.child, frag.measure) || frag.isFlat
			fragments = append(fragments, docFragment{
				mdoc:    d.child,
				indent:  frag.indent,
				isFlat:  isFlat,
				measure: frag.measure,
			})

		case ifFlatDoc:
			sub := d.nonFlatCase
			if frag.isFlat {
				sub = d.flatCase
			}
			fragments = append(fragments, docFragment{
				mdoc:    sub,
				indent:  frag.indent,
				isFlat:  frag.isFlat,
				measure: frag.measure,
			})

		case flatDoc:
			fragments = append(fragments, docFragment{
				mdoc:    d.child,
				indent:  frag.indent,
				isFlat:  true,
				measure: frag.measure,
			})

		default:
			unhandledDoc(d)
		}
	}
	return nil
}
