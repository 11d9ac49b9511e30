package hnode

import (
	"strings"

	"github.com/akinomyoga/oil/pkg/ansi"
	"github.com/akinomyoga/oil/pkg/hexutil"
	"github.com/akinomyoga/oil/pkg/j8lite"
	"github.com/akinomyoga/oil/pkg/pretty"
	"github.com/cockroachdb/errors"
)

// Encoder translates Node trees into pretty.MeasuredDoc values, applying
// the layout heuristics of spec.md §4.4: surrounding delimiters, joining
// siblings, and tabular column alignment for short arrays.
//
// An Encoder holds mutable configuration and is not safe to share across
// goroutines; the documents it produces are immutable and safe to read
// concurrently once built.
type Encoder struct {
	indent          int
	useStyles       bool
	maxTabularWidth int

	// visiting exists for future use or for Encoder subclasses, mirroring
	// the original BaseEncoder — the encoder itself never reads it; cycle
	// breaking is the producer's responsibility via AlreadySeen.
	visiting map[int]bool

	typeColor  string
	fieldColor string
}

// NewEncoder returns an Encoder with the library defaults: 4-space
// indent, styles on, tabular width 22.
func NewEncoder() *Encoder {
	return &Encoder{
		indent:          4,
		useStyles:       true,
		maxTabularWidth: 22,
		visiting:        map[int]bool{},
		typeColor:       ansi.Yellow,
		fieldColor:      ansi.Magenta,
	}
}

// SetIndent sets the indentation step in spaces.
func (e *Encoder) SetIndent(n int) { e.indent = n }

// SetUseStyles toggles ANSI escape emission.
func (e *Encoder) SetUseStyles(b bool) { e.useStyles = b }

// SetMaxTabularWidth sets the threshold below which short-item arrays
// render in padded columns when broken.
func (e *Encoder) SetMaxTabularWidth(n int) { e.maxTabularWidth = n }

// Styled wraps mdoc between style and ansi.Reset when styles are on,
// otherwise returns mdoc unchanged. Exposed for encoders built on top of
// Encoder that style an already-built sub-document rather than a single
// leaf string (styledAscii below is the fast path for that common case).
func (e *Encoder) Styled(style string, mdoc pretty.MeasuredDoc) pretty.MeasuredDoc {
	if !e.useStyles {
		return mdoc
	}
	return pretty.Concat(pretty.Text(style), mdoc, pretty.Text(ansi.Reset))
}

// styledAscii wraps s in style escapes for its rendered text, but the
// resulting MeasuredDoc's Measure.Flat is always len(s): styled escapes
// must never count toward layout width.
func (e *Encoder) styledAscii(style, s string) pretty.MeasuredDoc {
	text := s
	if e.useStyles {
		text = style + s + ansi.Reset
	}
	return pretty.RawText(text, len(s))
}

func (e *Encoder) surrounded(left string, mdoc pretty.MeasuredDoc, right string) pretty.MeasuredDoc {
	return pretty.Group(pretty.Concat(
		pretty.Text(left),
		pretty.Indent(e.indent, pretty.Concat(pretty.Break(""), mdoc)),
		pretty.Break(""),
		pretty.Text(right),
	))
}

func (e *Encoder) surroundedAndPrefixed(
	left string, prefix pretty.MeasuredDoc, sep string, mdoc pretty.MeasuredDoc, right string,
) pretty.MeasuredDoc {
	return pretty.Group(pretty.Concat(
		pretty.Text(left),
		prefix,
		pretty.Indent(e.indent, pretty.Concat(pretty.Break(sep), mdoc)),
		pretty.Break(""),
		pretty.Text(right),
	))
}

func (e *Encoder) join(items []pretty.MeasuredDoc, sep, space string) pretty.MeasuredDoc {
	seq := make([]pretty.MeasuredDoc, 0, len(items)*2)
	for i, item := range items {
		if i != 0 {
			seq = append(seq, pretty.Text(sep), pretty.Break(space))
		}
		seq = append(seq, item)
	}
	return pretty.Concat(seq...)
}

// tabular column-aligns items when they're short enough (spec.md §4.4):
// if the widest flat item plus the separator and a space fits under
// maxTabularWidth, the broken form pads every item but the last to a
// common column, while the flat form stays a plain join. The choice
// between the two is left to the printer via Group(IfFlat(...)), not
// decided here.
func (e *Encoder) tabular(items []pretty.MeasuredDoc, sep string) pretty.MeasuredDoc {
	if len(items) == 0 {
		return pretty.Text("")
	}
	maxFlatLen := 0
	nonTabSeq := make([]pretty.MeasuredDoc, 0, len(items)*2)
	for i, item := range items {
		if i != 0 {
			nonTabSeq = append(nonTabSeq, pretty.Text(sep), pretty.Break(" "))
		}
		nonTabSeq = append(nonTabSeq, item)
		if item.Measure.Flat > maxFlatLen {
			maxFlatLen = item.Measure.Flat
		}
	}
	nonTabular := pretty.Concat(nonTabSeq...)

	if maxFlatLen+len(sep)+1 > e.maxTabularWidth {
		return nonTabular
	}

	tabSeq := make([]pretty.MeasuredDoc, 0, len(items)*3)
	for i, item := range items {
		tabSeq = append(tabSeq, pretty.Flat(item))
		if i != len(items)-1 {
			padding := maxFlatLen - item.Measure.Flat + 1
			tabSeq = append(tabSeq, pretty.Text(sep), pretty.Group(pretty.Break(strings.Repeat(" ", padding))))
		}
	}
	tabular := pretty.Concat(tabSeq...)
	return pretty.Group(pretty.IfFlat(nonTabular, tabular))
}

func (e *Encoder) colorFor(tag ColorTag) string {
	switch tag {
	case TypeName:
		return ansi.Yellow
	case StringConst:
		return ansi.Bold
	case OtherConst:
		return ansi.Green
	case External:
		return ansi.Bold + ansi.Blue
	case UserType:
		return ansi.Green
	default:
		panic(errors.AssertionFailedf("hnode: unhandled color tag %v", tag))
	}
}

// HNode translates n into a MeasuredDoc. It clears the encoder's
// (currently unused) visiting map and descends.
func (e *Encoder) HNode(n Node) pretty.MeasuredDoc {
	for k := range e.visiting {
		delete(e.visiting, k)
	}
	return e.hnode(n)
}

func (e *Encoder) field(f Field) pretty.MeasuredDoc {
	name := pretty.Text(f.Name + ":")
	return pretty.Concat(name, e.hnode(f.Val))
}

func (e *Encoder) hnode(n Node) pretty.MeasuredDoc {
	switch h := n.(type) {
	case AlreadySeen:
		return pretty.Text("...0x" + hexutil.HexLower(h.HeapID))

	case Leaf:
		color := e.colorFor(h.Color)
		s := j8lite.EncodeString(h.S, true)
		return e.styledAscii(color, s)

	case Array:
		if len(h.Children) == 0 {
			return pretty.Text("[]")
		}
		children := make([]pretty.MeasuredDoc, len(h.Children))
		for i, c := range h.Children {
			children[i] = e.hnode(c)
		}
		return e.surrounded("[", e.tabular(children, ""), "]")

	case Record:
		var typeName pretty.MeasuredDoc
		hasType := h.NodeType != ""
		if hasType {
			typeName = e.styledAscii(e.typeColor, h.NodeType)
		}

		var mdocs []pretty.MeasuredDoc
		switch {
		case len(h.UnnamedFields) > 0:
			mdocs = make([]pretty.MeasuredDoc, len(h.UnnamedFields))
			for i, c := range h.UnnamedFields {
				mdocs[i] = e.hnode(c)
			}
		case len(h.Fields) > 0:
			mdocs = make([]pretty.MeasuredDoc, len(h.Fields))
			for i, f := range h.Fields {
				mdocs[i] = e.field(f)
			}
		}

		if mdocs == nil {
			parts := []pretty.MeasuredDoc{pretty.Text(h.Left)}
			if hasType {
				parts = append(parts, typeName)
			}
			parts = append(parts, pretty.Text(h.Right))
			return pretty.Concat(parts...)
		}

		child := e.join(mdocs, "", " ")
		if hasType {
			return e.surroundedAndPrefixed(h.Left, typeName, " ", child, h.Right)
		}
		return e.surrounded(h.Left, child, h.Right)

	default:
		panic(errors.AssertionFailedf("hnode: unhandled node variant %T", n))
	}
}
