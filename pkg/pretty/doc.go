package pretty

import "github.com/cockroachdb/errors"

// doc is the tagged union of layout primitives. MeasuredDoc pairs a doc
// with its pre-computed Measure; callers of this package only ever see
// MeasuredDoc values, never a bare doc.
type doc interface {
	docCount() int
}

// MeasuredDoc is a document IR node together with its width metadata.
// Values are immutable once constructed; the smart constructors in
// builders.go are the only way to produce one.
type MeasuredDoc struct {
	doc     doc
	Measure Measure
}

type textDoc struct{ s string }

func (textDoc) docCount() int { return 1 }

type breakDoc struct{ s string }

func (breakDoc) docCount() int { return 1 }

type concatDoc struct{ children []MeasuredDoc }

func (d concatDoc) docCount() int {
	n := 1
	for _, c := range d.children {
		n += c.doc.docCount()
	}
	return n
}

type indentDoc struct {
	k     int
	child MeasuredDoc
}

func (d indentDoc) docCount() int { return 1 + d.child.doc.docCount() }

type groupDoc struct{ child MeasuredDoc }

func (d groupDoc) docCount() int { return 1 + d.child.doc.docCount() }

type flatDoc struct{ child MeasuredDoc }

func (d flatDoc) docCount() int { return 1 + d.child.doc.docCount() }

type ifFlatDoc struct {
	flatCase, nonFlatCase MeasuredDoc
}

func (d ifFlatDoc) docCount() int {
	return 1 + d.flatCase.doc.docCount() + d.nonFlatCase.doc.docCount()
}

// DocCount returns the number of doc nodes in d's tree, for perf stats.
func DocCount(d MeasuredDoc) int {
	return d.doc.docCount()
}

// unhandledDoc panics with an assertion failure; reached only if a new
// doc variant is added to this file without a matching case everywhere
// that switches on doc. Spec treats this as a programmer error, not a
// recoverable condition.
func unhandledDoc(d doc) {
	panic(errors.AssertionFailedf("pretty: unhandled doc variant %T", d))
}
