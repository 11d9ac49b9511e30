package pretty

// Text returns a literal document: it never splits, and renders as s in
// both flat and broken modes.
func Text(s string) MeasuredDoc {
	return MeasuredDoc{doc: textDoc{s: s}, Measure: Measure{Flat: len(s), NonFlat: -1}}
}

// Break returns a document that renders as s when its enclosing group is
// flat, or as a newline plus indentation when broken.
func Break(s string) MeasuredDoc {
	return MeasuredDoc{doc: breakDoc{s: s}, Measure: Measure{Flat: len(s), NonFlat: 0}}
}

// RawText returns a literal document whose rendered content is s but
// whose measured width is width, not len(s). This is how styled output
// works: the string written to the sink includes ANSI escapes, but the
// printer's fit decisions must not count them.
func RawText(s string, width int) MeasuredDoc {
	return MeasuredDoc{doc: textDoc{s: s}, Measure: Measure{Flat: width, NonFlat: -1}}
}

// Indent adds k to the indentation level of child wherever it breaks.
func Indent(k int, child MeasuredDoc) MeasuredDoc {
	return MeasuredDoc{doc: indentDoc{k: k, child: child}, Measure: child.Measure}
}

// Group marks child as a layout decision point: the printer will decide,
// based on the remaining width, whether to render it flat or broken.
func Group(child MeasuredDoc) MeasuredDoc {
	return MeasuredDoc{doc: groupDoc{child: child}, Measure: child.Measure}
}

// Flat forces child to render flat unconditionally, regardless of any
// Group decision.
func Flat(child MeasuredDoc) MeasuredDoc {
	return MeasuredDoc{doc: flatDoc{child: child}, Measure: flatten(child.Measure)}
}

// IfFlat selects flatCase when the enclosing group is flat and
// nonFlatCase when it's broken. Its own measure takes the flat width from
// flatCase and the first-line width from nonFlatCase, since those are the
// two cases that can actually be observed.
func IfFlat(flatCase, nonFlatCase MeasuredDoc) MeasuredDoc {
	return MeasuredDoc{
		doc:     ifFlatDoc{flatCase: flatCase, nonFlatCase: nonFlatCase},
		Measure: Measure{Flat: flatCase.Measure.Flat, NonFlat: nonFlatCase.Measure.NonFlat},
	}
}

// Concat concatenates children in order. Nested Concats are spliced into
// a single flat sequence at construction time, so the printer never has
// to recurse through a Concat of Concats.
func Concat(children ...MeasuredDoc) MeasuredDoc {
	out := make([]MeasuredDoc, 0, len(children))
	m := emptyMeasure()
	for _, c := range children {
		m = spliceInto(&out, c, m)
	}
	return MeasuredDoc{doc: concatDoc{children: out}, Measure: m}
}

// spliceInto appends c to out, flattening c if it is itself a Concat, and
// returns the running measure of everything appended so far (seeded by
// running).
func spliceInto(out *[]MeasuredDoc, c MeasuredDoc, running Measure) Measure {
	if cc, ok := c.doc.(concatDoc); ok {
		for _, gc := range cc.children {
			running = spliceInto(out, gc, running)
		}
		return running
	}
	*out = append(*out, c)
	return concatMeasure(running, c.Measure)
}
