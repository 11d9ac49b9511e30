package pretty

// Measure pairs the width of a document if it's rendered flat (everything
// on one line) with the width of its first line if it takes its first
// break. NonFlat of -1 means "no break encountered yet" — equivalently,
// infinity for suffix computations.
type Measure struct {
	Flat    int
	NonFlat int
}

// emptyMeasure is the measure of the empty document.
func emptyMeasure() Measure {
	return Measure{Flat: 0, NonFlat: -1}
}

// flatten erases any break recorded in m, as if m had been forced flat.
func flatten(m Measure) Measure {
	return Measure{Flat: m.Flat, NonFlat: -1}
}

// concatMeasure combines the measures of two documents placed one after
// the other. The first break encountered (scanning left to right)
// dominates: once some break is known to exist, nothing after it can
// un-break the first line.
func concatMeasure(m1, m2 Measure) Measure {
	switch {
	case m1.NonFlat != -1:
		return Measure{Flat: m1.Flat + m2.Flat, NonFlat: m1.NonFlat}
	case m2.NonFlat != -1:
		return Measure{Flat: m1.Flat + m2.Flat, NonFlat: m1.Flat + m2.NonFlat}
	default:
		return Measure{Flat: m1.Flat + m2.Flat, NonFlat: -1}
	}
}

// suffixLen returns the width of the first line of m: its nonflat width
// if m has a break, otherwise its flat width.
func suffixLen(m Measure) int {
	if m.NonFlat != -1 {
		return m.NonFlat
	}
	return m.Flat
}
