package pretty

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcatSplicing(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")

	nested := Concat(Concat(a, b), c)
	flat := Concat(a, Concat(b, c))
	direct := Concat(a, b, c)

	for _, d := range []MeasuredDoc{nested, flat, direct} {
		cd, ok := d.doc.(concatDoc)
		require.True(t, ok)
		require.Len(t, cd.children, 3, "splicing must flatten nested Concats")
	}
	require.Equal(t, nested.Measure, direct.Measure)
	require.Equal(t, flat.Measure, direct.Measure)
}

func TestIndentZeroInvariance(t *testing.T) {
	d := Concat(Text("x"), Break(" "), Text("y"))
	indented := Indent(0, d)
	require.Equal(t, d.Measure, indented.Measure)

	p := NewPrinter(1)
	var got, want []byte
	var bufGot, bufWant sink
	require.NoError(t, p.PrintDoc(d, &bufWant))
	require.NoError(t, p.PrintDoc(indented, &bufGot))
	got = bufGot.b
	want = bufWant.b
	require.Equal(t, string(want), string(got))
}

func TestIfFlatMeasure(t *testing.T) {
	f := Text("flat")
	nf := Concat(Text("a"), Break(""), Text("b"))
	d := IfFlat(f, nf)
	require.Equal(t, f.Measure.Flat, d.Measure.Flat)
	require.Equal(t, nf.Measure.NonFlat, d.Measure.NonFlat)
}

// sink is a minimal io.Writer used only by these tests.
type sink struct{ b []byte }

func (s *sink) Write(p []byte) (int, error) {
	s.b = append(s.b, p...)
	return len(p), nil
}
