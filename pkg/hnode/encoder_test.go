package hnode

import (
	"bytes"
	"testing"

	"github.com/akinomyoga/oil/pkg/pretty"
	"github.com/stretchr/testify/require"
)

func encodeNoStyles(n Node) pretty.MeasuredDoc {
	enc := NewEncoder()
	enc.SetUseStyles(false)
	return enc.HNode(n)
}

func TestEncoderEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	p := pretty.NewPrinter(80)
	require.NoError(t, p.PrintDoc(encodeNoStyles(Array{}), &buf))
	require.Equal(t, "[]", buf.String())
}

func TestEncoderRecordWithoutFieldsOrType(t *testing.T) {
	var buf bytes.Buffer
	p := pretty.NewPrinter(80)
	require.NoError(t, p.PrintDoc(encodeNoStyles(Record{Left: "(", Right: ")"}), &buf))
	require.Equal(t, "()", buf.String())
}

func TestEncoderUnnamedFieldsTakePrecedenceOverFields(t *testing.T) {
	rec := Record{
		NodeType: "Op", Left: "(", Right: ")",
		Fields:        []Field{{Name: "ignored", Val: Leaf{S: "x", Color: OtherConst}}},
		UnnamedFields: []Node{Leaf{S: "1", Color: OtherConst}, Leaf{S: "2", Color: OtherConst}},
	}
	var buf bytes.Buffer
	p := pretty.NewPrinter(80)
	require.NoError(t, p.PrintDoc(encodeNoStyles(rec), &buf))
	require.Equal(t, "(Op 1 2)", buf.String())
}

func TestEncoderTabularThresholdFallsBackToPlainJoin(t *testing.T) {
	enc := NewEncoder()
	enc.SetUseStyles(false)
	enc.SetMaxTabularWidth(4)
	arr := Array{Children: []Node{
		Leaf{S: "aaaaaaaaaa", Color: OtherConst},
		Leaf{S: "b", Color: OtherConst},
	}}
	var buf bytes.Buffer
	p := pretty.NewPrinter(3)
	require.NoError(t, p.PrintDoc(enc.HNode(arr), &buf))
	require.Equal(t, "[\n    aaaaaaaaaa\n    b\n]", buf.String())
}

func TestEncoderStyledLeafDoesNotCountEscapesTowardWidth(t *testing.T) {
	enc := NewEncoder()
	doc := enc.HNode(Leaf{S: "x", Color: OtherConst})
	require.Equal(t, 1, doc.Measure.Flat)

	var buf bytes.Buffer
	p := pretty.NewPrinter(80)
	require.NoError(t, p.PrintDoc(doc, &buf))
	require.Contains(t, buf.String(), "x")
	require.Greater(t, buf.Len(), 1, "styled leaf must carry ANSI escapes in its rendered bytes")
}

// TestEncoderFlatInvariant is spec.md §8.3's round-trip property: with
// enough width, the printer's own flat/broken choice renders identically
// to forcing the whole document flat with pretty.Flat.
func TestEncoderFlatInvariant(t *testing.T) {
	trees := []Node{
		Leaf{S: "hello", Color: OtherConst},
		Array{Children: []Node{
			Leaf{S: "1", Color: OtherConst},
			Leaf{S: "2", Color: OtherConst},
			Leaf{S: "3", Color: OtherConst},
		}},
		Record{
			NodeType: "Op", Left: "(", Right: ")",
			Fields: []Field{
				{Name: "a", Val: Leaf{S: "1", Color: OtherConst}},
				{Name: "b", Val: Leaf{S: "2", Color: OtherConst}},
			},
		},
		AlreadySeen{HeapID: 255},
	}

	for _, tree := range trees {
		doc := encodeNoStyles(tree)

		var wide, flat bytes.Buffer
		require.NoError(t, pretty.NewPrinter(1<<20).PrintDoc(doc, &wide))
		require.NoError(t, pretty.NewPrinter(1<<20).PrintDoc(pretty.Flat(doc), &flat))
		require.Equal(t, flat.String(), wide.String())
	}
}
