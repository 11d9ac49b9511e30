package hnode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeJSONLeaf(t *testing.T) {
	n, err := DecodeJSON([]byte(`{"tag":"leaf","s":"hi","color":"string_const"}`))
	require.NoError(t, err)
	require.Equal(t, Leaf{S: "hi", Color: StringConst}, n)
}

func TestDecodeJSONLeafDefaultColor(t *testing.T) {
	n, err := DecodeJSON([]byte(`{"tag":"leaf","s":"hi"}`))
	require.NoError(t, err)
	require.Equal(t, Leaf{S: "hi", Color: OtherConst}, n)
}

func TestDecodeJSONArray(t *testing.T) {
	n, err := DecodeJSON([]byte(`{"tag":"array","children":[
		{"tag":"leaf","s":"1"},
		{"tag":"leaf","s":"2"}
	]}`))
	require.NoError(t, err)
	require.Equal(t, Array{Children: []Node{
		Leaf{S: "1", Color: OtherConst},
		Leaf{S: "2", Color: OtherConst},
	}}, n)
}

func TestDecodeJSONRecordDefaultsDelimiters(t *testing.T) {
	n, err := DecodeJSON([]byte(`{"tag":"record","node_type":"Op","fields":[
		{"name":"x","val":{"tag":"leaf","s":"1"}}
	]}`))
	require.NoError(t, err)
	rec, ok := n.(Record)
	require.True(t, ok)
	require.Equal(t, "(", rec.Left)
	require.Equal(t, ")", rec.Right)
	require.Len(t, rec.Fields, 1)
}

func TestDecodeJSONAlreadySeen(t *testing.T) {
	n, err := DecodeJSON([]byte(`{"tag":"already_seen","heap_id":255}`))
	require.NoError(t, err)
	require.Equal(t, AlreadySeen{HeapID: 255}, n)
}

func TestDecodeJSONUnknownTag(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"tag":"bogus"}`))
	require.Error(t, err)
}

func TestDecodeJSONUnknownColor(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"tag":"leaf","s":"x","color":"bogus"}`))
	require.Error(t, err)
}
