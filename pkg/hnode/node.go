// Package hnode implements the heterogeneous tree node shape that feeds
// the pretty-printer (spec.md §3.1) and the encoder that turns such a
// tree into a pretty.MeasuredDoc (spec.md §4.4).
package hnode

// ColorTag selects which style a Leaf is rendered with.
type ColorTag int

const (
	TypeName ColorTag = iota
	StringConst
	OtherConst
	External
	UserType
)

// Node is the sum type consumed by the encoder: Leaf, Array, Record, or
// AlreadySeen. Producers build a Node tree (typically from an ASDL
// runtime, a parser's AST, or similar) and hand it to HNodePrettyPrint.
type Node interface {
	nodeTag() string
}

// Leaf is a scalar value rendered as a styled string.
type Leaf struct {
	S     string
	Color ColorTag
}

func (Leaf) nodeTag() string { return "Leaf" }

// Array is a homogeneous ordered list of child nodes.
type Array struct {
	Children []Node
}

func (Array) nodeTag() string { return "Array" }

// Field is one named member of a Record.
type Field struct {
	Name string
	Val  Node
}

// Record is a named aggregate. Exactly one of Fields or UnnamedFields
// should be non-empty; if both are empty, the record renders as a bare
// "left type right" (or "left right" if NodeType is empty too).
type Record struct {
	NodeType      string
	Left, Right   string
	Fields        []Field
	UnnamedFields []Node
}

func (Record) nodeTag() string { return "Record" }

// AlreadySeen marks a back-reference, breaking a cycle that a producer
// detected while walking its own source structure. The encoder trusts
// this marker; it never detects cycles itself (spec.md §4.4, §9).
type AlreadySeen struct {
	HeapID int
}

func (AlreadySeen) nodeTag() string { return "AlreadySeen" }
