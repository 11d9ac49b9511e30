package hnode

import "github.com/akinomyoga/oil/pkg/ansi"

// NewRecord returns an empty Record with the conventional "(" / ")"
// delimiters, ready for callers to append Fields to. Grounded in the
// original runtime's runtime.NewRecord helper (SPEC_FULL.md, Supplemented
// Features).
func NewRecord(nodeType string) *Record {
	return &Record{NodeType: nodeType, Left: "(", Right: ")"}
}

// NewLeaf returns a Leaf for s, falling back to a literal "_" OtherConst
// leaf when s is empty — matching the original runtime.NewLeaf, which
// treats a nil/empty string specially rather than printing an empty leaf.
func NewLeaf(s string, color ColorTag) Leaf {
	if s == "" {
		return Leaf{S: "_", Color: OtherConst}
	}
	return Leaf{S: s, Color: color}
}

// TrueStr and FalseStr are the canonical renderings of boolean leaves
// (spec.md §6.3).
const (
	TrueStr  = ansi.TrueStr
	FalseStr = ansi.FalseStr
)

// LeafForBool returns the canonical T/F leaf for a Go bool.
func LeafForBool(b bool) Leaf {
	if b {
		return Leaf{S: TrueStr, Color: OtherConst}
	}
	return Leaf{S: FalseStr, Color: OtherConst}
}

// TraversalState is bookkeeping for producers pre-walking a cyclic
// structure to decide where to emit AlreadySeen. The encoder itself never
// reads this — it is exposed for producers and encoder subclasses, per
// the original's own framing (spec.md §9 Open Questions).
type TraversalState struct {
	Seen     map[int]bool
	RefCount map[int]int
}

// NewTraversalState returns an empty TraversalState.
func NewTraversalState() *TraversalState {
	return &TraversalState{Seen: map[int]bool{}, RefCount: map[int]int{}}
}
