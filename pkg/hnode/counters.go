package hnode

import "github.com/cockroachdb/errors"

// Count returns the number of nodes in n's tree: each variant contributes
// 1 plus the sum over its children. Used only for --perf-stats output.
func Count(n Node) int {
	switch v := n.(type) {
	case AlreadySeen:
		return 1
	case Leaf:
		return 1
	case Array:
		c := 1
		for _, child := range v.Children {
			c += Count(child)
		}
		return c
	case Record:
		c := 1
		for _, f := range v.Fields {
			c += Count(f.Val)
		}
		for _, child := range v.UnnamedFields {
			c += Count(child)
		}
		return c
	default:
		panic(errors.AssertionFailedf("hnode: unhandled node variant %T", n))
	}
}
