package hnode

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// jsonNode is the small surface form the CLI reads trees from: a tagged
// JSON object mirroring the four Node variants. It exists only at the
// CLI boundary — producers inside Go code build Node values directly.
type jsonNode struct {
	Tag string `json:"tag"`

	// Leaf
	S     string `json:"s,omitempty"`
	Color string `json:"color,omitempty"`

	// Array
	Children []jsonNode `json:"children,omitempty"`

	// Record
	NodeType      string      `json:"node_type,omitempty"`
	Left          string      `json:"left,omitempty"`
	Right         string      `json:"right,omitempty"`
	Fields        []jsonField `json:"fields,omitempty"`
	UnnamedFields []jsonNode  `json:"unnamed_fields,omitempty"`

	// AlreadySeen
	HeapID int `json:"heap_id,omitempty"`
}

type jsonField struct {
	Name string   `json:"name"`
	Val  jsonNode `json:"val"`
}

var colorTags = map[string]ColorTag{
	"type_name":    TypeName,
	"string_const": StringConst,
	"other_const":  OtherConst,
	"external":     External,
	"user_type":    UserType,
}

func decodeColor(s string) (ColorTag, error) {
	if s == "" {
		return OtherConst, nil
	}
	c, ok := colorTags[s]
	if !ok {
		return 0, errors.Newf("hnode: unknown color tag %q", s)
	}
	return c, nil
}

func (n jsonNode) toNode() (Node, error) {
	switch n.Tag {
	case "leaf":
		color, err := decodeColor(n.Color)
		if err != nil {
			return nil, err
		}
		return Leaf{S: n.S, Color: color}, nil

	case "array":
		children := make([]Node, len(n.Children))
		for i, c := range n.Children {
			child, err := c.toNode()
			if err != nil {
				return nil, errors.Wrapf(err, "hnode: array child %d", i)
			}
			children[i] = child
		}
		return Array{Children: children}, nil

	case "record":
		left, right := n.Left, n.Right
		if left == "" && right == "" {
			left, right = "(", ")"
		}
		rec := Record{NodeType: n.NodeType, Left: left, Right: right}
		for _, f := range n.Fields {
			val, err := f.Val.toNode()
			if err != nil {
				return nil, errors.Wrapf(err, "hnode: field %q", f.Name)
			}
			rec.Fields = append(rec.Fields, Field{Name: f.Name, Val: val})
		}
		for i, c := range n.UnnamedFields {
			val, err := c.toNode()
			if err != nil {
				return nil, errors.Wrapf(err, "hnode: unnamed field %d", i)
			}
			rec.UnnamedFields = append(rec.UnnamedFields, val)
		}
		return rec, nil

	case "already_seen":
		return AlreadySeen{HeapID: n.HeapID}, nil

	default:
		return nil, errors.Newf("hnode: unknown tag %q", n.Tag)
	}
}

// DecodeJSON parses the CLI's small JSON surface form (tagged objects for
// leaf/array/record/already_seen) into a Node tree.
func DecodeJSON(data []byte) (Node, error) {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return nil, errors.Wrapf(err, "hnode: decode json")
	}
	return jn.toNode()
}
