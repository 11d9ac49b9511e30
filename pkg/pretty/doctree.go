package pretty

import "strconv"

// PrettyTree renders d's own structure as a document, for the --doc-debug
// diagnostic (spec §6.1). It is a supplemented feature, grounded in the
// original implementation's `doc->PrettyTree(false)` call inside
// `_HNodePrettyPrint`, which pretty-prints the document tree before
// printing the real output. The bool the original takes selects whether
// to include measures in the tree; this port always includes them, since
// the whole point of --doc-debug is inspecting width accounting.
func (d MeasuredDoc) PrettyTree() MeasuredDoc {
	return treeNode(tagName(d.doc), d.Measure, treeChildren(d.doc))
}

func tagName(d doc) string {
	switch d.(type) {
	case textDoc:
		return "Text"
	case breakDoc:
		return "Break"
	case concatDoc:
		return "Concat"
	case indentDoc:
		return "Indent"
	case groupDoc:
		return "Group"
	case flatDoc:
		return "Flat"
	case ifFlatDoc:
		return "IfFlat"
	default:
		unhandledDoc(d)
		return ""
	}
}

func treeChildren(d doc) []MeasuredDoc {
	switch v := d.(type) {
	case textDoc, breakDoc:
		return nil
	case concatDoc:
		return v.children
	case indentDoc:
		return []MeasuredDoc{v.child}
	case groupDoc:
		return []MeasuredDoc{v.child}
	case flatDoc:
		return []MeasuredDoc{v.child}
	case ifFlatDoc:
		return []MeasuredDoc{v.flatCase, v.nonFlatCase}
	default:
		unhandledDoc(d)
		return nil
	}
}

// treeNode builds "Tag<flat,nonflat>(child child ...)" as a document,
// breaking onto indented lines when it doesn't fit.
func treeNode(tag string, m Measure, children []MeasuredDoc) MeasuredDoc {
	header := tag + "<" + strconv.Itoa(m.Flat) + "," + strconv.Itoa(m.NonFlat) + ">"
	if len(children) == 0 {
		return Text(header)
	}
	rendered := make([]MeasuredDoc, len(children))
	for i, c := range children {
		rendered[i] = c.PrettyTree()
	}
	joined := make([]MeasuredDoc, 0, len(rendered)*2)
	for i, r := range rendered {
		if i != 0 {
			joined = append(joined, Break(" "))
		}
		joined = append(joined, r)
	}
	body := Concat(joined...)
	return Group(Concat(
		Text(header+"("),
		Indent(2, Concat(Break(""), body)),
		Break(""),
		Text(")"),
	))
}
