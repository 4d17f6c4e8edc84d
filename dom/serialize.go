package dom

import (
	"html"
	"strings"
)

var voidTags = map[string]struct{}{
	"br":  {},
	"img": {},
	"hr":  {},
}

// IsVoid reports whether tag serializes without a closing tag and without
// any content: <br>, <img>, <hr> serialize as void elements.
func IsVoid(tag string) bool {
	_, ok := voidTags[tag]
	return ok
}

// Serialize renders n and its subtree as an HTML string: void elements
// have no closing tag, every other allowed container serializes as
// <tag></tag> even when empty (never self-closing), and the root's own
// tail is not emitted.
func Serialize(n *Node) string {
	var b strings.Builder
	writeNode(&b, n, true)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node, isRoot bool) {
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attr {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if IsVoid(n.Tag) {
		if !isRoot {
			b.WriteString(html.EscapeString(n.Tail))
		}
		return
	}

	b.WriteString(html.EscapeString(n.Text))
	for _, c := range n.Children {
		writeNode(b, c, false)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')

	if !isRoot {
		b.WriteString(html.EscapeString(n.Tail))
	}
}
