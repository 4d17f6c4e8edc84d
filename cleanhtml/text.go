package cleanhtml

import (
	"strings"

	"github.com/Financial-Times/clean-body-html/dom"
)

// DefaultTextExtractor is the layout-guessing text extractor CleanedNodeToText
// falls back to when the caller supplies none. It walks the tree,
// concatenating text/tail in document order and inserting a separating
// space after each top-level block element, then collapses whitespace.
func DefaultTextExtractor(root *dom.Node) string {
	var b strings.Builder
	writeNodeText(&b, root)
	return strings.TrimSpace(dedupWhitespace(b.String()))
}

func writeNodeText(b *strings.Builder, n *dom.Node) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		writeNodeText(b, c)
		b.WriteString(c.Tail)
	}
	if has(TopLevelTags, n.Tag) {
		b.WriteByte(' ')
	}
}

func dedupWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
