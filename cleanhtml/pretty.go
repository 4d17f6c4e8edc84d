package cleanhtml

import (
	"strings"

	"github.com/Financial-Times/clean-body-html/dom"
)

const prettySpacer = "\n\n"

// PrettyFormat inserts readable whitespace between top-level children and
// trims whitespace at the edges of each one. It is the last pass, so
// anything it discards here was already supposed to be gone; a warning is
// logged when pre-existing non-whitespace text turns up at a position it
// is about to overwrite outright. A whitelisted top-level child's own text
// and descendants are left untouched; only the separating tail outside it
// is set, since an embed's own text must survive unchanged and tail is
// not part of the embed's own content.
func PrettyFormat(root *dom.Node) {
	if hasNonSpaceText(root.Text) {
		log.Warn().Str("pos", "root.text").Msg("discarding unexpected text at root position")
	}
	root.Text = prettySpacer

	for _, c := range root.Children {
		if hasNonSpaceText(c.Tail) {
			log.Warn().Str("pos", "top-level tail").Str("tag", c.Tag).Msg("discarding unexpected text at top-level tail position")
		}
		c.Tail = prettySpacer

		if c.Tag == "pre" || c.Whitelisted {
			continue
		}
		c.Text = strings.TrimLeft(c.Text, " \t\n\r\f")
		rightStripTrailing(c)
	}
}

// rightStripTrailing trims trailing whitespace from n's final descendant:
// its own Text if it has no children, otherwise its last child's Tail.
func rightStripTrailing(n *dom.Node) {
	if len(n.Children) == 0 {
		n.Text = strings.TrimRight(n.Text, " \t\n\r\f")
		return
	}
	last := n.Children[len(n.Children)-1]
	last.Tail = strings.TrimRight(last.Tail, " \t\n\r\f")
}
