package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

// NormalizeRoot forces the document root to <article> with no attributes.
// The root is never subject to the sanitizer's removal path: it is
// special-cased there to become <div>, so this pass is what actually
// produces the final <article> wrapper once every other pass has settled
// the tree underneath.
func NormalizeRoot(root *dom.Node) {
	root.Tag = "article"
	root.ClearAttrs()
}
