package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

// PruneEmptyTags recursively removes empty tags outside the whitelist and
// outside CanBeEmpty. Post-order traversal means a parent's emptiness is
// checked only after its own children have already
// been pruned, so removing the last meaningful descendant of a chain
// collapses the whole chain in one pass.
func PruneEmptyTags(root *dom.Node) {
	for _, n := range dom.PostOrder(root) {
		if n.Parent == nil || n.Whitelisted {
			continue
		}
		if has(CanBeEmpty, n.Tag) {
			continue
		}
		if n.IsEmpty() {
			dom.DropTagPreserveSpacing(n, true, IsPhrasing)
		}
	}
}
