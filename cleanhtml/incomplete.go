package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

// RemoveIncompleteStructures unwraps or drops elements whose tag requires
// an ancestor that no longer exists, e.g. an <li> that lost its <ul>/<ol>
// after the sanitizer unwrapped the list. It walks the
// root's descendants post-order (never the root itself) and, for each
// node whose tag appears in rules, checks the node's own ancestor chain
// for a matching tag; if none matches, the node is removed via
// drop-tag-preserve-spacing in the given content mode.
//
// Called twice in the pipeline: once with MustAncestorsForKeepContent in
// keep mode, once with MustAncestorsForDropContent in drop mode (for
// orphaned figcaptions).
func RemoveIncompleteStructures(root *dom.Node, rules map[string]map[string]struct{}, preserveContent bool) {
	for _, n := range dom.PostOrder(root) {
		if n.Parent == nil || n.Whitelisted {
			continue
		}
		required, ok := rules[n.Tag]
		if !ok {
			continue
		}
		if hasMatchingAncestor(n, required) {
			continue
		}
		dom.DropTagPreserveSpacing(n, preserveContent, IsPhrasing)
	}
}

func hasMatchingAncestor(n *dom.Node, required map[string]struct{}) bool {
	for _, a := range dom.Ancestors(n, -1, nil) {
		if has(required, a.Tag) {
			return true
		}
	}
	return false
}

// hasNoContent reports whether the subtree rooted at n carries no text
// and no element whose tag is in ContentEvenIfEmpty, and n's own tail is
// blank as well. Used by the figure
// assembler to skip visually-empty siblings when computing
// a previous-content-block slice.
func hasNoContent(n *dom.Node) bool {
	if n.HasText() || n.HasTailText() {
		return false
	}
	if has(ContentEvenIfEmpty, n.Tag) {
		return false
	}
	for _, c := range n.Children {
		if !hasNoContent(c) {
			return false
		}
		if c.HasTailText() {
			return false
		}
	}
	return true
}
