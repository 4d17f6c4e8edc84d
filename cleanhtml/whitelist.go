package cleanhtml

import (
	"strings"

	"github.com/Financial-Times/clean-body-html/dom"
)

// Preprocessor gives callers a chance to apply provider-specific fixups to
// a freshly-detected embed element before the whitelist closure is sealed.
type Preprocessor func(*dom.Node)

// IntegrateEmbeddings walks root once, finds every element carrying one of
// the whitelisted embed class names, applies preprocessor to each (if
// given), then marks those elements and all of their descendants
// Whitelisted. It returns the directly-matched elements (before descendant
// expansion) in post-order: a nested match comes before the match that
// encloses it. This runs exactly once, before the
// pipeline starts: the detector is deliberately a thin lookup, nothing
// more. No library is warranted for matching seven literal class names
// against a space-separated attribute.
func IntegrateEmbeddings(root *dom.Node, preprocessor Preprocessor) []*dom.Node {
	var matched []*dom.Node
	for _, n := range dom.PostOrder(root) {
		if hasWhitelistedClass(n) {
			matched = append(matched, n)
		}
	}

	if preprocessor != nil {
		for _, n := range matched {
			preprocessor(n)
		}
	}

	for _, n := range matched {
		n.Whitelisted = true
		for _, d := range dom.Descendants(n, -1) {
			d.Whitelisted = true
		}
	}

	return matched
}

func hasWhitelistedClass(n *dom.Node) bool {
	class, ok := n.Get("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(class) {
		if has(embedWhitelistClasses, c) {
			return true
		}
	}
	return false
}
