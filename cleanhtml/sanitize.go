package cleanhtml

import (
	"strings"

	"github.com/Financial-Times/clean-body-html/dom"
)

var subtreeDropTags = set("script", "style", "meta", "link", "frame", "frameset", "noframes")

// Sanitize is the tag-vocabulary enforcer and attribute filter. It runs in
// three stages: drop disallowed subtrees/attributes outright, filter every
// remaining attribute down to the allowed vocabulary, then unwrap or drop
// any element whose tag still isn't in AllowedTags. None of it touches
// whitelisted embed subtrees.
func Sanitize(root *dom.Node) {
	dropDisallowedSubtrees(root)
	stripDangerousAttrs(root)
	filterAttributes(root)
	enforceTagVocabulary(root)
}

func dropDisallowedSubtrees(root *dom.Node) {
	for _, n := range dom.PostOrder(root) {
		if n.Whitelisted || n.Parent == nil {
			continue
		}
		if has(subtreeDropTags, n.Tag) {
			dom.DropTagPreserveSpacing(n, false, IsPhrasing)
		}
	}
}

// stripDangerousAttrs removes inline style= attributes and javascript:
// URIs in href/src, regardless of what else survives on the element.
func stripDangerousAttrs(root *dom.Node) {
	for _, n := range dom.PostOrder(root) {
		if n.Whitelisted {
			continue
		}
		n.Del("style")
		for _, attr := range [2]string{"href", "src"} {
			if v, ok := n.Get(attr); ok && isJavascriptURI(v) {
				n.Del(attr)
			}
		}
	}
}

func isJavascriptURI(v string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(v)), "javascript:")
}

// filterAttributes keeps an attribute iff it is in AllowedAttributes or
// begins with "data-"; everything else is dropped.
func filterAttributes(root *dom.Node) {
	for _, n := range dom.PostOrder(root) {
		if n.Whitelisted {
			continue
		}
		var kept []dom.Attribute
		for _, a := range n.Attr {
			if has(AllowedAttributes, a.Key) || strings.HasPrefix(a.Key, "data-") {
				kept = append(kept, a)
			}
		}
		n.Attr = kept
	}
}

// enforceTagVocabulary schedules every non-whitelisted element whose tag
// isn't in AllowedTags for removal, special-cases the root (it cannot be
// removed, so it is renamed to <div> with its attributes cleared), then
// unwraps the rest preserving their content.
func enforceTagVocabulary(root *dom.Node) {
	var scheduled []*dom.Node
	for _, n := range dom.PostOrder(root) {
		if n.Whitelisted {
			continue
		}
		if !has(AllowedTags, n.Tag) {
			scheduled = append(scheduled, n)
		}
	}

	for i, n := range scheduled {
		if n.Parent == nil {
			n.Tag = "div"
			n.ClearAttrs()
			scheduled = append(scheduled[:i], scheduled[i+1:]...)
			break
		}
	}

	for _, n := range scheduled {
		dom.DropTagPreserveSpacing(n, true, IsPhrasing)
	}
}
