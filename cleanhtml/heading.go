package cleanhtml

import (
	"fmt"

	"github.com/Financial-Times/clean-body-html/dom"
)

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// NormalizeHeadings rescales h1–h6 so the shallowest heading present
// becomes h2, deeper headings shifting in parallel. A literal <h6> is always
// demoted to a <p> whose former content is wrapped in a new <strong>,
// regardless of the document's shallowest level, so a literal <h6> never
// survives even where the rescale would have kept it at h6 or moved it
// up. Headings inside a whitelisted embed are left untouched.
func NormalizeHeadings(root *dom.Node) {
	m := minHeadingLevel(root)
	for _, n := range dom.PostOrder(root) {
		if n.Whitelisted {
			continue
		}
		k, ok := headingLevels[n.Tag]
		if !ok {
			continue
		}
		if n.Tag == "h6" {
			dom.WrapElementContentWithTag(n, "strong")
			n.Tag = "p"
			continue
		}
		n.Tag = fmt.Sprintf("h%d", k-m+2)
	}
}

func minHeadingLevel(root *dom.Node) int {
	min, found := 1, false
	for _, n := range dom.PostOrder(root) {
		if n.Whitelisted {
			continue
		}
		if k, ok := headingLevels[n.Tag]; ok {
			if !found || k < min {
				min, found = k, true
			}
		}
	}
	return min
}
