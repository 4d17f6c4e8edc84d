package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

// InferImageSrc copies data-src into a missing src on every <img>, a
// common lazy-loading pattern where the real image URL only exists in a
// data attribute until JavaScript runs.
func InferImageSrc(root *dom.Node) {
	for _, n := range dom.PostOrder(root) {
		if n.Tag != "img" {
			continue
		}
		if n.Has("src") {
			continue
		}
		if dataSrc, ok := n.Get("data-src"); ok {
			n.Set("src", dataSrc)
		}
	}
}
