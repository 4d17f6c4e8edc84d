package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

// Clean runs the full normalization pipeline over root, rewriting it in
// place, and returns root (renamed to <article> by the root normalizer).
// A caller that needs to keep its original tree passes in a dom.Clone of
// it. baseURL may be empty, in which case link absolutization is skipped.
//
// Pass order is fixed and must never change: later passes consume
// artifacts earlier ones produce, most visibly the <br><br> separators
// the sanitizer and figure assembler insert, which the paragraphizer
// turns into paragraph boundaries.
func Clean(root *dom.Node, baseURL string) *dom.Node {
	IntegrateEmbeddings(root, nil)

	AbsolutizeLinks(root, baseURL)
	InferImageSrc(root)
	TranslateTags(root)
	PruneEmptyTags(root)
	Sanitize(root)
	NormalizeRoot(root)
	NormalizeHeadings(root)
	AssembleFigures(root)
	RemoveIncompleteStructures(root, MustAncestorsForKeepContent, true)
	RemoveIncompleteStructures(root, MustAncestorsForDropContent, false)
	KillIframeContent(root)
	Paragraphize(root)
	PromoteTopLevelMedia(root)
	PrettyFormat(root)

	return root
}

// CleanedNodeToHTML serializes a cleaned tree, excluding the root's own
// tail.
func CleanedNodeToHTML(root *dom.Node) string {
	return dom.Serialize(root)
}

// TextExtractor renders a cleaned tree down to plain text. The default
// implementation (DefaultTextExtractor) is a simple layout-guessing
// walker; callers needing a fuller layout-aware extractor can supply
// their own.
type TextExtractor func(root *dom.Node) string

// CleanedNodeToText deep-copies root, strips every <figcaption> subtree
// except at the root itself, then delegates to extractor. If extractor is
// nil, DefaultTextExtractor is used.
func CleanedNodeToText(root *dom.Node, extractor TextExtractor) string {
	if extractor == nil {
		extractor = DefaultTextExtractor
	}
	cloned := dom.Clone(root)
	stripFigcaptions(cloned)
	return extractor(cloned)
}

func stripFigcaptions(root *dom.Node) {
	for _, n := range dom.PostOrder(root) {
		if n.Tag == "figcaption" && n.Parent != nil {
			dom.DropTagPreserveSpacing(n, false, IsPhrasing)
		}
	}
}
