package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

var figureTagSet = set("figure")

// figcaptionAllowedTags is the restricted vocabulary cleanFigcaptionsHTML
// enforces inside every <figcaption>. It lists "b"/"i" literally, matching
// the original source, even though the global tag translator (pass 3) has
// normally already renamed those to strong/em by the time this pass runs.
var figcaptionAllowedTags = union(InlineTags, set("figcaption", "a", "p", "b", "i"))

// AssembleFigures runs the figure-assembly sub-passes in a fixed order:
// later sub-passes depend on artifacts (new <figure> wrappers, fused
// captions) the earlier ones produce.
func AssembleFigures(root *dom.Node) {
	encloseMediaWithinFigure(root)
	createFiguresFromIsolatedFigcaptions(root)
	removeFiguresWithoutContent(root)
	cleanDoubleBrAboveFigcaption(root)
	cleanFigcaptionsHTML(root)
}

// encloseMediaWithinFigure wraps every media element (or the misspelled
// <figcation> tag, see wrappedWithFigure) that has no <figure> ancestor
// yet in a new one. If the element's sole parent
// is an <a> with no other children and no own text, the <a> is wrapped
// instead so the link stays inside the figure.
func encloseMediaWithinFigure(root *dom.Node) {
	var targets []*dom.Node
	for _, n := range dom.Descendants(root, -1) {
		if n.Whitelisted {
			continue
		}
		if !has(wrappedWithFigure, n.Tag) {
			continue
		}
		if dom.HasAncestorTag(n, figureTagSet) {
			continue
		}
		targets = append(targets, n)
	}

	for _, n := range targets {
		if dom.HasAncestorTag(n, figureTagSet) {
			continue // an earlier target's wrap already covered this one
		}
		target := n
		if n.Parent != nil && n.Parent.Tag == "a" && len(n.Parent.Children) == 1 && !n.Parent.HasText() {
			target = n.Parent
		}
		dom.WrapElementWithTag(target, "figure")
	}
}

// createFiguresFromIsolatedFigcaptions groups each orphan <figcaption>
// with whatever content precedes it into a new <figure>.
func createFiguresFromIsolatedFigcaptions(root *dom.Node) {
	var captions []*dom.Node
	for _, n := range dom.Descendants(root, -1) {
		if n.Tag == "figcaption" && !n.Whitelisted {
			captions = append(captions, n)
		}
	}

	for _, fc := range captions {
		if fc.Parent == nil {
			continue // already absorbed into a figure built for an earlier caption
		}
		if dom.HasAncestorTag(fc, figureTagSet) {
			continue
		}

		parent, start, end, ok := previousContentBlock(fc)
		if !ok {
			continue
		}

		contentPart := parent.Children[start : end-1]
		if len(contentPart) == 1 && contentPart[0].Tag == "p" && !hasMediaDescendant(contentPart[0]) {
			continue
		}

		dissolveStructuralContainer(parent)
		figure := dom.WrapChildrenSlice(parent, start, end, "figure")
		unwrapNestedFigures(figure)
		fuseFigcaptions(figure)
	}
}

// previousContentBlock walks left from node across empty siblings (see
// hasNoContent) looking for one with real content. If node has no
// preceding siblings at all and its parent contributes nothing of its own
// (no leading text, no tail, and node is the parent's only child), the
// search continues one level up, letting a caption bubble out through a
// chain of single-child wrappers to find real previous content.
func previousContentBlock(node *dom.Node) (parent *dom.Node, start, end int, ok bool) {
	parent = node.Parent
	if parent == nil {
		return nil, 0, 0, false
	}
	idx := node.Index()

	i := idx - 1
	for i >= 0 && hasNoContent(parent.Children[i]) {
		i--
	}
	if i >= 0 {
		return parent, i, idx + 1, true
	}

	if len(parent.Children) == 1 && !parent.HasText() && parent.Tail == "" {
		return previousContentBlock(parent)
	}
	return nil, 0, 0, false
}

func hasMediaDescendant(n *dom.Node) bool {
	for _, d := range dom.Descendants(n, -1) {
		if has(FigureContentTags, d.Tag) {
			return true
		}
	}
	return false
}

// dissolveStructuralContainer renames the nearest ancestor-or-self of
// parent that is a table/list/definition-list root to one of its own
// child tags (e.g. table→tr), a deliberate hack that breaks the structure
// so the incomplete-structure cleaner unwraps what remains of it.
func dissolveStructuralContainer(parent *dom.Node) {
	for cur := parent; cur != nil; cur = cur.Parent {
		if has(structuralContainers, cur.Tag) {
			if len(cur.Children) > 0 {
				cur.Tag = cur.Children[0].Tag
			}
			return
		}
	}
}

func unwrapNestedFigures(figure *dom.Node) {
	var nested []*dom.Node
	for _, n := range dom.Descendants(figure, -1) {
		if n.Tag == "figure" {
			nested = append(nested, n)
		}
	}
	for _, n := range nested {
		if n.Parent == nil {
			continue
		}
		dom.DropTagPreserveSpacing(n, true, IsPhrasing)
	}
}

// fuseFigcaptions merges the first maximal run of consecutive <figcaption>
// children into one, discarding any caption found after that run.
// "Consecutive" requires no intervening tail text between them.
func fuseFigcaptions(figure *dom.Node) {
	runStart, runEnd := -1, -1
	for i, c := range figure.Children {
		if c.Tag != "figcaption" {
			if runStart >= 0 {
				break
			}
			continue
		}
		if runStart < 0 {
			runStart, runEnd = i, i+1
			continue
		}
		if figure.Children[i-1].Tail == "" {
			runEnd = i + 1
		} else {
			break
		}
	}
	if runStart < 0 {
		return
	}

	for i := len(figure.Children) - 1; i >= runEnd; i-- {
		if c := figure.Children[i]; c.Tag == "figcaption" {
			dom.DropTagPreserveSpacing(c, false, IsPhrasing)
		}
	}

	if runEnd-runStart < 2 {
		return
	}
	originals := append([]*dom.Node(nil), figure.Children[runStart:runEnd]...)
	dom.WrapChildrenSlice(figure, runStart, runEnd, "figcaption")
	for _, orig := range originals {
		dom.DropTagPreserveSpacing(orig, true, IsPhrasing)
	}
}

// removeFiguresWithoutContent deletes figures left with nothing but a
// caption (or nothing at all) after assembly, typically JS-injected
// empty figures.
func removeFiguresWithoutContent(root *dom.Node) {
	var figures []*dom.Node
	for _, n := range dom.PostOrder(root) {
		if n.Tag == "figure" {
			figures = append(figures, n)
		}
	}

	for _, f := range figures {
		if f.Parent == nil || f.Whitelisted {
			continue
		}
		if f.HasText() {
			continue
		}
		nonCaption := false
		for _, c := range f.Children {
			if c.Tag != "figcaption" {
				nonCaption = true
				break
			}
		}
		if nonCaption {
			continue
		}
		if len(f.Children) > 0 && f.Children[0].HasTailText() {
			continue
		}
		dom.DropTagPreserveSpacing(f, false, IsPhrasing)
	}
}

// cleanDoubleBrAboveFigcaption removes a stray <br><br> separator
// immediately preceding a caption, a leftover from an earlier pass's
// spacing insertion that is no longer needed now the figure exists.
func cleanDoubleBrAboveFigcaption(root *dom.Node) {
	var captions []*dom.Node
	for _, n := range dom.PostOrder(root) {
		if n.Tag == "figcaption" && !n.Whitelisted {
			captions = append(captions, n)
		}
	}

	for _, fc := range captions {
		if fc.Parent == nil {
			continue
		}
		s1 := fc.PrevSibling()
		if s1 == nil || s1.Tag != "br" || s1.Tail != "" {
			continue
		}
		s0 := s1.PrevSibling()
		if s0 == nil || s0.Tag != "br" || s0.Tail != "" {
			continue
		}
		parent := fc.Parent
		parent.RemoveChild(s1)
		parent.RemoveChild(s0)
	}
}

// cleanFigcaptionsHTML runs a restricted sanitizer inside every
// <figcaption>, allowing only figcaptionAllowedTags and ALLOWED_ATTRIBUTES
// (no data-* exception: this pass's vocabulary is intentionally tighter
// than the main sanitizer's).
func cleanFigcaptionsHTML(root *dom.Node) {
	var captions []*dom.Node
	for _, n := range dom.PostOrder(root) {
		if n.Tag == "figcaption" && !n.Whitelisted {
			captions = append(captions, n)
		}
	}

	for _, fc := range captions {
		if fc.Parent == nil {
			continue
		}

		var scheduled []*dom.Node
		for _, n := range dom.PostOrder(fc) {
			if n == fc {
				continue
			}
			if !has(figcaptionAllowedTags, n.Tag) {
				scheduled = append(scheduled, n)
			}
		}
		for _, n := range scheduled {
			dom.DropTagPreserveSpacing(n, true, IsPhrasing)
		}

		for _, n := range dom.PostOrder(fc) {
			var kept []dom.Attribute
			for _, a := range n.Attr {
				if has(AllowedAttributes, a.Key) {
					kept = append(kept, a)
				}
			}
			n.Attr = kept
		}
	}
}
