package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

// PromoteTopLevelMedia renames a top-level <p> with blank leading text whose
// only child is a single media element into a <figure>; text in that
// child's tail does not prevent the promotion. It runs after paragraphization and
// is a second, narrower net alongside encloseMediaWithinFigure: the
// earlier pass already wraps nearly everything, but media revealed only
// once text runs settle into paragraphs needs this pass to reach it.
func PromoteTopLevelMedia(root *dom.Node) {
	for _, n := range root.Children {
		if n.Whitelisted || n.Tag != "p" {
			continue
		}
		if hasNonSpaceText(n.Text) {
			continue
		}
		if len(n.Children) != 1 {
			continue
		}
		if !has(FigureContentTags, n.Children[0].Tag) {
			continue
		}
		n.Tag = "figure"
	}
}
