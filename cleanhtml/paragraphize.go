package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

// Paragraphize groups maximal runs of phrasing-content children of root
// into new <p> wrappers, splitting runs at double-<br> sequences. It
// operates only on root's immediate children; it never
// descends into an already-block child.
func Paragraphize(root *dom.Node) {
	original := root.Children
	marked := markDoubleBrRuns(original)

	leadText := root.Text
	root.Text = ""

	var newChildren []*dom.Node
	var chunk []*dom.Node

	flush := func() {
		if len(chunk) == 0 && !hasNonSpaceText(leadText) {
			chunk = nil
			return
		}
		p := dom.NewNode("p")
		p.Text = leadText
		for _, c := range chunk {
			c.Parent = p
		}
		p.Children = chunk
		newChildren = append(newChildren, p)
		chunk = nil
	}

	for _, c := range original {
		if marked[c] {
			flush()
			leadText = c.Tail
			continue
		}
		if IsPhrasing(c.Tag) {
			chunk = append(chunk, c)
			continue
		}
		flush()
		newChildren = append(newChildren, c)
		leadText = c.Tail
		c.Tail = ""
	}
	flush()

	root.Children = newChildren
}

// markDoubleBrRuns finds every maximal run of two-or-more consecutive
// <br> children with no intervening tail text and returns the set of
// nodes belonging to such a run: they act as paragraph separators and
// are discarded rather than re-attached.
func markDoubleBrRuns(children []*dom.Node) map[*dom.Node]bool {
	marked := map[*dom.Node]bool{}
	i := 0
	for i < len(children) {
		if children[i].Tag != "br" {
			i++
			continue
		}
		j := i
		for j+1 < len(children) && children[j].Tail == "" && children[j+1].Tag == "br" {
			j++
		}
		if j > i {
			for k := i; k <= j; k++ {
				marked[children[k]] = true
			}
		}
		i = j + 1
	}
	return marked
}

func hasNonSpaceText(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' && r != '\f' {
			return true
		}
	}
	return false
}
