package dom

// Ancestors returns n's ancestor chain, nearest first. If max >= 0, at most
// max ancestors are returned. If stopAt is non-nil, the walk stops at (and
// does not include) that node.
func Ancestors(n *Node, max int, stopAt *Node) []*Node {
	var out []*Node
	for p := n.Parent; p != nil && p != stopAt; p = p.Parent {
		out = append(out, p)
		if max >= 0 && len(out) >= max {
			break
		}
	}
	return out
}

// HasAncestorTag reports whether any ancestor of n (unbounded) has one of
// the given tags.
func HasAncestorTag(n *Node, tags map[string]struct{}) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if _, ok := tags[p.Tag]; ok {
			return true
		}
	}
	return false
}

// Descendants returns every descendant of n in document order. If maxLevel
// >= 0, only descendants within maxLevel levels of n are included (1 = direct
// children only).
func Descendants(n *Node, maxLevel int) []*Node {
	var out []*Node
	var walk func(node *Node, level int)
	walk = func(node *Node, level int) {
		if maxLevel >= 0 && level > maxLevel {
			return
		}
		for _, c := range node.Children {
			out = append(out, c)
			walk(c, level+1)
		}
	}
	walk(n, 1)
	return out
}

// PostOrder yields every node in the subtree rooted at n, including n
// itself, with every node's children visited before the node.
func PostOrder(n *Node) []*Node {
	var out []*Node
	var walk func(node *Node)
	walk = func(node *Node) {
		for _, c := range node.Children {
			walk(c)
		}
		out = append(out, node)
	}
	walk(n)
	return out
}

// PrevText returns the text immediately preceding n: its parent's Text if n
// is the first child, otherwise the preceding sibling's Tail. Returns "" if
// n has no parent.
func PrevText(n *Node) string {
	if n.Parent == nil {
		return ""
	}
	if prev := n.PrevSibling(); prev != nil {
		return prev.Tail
	}
	return n.Parent.Text
}

// SetPrevText overwrites whatever PrevText would return, i.e. it sets the
// parent's Text (if n is the first child) or the preceding sibling's Tail.
func SetPrevText(n *Node, text string) {
	if n.Parent == nil {
		return
	}
	if prev := n.PrevSibling(); prev != nil {
		prev.Tail = text
		return
	}
	n.Parent.Text = text
}

// LastDescendantOrSelf walks to the last child repeatedly, returning n
// itself if it has no children.
func LastDescendantOrSelf(n *Node) *Node {
	cur := n
	for len(cur.Children) > 0 {
		cur = cur.Children[len(cur.Children)-1]
	}
	return cur
}
