package dom

// PhrasingFunc reports whether a tag is phrasing content. The dom package
// stays vocabulary-agnostic; callers in package cleanhtml supply the actual
// classification.
type PhrasingFunc func(tag string) bool

// DropTagPreserveSpacing is the pivotal rewriting primitive. Removing a
// block element from inline-flowing context risks collapsing two
// paragraphs into one, so block removal first inserts <br><br> separators
// wherever text would otherwise run together; phrasing elements carry no
// such risk and are removed directly. The root can never be removed.
func DropTagPreserveSpacing(n *Node, preserveContent bool, isPhrasing PhrasingFunc) {
	if n.Parent == nil {
		return
	}

	if isPhrasing(n.Tag) {
		if preserveContent {
			unwrap(n)
		} else {
			dropSubtree(n)
		}
		return
	}

	hasTextPrev := hasNonSpace(PrevText(n))
	if !hasTextPrev {
		if prev := n.PrevSibling(); prev != nil && isPhrasing(prev.Tag) && !precededByDoubleBr(n) {
			hasTextPrev = true
		}
	}

	hasTextInside := preserveContent && (n.HasText() || len(n.Children) > 0)

	hasTextAfter := n.HasTailText()
	if !hasTextAfter {
		if next := n.NextSibling(); next != nil && isPhrasing(next.Tag) && !followedByDoubleBr(n) {
			hasTextAfter = true
		}
	}

	if hasTextPrev && (hasTextInside || hasTextAfter) {
		insertDoubleBrBefore(n)
	}
	if hasTextInside && hasTextAfter {
		insertDoubleBrAfter(n)
	}

	if preserveContent {
		unwrap(n)
	} else {
		dropSubtree(n)
	}
}

// precededByDoubleBr reports whether n is immediately preceded by two <br>
// siblings with no intervening tail text: an existing separator that makes
// inserting another one redundant.
func precededByDoubleBr(n *Node) bool {
	s1 := n.PrevSibling()
	if s1 == nil || s1.Tag != "br" || s1.Tail != "" {
		return false
	}
	s0 := s1.PrevSibling()
	return s0 != nil && s0.Tag == "br" && s0.Tail == ""
}

// followedByDoubleBr is the mirror of precededByDoubleBr, looking forward.
func followedByDoubleBr(n *Node) bool {
	if n.Tail != "" {
		return false
	}
	s1 := n.NextSibling()
	if s1 == nil || s1.Tag != "br" || s1.Tail != "" {
		return false
	}
	s2 := s1.NextSibling()
	return s2 != nil && s2.Tag == "br"
}

func insertDoubleBrBefore(n *Node) {
	idx := n.Index()
	n.Parent.InsertChildAt(idx, NewNode("br"))
	n.Parent.InsertChildAt(idx+1, NewNode("br"))
}

func insertDoubleBrAfter(n *Node) {
	idx := n.Index()
	second := NewNode("br")
	second.Tail = n.Tail
	n.Tail = ""
	n.Parent.InsertChildAt(idx+1, NewNode("br"))
	n.Parent.InsertChildAt(idx+2, second)
}

// unwrap removes n but keeps its children (and text) in its place,
// concatenating text/tail across the seam exactly where n used to sit.
func unwrap(n *Node) {
	parent := n.Parent
	idx := n.Index()

	if prev := n.PrevSibling(); prev != nil {
		prev.Tail += n.Text
	} else {
		parent.Text += n.Text
	}

	if len(n.Children) == 0 {
		if prev := n.PrevSibling(); prev != nil {
			prev.Tail += n.Tail
		} else {
			parent.Text += n.Tail
		}
		parent.RemoveChildAt(idx)
		return
	}

	last := n.Children[len(n.Children)-1]
	last.Tail += n.Tail

	newChildren := make([]*Node, 0, len(parent.Children)-1+len(n.Children))
	newChildren = append(newChildren, parent.Children[:idx]...)
	for _, c := range n.Children {
		c.Parent = parent
	}
	newChildren = append(newChildren, n.Children...)
	newChildren = append(newChildren, parent.Children[idx+1:]...)
	parent.Children = newChildren
	n.Parent = nil
}

// dropSubtree removes n and its entire content (text and children), but
// promotes n's tail into the surrounding stream: the tail is text that
// follows n, not content of n, so it survives even when content is dropped.
func dropSubtree(n *Node) {
	parent := n.Parent
	if prev := n.PrevSibling(); prev != nil {
		prev.Tail += n.Tail
	} else {
		parent.Text += n.Tail
	}
	parent.RemoveChild(n)
}

// WrapChildrenSlice moves parent's children [start, end) into a new element
// of the given tag, inserted at position start. The new element inherits
// the tail of the last moved child.
func WrapChildrenSlice(parent *Node, start, end int, tag string) *Node {
	wrapper := NewNode(tag)
	moved := append([]*Node(nil), parent.Children[start:end]...)

	if len(moved) > 0 {
		last := moved[len(moved)-1]
		wrapper.Tail = last.Tail
		last.Tail = ""
	}
	for _, c := range moved {
		c.Parent = wrapper
	}
	wrapper.Children = moved

	newChildren := make([]*Node, 0, len(parent.Children)-(end-start)+1)
	newChildren = append(newChildren, parent.Children[:start]...)
	newChildren = append(newChildren, wrapper)
	newChildren = append(newChildren, parent.Children[end:]...)
	parent.Children = newChildren
	wrapper.Parent = parent
	return wrapper
}

// WrapElementWithTag replaces node in its parent with a new wrapper of the
// given tag containing node. The wrapper inherits node's tail.
func WrapElementWithTag(node *Node, tag string) *Node {
	parent := node.Parent
	idx := node.Index()

	wrapper := NewNode(tag)
	wrapper.Tail = node.Tail
	node.Tail = ""
	wrapper.Parent = parent
	wrapper.Children = []*Node{node}
	node.Parent = wrapper

	parent.Children[idx] = wrapper
	return wrapper
}

// WrapElementContentWithTag moves all of node's children and its leading
// text into a new single child wrapper of the given tag.
func WrapElementContentWithTag(node *Node, tag string) *Node {
	wrapper := NewNode(tag)
	wrapper.Text = node.Text
	wrapper.Children = node.Children
	for _, c := range wrapper.Children {
		c.Parent = wrapper
	}
	node.Text = ""
	node.Children = []*Node{wrapper}
	wrapper.Parent = node
	return wrapper
}
