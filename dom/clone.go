package dom

// Clone returns a deep copy of n, detached from any parent. Callers that
// need to preserve their original tree clone before mutating, since Clean
// rewrites the tree it is given in place.
func Clone(n *Node) *Node {
	c := &Node{
		Tag:         n.Tag,
		Attr:        append([]Attribute(nil), n.Attr...),
		Text:        n.Text,
		Tail:        n.Tail,
		Whitelisted: n.Whitelisted,
	}
	c.Children = make([]*Node, len(n.Children))
	for i, child := range n.Children {
		cc := Clone(child)
		cc.Parent = c
		c.Children[i] = cc
	}
	return c
}
