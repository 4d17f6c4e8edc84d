package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse turns an arbitrary, possibly malformed HTML fragment into a Node
// tree using golang.org/x/net/html's tag-soup-tolerant fragment parser.
// Parsing is the only fallible boundary in the whole pipeline; everything
// downstream of a successfully parsed tree is total.
//
// If the fragment has exactly one top-level element, that element becomes
// the tree root directly. Otherwise every top-level node (element or text)
// is gathered under a synthetic <div> root, mirroring how fragment parsers
// in other ecosystems wrap multi-rooted input; the root normalizer pass
// later forces whatever tag this root carries into <article> regardless.
func Parse(raw string) (*Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), context)
	if err != nil {
		return nil, fmt.Errorf("parsing html fragment: %w", err)
	}

	if len(nodes) == 1 && nodes[0].Type == html.ElementNode {
		return convertElement(nodes[0]), nil
	}

	root := NewNode("div")
	var leading strings.Builder
	var last *Node
	for _, hn := range nodes {
		switch hn.Type {
		case html.TextNode:
			if last == nil {
				leading.WriteString(hn.Data)
			} else {
				last.Tail += hn.Data
			}
		case html.ElementNode:
			el := convertElement(hn)
			root.AppendChild(el)
			last = el
		}
	}
	root.Text = leading.String()
	return root, nil
}

func convertElement(h *html.Node) *Node {
	n := NewNode(strings.ToLower(h.Data))
	for _, a := range h.Attr {
		n.Set(strings.ToLower(a.Key), a.Val)
	}
	convertChildren(n, h)
	return n
}

// convertChildren walks h's child list, splitting text nodes into the
// surrounding elements' Text/Tail fields the way the tree's lxml-style data
// model requires. Comments and doctypes have no representation in this tree and
// are dropped at the parse boundary; there is nothing further downstream
// that would ever need to see them.
func convertChildren(parent *Node, h *html.Node) {
	var leading strings.Builder
	var last *Node
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if last == nil {
				leading.WriteString(c.Data)
			} else {
				last.Tail += c.Data
			}
		case html.ElementNode:
			el := convertElement(c)
			parent.AppendChild(el)
			last = el
		}
	}
	parent.Text = leading.String()
}
