package dom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var isPhrasingForTest PhrasingFunc = func(tag string) bool {
	switch tag {
	case "br", "strong", "em", "a", "span":
		return true
	default:
		return false
	}
}

func TestDropTagPreserveSpacingUnwrapsPhrasing(t *testing.T) {
	root := NewNode("p")
	root.Text = "a"
	span := NewNode("span")
	span.Text = "b"
	span.Tail = "c"
	root.AppendChild(span)

	DropTagPreserveSpacing(span, true, isPhrasingForTest)

	require.Empty(t, root.Children)
	require.Equal(t, "abc", root.Text)
}

func TestDropTagPreserveSpacingInsertsSeparatorsForBlock(t *testing.T) {
	root := NewNode("article")
	root.Text = "before"
	div := NewNode("div")
	div.Text = "inside"
	div.Tail = "after"
	root.AppendChild(div)

	DropTagPreserveSpacing(div, true, isPhrasingForTest)

	// before <br><br> inside <br><br> after
	require.Equal(t, "before", root.Text)
	tags := make([]string, len(root.Children))
	for i, c := range root.Children {
		tags[i] = c.Tag
	}
	require.Equal(t, []string{"br", "br", "br", "br"}, tags)
	require.Equal(t, "inside", root.Children[1].Tail)
	require.Equal(t, "after", root.Children[3].Tail)
}

func TestDropTagPreserveSpacingNoOpOnRoot(t *testing.T) {
	root := NewNode("article")
	DropTagPreserveSpacing(root, true, isPhrasingForTest)
	require.Equal(t, "article", root.Tag)
}

func TestWrapChildrenSlice(t *testing.T) {
	root := NewNode("article")
	a := NewNode("img")
	b := NewNode("figcaption")
	b.Tail = "tail-of-b"
	root.AppendChild(a)
	root.AppendChild(b)

	fig := WrapChildrenSlice(root, 0, 2, "figure")

	require.Equal(t, []*Node{fig}, root.Children)
	require.Equal(t, "tail-of-b", fig.Tail)
	require.Equal(t, "", b.Tail)
	require.Equal(t, []*Node{a, b}, fig.Children)
	require.Same(t, fig, a.Parent)
}

func TestWrapElementWithTag(t *testing.T) {
	root := NewNode("article")
	img := NewNode("img")
	img.Tail = "caption text"
	root.AppendChild(img)

	fig := WrapElementWithTag(img, "figure")

	require.Equal(t, []*Node{fig}, root.Children)
	require.Equal(t, "caption text", fig.Tail)
	require.Equal(t, "", img.Tail)
	require.Same(t, fig, img.Parent)
}

func TestWrapElementContentWithTag(t *testing.T) {
	figcaption := NewNode("figcaption")
	figcaption.Text = "hello "
	em := NewNode("em")
	figcaption.AppendChild(em)

	wrapper := WrapElementContentWithTag(figcaption, "p")

	require.Equal(t, []*Node{wrapper}, figcaption.Children)
	require.Equal(t, "", figcaption.Text)
	require.Equal(t, "hello ", wrapper.Text)
	require.Equal(t, []*Node{em}, wrapper.Children)
}
