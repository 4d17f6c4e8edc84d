package cleanhtml

import (
	"testing"

	"github.com/Financial-Times/clean-body-html/dom"
	"github.com/stretchr/testify/require"
)

func TestParagraphizeLeavesBlockChildrenAsSiblings(t *testing.T) {
	root := dom.NewNode("article")
	root.Text = "intro"
	figure := dom.NewNode("figure")
	figure.Tail = "outro"
	root.AppendChild(figure)

	Paragraphize(root)

	require.Len(t, root.Children, 3)
	require.Equal(t, "p", root.Children[0].Tag)
	require.Equal(t, "intro", root.Children[0].Text)
	require.Same(t, figure, root.Children[1])
	require.Equal(t, "", figure.Tail)
	require.Equal(t, "p", root.Children[2].Tag)
	require.Equal(t, "outro", root.Children[2].Text)
}

func TestParagraphizeDropsEmptyChunks(t *testing.T) {
	root := dom.NewNode("article")
	figureA := dom.NewNode("figure")
	figureB := dom.NewNode("figure")
	root.AppendChild(figureA)
	root.AppendChild(figureB)

	Paragraphize(root)

	require.Len(t, root.Children, 2)
	require.Equal(t, "figure", root.Children[0].Tag)
	require.Equal(t, "figure", root.Children[1].Tag)
}

func TestMarkDoubleBrRunsIgnoresSingleBr(t *testing.T) {
	br := dom.NewNode("br")
	marked := markDoubleBrRuns([]*dom.Node{br})
	require.False(t, marked[br])
}
