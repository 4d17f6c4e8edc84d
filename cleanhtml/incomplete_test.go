package cleanhtml

import (
	"testing"

	"github.com/Financial-Times/clean-body-html/dom"
	"github.com/stretchr/testify/require"
)

func TestRemoveIncompleteStructuresUnwrapsOrphanListItem(t *testing.T) {
	root := dom.NewNode("article")
	li := dom.NewNode("li")
	li.Text = "orphan"
	root.AppendChild(li)

	RemoveIncompleteStructures(root, MustAncestorsForKeepContent, true)

	require.Empty(t, root.Children)
	require.Equal(t, "orphan", root.Text)
}

func TestRemoveIncompleteStructuresKeepsListItemInsideList(t *testing.T) {
	root := dom.NewNode("article")
	ul := dom.NewNode("ul")
	li := dom.NewNode("li")
	li.Text = "kept"
	ul.AppendChild(li)
	root.AppendChild(ul)

	RemoveIncompleteStructures(root, MustAncestorsForKeepContent, true)

	require.Len(t, root.Children, 1)
	require.Equal(t, "ul", root.Children[0].Tag)
	require.Equal(t, "li", root.Children[0].Children[0].Tag)
}

func TestRemoveIncompleteStructuresDropsOrphanFigcaptionContent(t *testing.T) {
	root := dom.NewNode("article")
	fc := dom.NewNode("figcaption")
	fc.Text = "discarded"
	root.AppendChild(fc)

	RemoveIncompleteStructures(root, MustAncestorsForDropContent, false)

	require.Empty(t, root.Children)
	require.Equal(t, "", root.Text)
}

func TestHasNoContentIgnoresTrulyEmptySubtree(t *testing.T) {
	wrapper := dom.NewNode("span")
	inner := dom.NewNode("em")
	wrapper.AppendChild(inner)

	require.True(t, hasNoContent(wrapper))

	inner.Text = "x"
	require.False(t, hasNoContent(wrapper))
}

func TestHasNoContentTreatsImageAsContent(t *testing.T) {
	wrapper := dom.NewNode("span")
	img := dom.NewNode("img")
	wrapper.AppendChild(img)

	require.False(t, hasNoContent(wrapper))
}
