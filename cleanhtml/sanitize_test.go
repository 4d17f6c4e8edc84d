package cleanhtml

import (
	"testing"

	"github.com/Financial-Times/clean-body-html/dom"
	"github.com/stretchr/testify/require"
)

func TestSanitizeDropsScriptSubtree(t *testing.T) {
	root := dom.NewNode("article")
	script := dom.NewNode("script")
	script.Text = "evil()"
	root.AppendChild(script)

	Sanitize(root)

	require.Empty(t, root.Children)
}

func TestSanitizeStripsJavascriptHref(t *testing.T) {
	root := dom.NewNode("article")
	a := dom.NewNode("a")
	a.Set("href", "javascript:alert(1)")
	a.Text = "click"
	root.AppendChild(a)

	Sanitize(root)

	require.False(t, root.Children[0].Has("href"))
}

func TestSanitizeFiltersDisallowedAttributesButKeepsDataAttrs(t *testing.T) {
	root := dom.NewNode("article")
	p := dom.NewNode("p")
	p.Set("onclick", "doBad()")
	p.Set("data-tracking", "1")
	p.Set("title", "ok")
	p.Text = "x"
	root.AppendChild(p)

	Sanitize(root)

	kept := root.Children[0]
	require.False(t, kept.Has("onclick"))
	require.True(t, kept.Has("data-tracking"))
	require.True(t, kept.Has("title"))
}

func TestSanitizeUnwrapsDisallowedTag(t *testing.T) {
	root := dom.NewNode("article")
	span := dom.NewNode("span")
	span.Text = "hello"
	root.AppendChild(span)

	Sanitize(root)

	require.Equal(t, "hello", root.Text)
	require.Empty(t, root.Children)
}

func TestSanitizeRenamesDisallowedRootToDiv(t *testing.T) {
	root := dom.NewNode("body")
	root.Set("onload", "x")
	p := dom.NewNode("p")
	p.Text = "keep"
	root.AppendChild(p)

	Sanitize(root)

	require.Equal(t, "div", root.Tag)
	require.Empty(t, root.Attr)
	require.Len(t, root.Children, 1)
}

func TestSanitizeKeepsSourceChildOfVideo(t *testing.T) {
	root := dom.NewNode("article")
	video := dom.NewNode("video")
	source := dom.NewNode("source")
	source.Set("src", "a.mp4")
	video.AppendChild(source)
	root.AppendChild(video)

	Sanitize(root)

	require.Len(t, root.Children[0].Children, 1)
	require.Equal(t, "source", root.Children[0].Children[0].Tag)
}

func TestSanitizeSkipsWhitelistedSubtree(t *testing.T) {
	root := dom.NewNode("article")
	embed := dom.NewNode("weird-embed-tag")
	embed.Whitelisted = true
	embed.Set("onclick", "x")
	root.AppendChild(embed)

	Sanitize(root)

	require.Len(t, root.Children, 1)
	require.Equal(t, "weird-embed-tag", root.Children[0].Tag)
	require.True(t, root.Children[0].Has("onclick"))
}
