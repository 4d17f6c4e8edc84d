package dom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeVoidElementHasNoClosingTag(t *testing.T) {
	root := NewNode("p")
	img := NewNode("img")
	img.Set("src", "a.jpg")
	root.AppendChild(img)

	require.Equal(t, `<p><img src="a.jpg"></p>`, Serialize(root))
}

func TestSerializeEmptyNonVoidTagIsNeverSelfClosing(t *testing.T) {
	root := NewNode("p")
	require.Equal(t, "<p></p>", Serialize(root))
}

func TestSerializeEscapesTextAndAttributes(t *testing.T) {
	root := NewNode("p")
	root.Text = "a & b < c"
	root.Set("title", `say "hi"`)

	require.Equal(t, `<p title="say &#34;hi&#34;">a &amp; b &lt; c</p>`, Serialize(root))
}

func TestSerializeExcludesRootOwnTail(t *testing.T) {
	root := NewNode("p")
	root.Tail = "should not appear"
	require.Equal(t, "<p></p>", Serialize(root))
}

func TestSerializeIncludesChildTail(t *testing.T) {
	root := NewNode("article")
	a := NewNode("p")
	a.Tail = "after"
	root.AppendChild(a)

	require.Equal(t, "<article><p></p>after</article>", Serialize(root))
}

func TestIsVoid(t *testing.T) {
	require.True(t, IsVoid("br"))
	require.True(t, IsVoid("img"))
	require.True(t, IsVoid("hr"))
	require.False(t, IsVoid("p"))
}
