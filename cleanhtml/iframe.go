package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

// KillIframeContent blanks every <iframe>'s children and leading text.
// Browsers never render iframe fallback content anyway; dropping it
// removes a source of otherwise-unreachable markup surviving the
// vocabulary filters.
func KillIframeContent(root *dom.Node) {
	for _, n := range dom.PostOrder(root) {
		if n.Tag != "iframe" || n.Whitelisted {
			continue
		}
		for _, c := range n.Children {
			c.Parent = nil
		}
		n.Children = nil
		n.Text = ""
	}
}
