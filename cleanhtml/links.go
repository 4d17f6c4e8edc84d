package cleanhtml

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/Financial-Times/clean-body-html/dom"
)

// urlAttrs is every attribute the link absolutizer resolves against the
// base URL. srcset is handled separately because it packs multiple URLs
// with descriptors into one attribute value.
var urlAttrs = []string{"href", "src", "cite"}

var cssURLPattern = regexp.MustCompile(`url\(\s*(['"]?)([^'")]+)['"]?\s*\)`)

// AbsolutizeLinks rewrites every relative URL it finds, in href/src/cite
// attributes, in srcset, and in url(...) references inside <style> text or
// a style attribute, against base. It runs before the sanitizer drops
// <style> content, and, unlike most other passes, it is NOT gated by the
// embed whitelist: URL rewriting is allowed inside whitelisted subtrees.
func AbsolutizeLinks(root *dom.Node, base string) {
	if base == "" {
		return
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		log.Warn().Err(err).Str("base", base).Msg("skipping link absolutization: invalid base URL")
		return
	}

	for _, n := range dom.PostOrder(root) {
		for _, attr := range urlAttrs {
			if raw, ok := n.Get(attr); ok {
				if resolved, ok := resolve(baseURL, raw); ok {
					setURLAttr(n, attr, resolved)
				}
			}
		}
		if raw, ok := n.Get("srcset"); ok {
			n.Set("srcset", absolutizeSrcset(baseURL, raw))
		}
		if raw, ok := n.Get("style"); ok {
			n.Set("style", absolutizeCSSURLs(baseURL, raw))
		}
		if n.Tag == "style" {
			n.Text = absolutizeCSSURLs(baseURL, n.Text)
		}
	}
}

func resolve(base *url.URL, raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		log.Debug().Err(err).Str("url", raw).Msg("skipping malformed URL during absolutization")
		return "", false
	}
	return base.ResolveReference(parsed).String(), true
}

// setURLAttr applies the attribute-setter fallback: if the resolved value
// doesn't round-trip, strip control characters and
// retry once; if that still fails, leave the original value untouched.
func setURLAttr(n *dom.Node, attr, resolved string) {
	if trySetURL(n, attr, resolved) {
		return
	}
	stripped := stripControlChars(resolved)
	if trySetURL(n, attr, stripped) {
		return
	}
	// leave the original value; do nothing further.
}

func trySetURL(n *dom.Node, attr, value string) bool {
	if _, err := url.Parse(value); err != nil {
		return false
	}
	n.Set(attr, value)
	return true
}

func stripControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func absolutizeSrcset(base *url.URL, raw string) string {
	candidates := strings.Split(raw, ",")
	out := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		cand = strings.TrimSpace(cand)
		if cand == "" {
			continue
		}
		parts := strings.SplitN(cand, " ", 2)
		resolved, ok := resolve(base, parts[0])
		if !ok {
			out = append(out, cand)
			continue
		}
		if len(parts) == 2 {
			out = append(out, resolved+" "+strings.TrimSpace(parts[1]))
		} else {
			out = append(out, resolved)
		}
	}
	return strings.Join(out, ", ")
}

func absolutizeCSSURLs(base *url.URL, css string) string {
	return cssURLPattern.ReplaceAllStringFunc(css, func(match string) string {
		groups := cssURLPattern.FindStringSubmatch(match)
		quote, raw := groups[1], groups[2]
		resolved, ok := resolve(base, raw)
		if !ok {
			return match
		}
		return "url(" + quote + resolved + quote + ")"
	})
}
