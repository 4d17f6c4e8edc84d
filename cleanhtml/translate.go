package cleanhtml

import "github.com/Financial-Times/clean-body-html/dom"

// TranslateTags renames deprecated/equivalent tags (b→strong, i→em,
// tt→code; see TagTranslations) everywhere except inside a whitelisted
// embed, which must survive byte-for-byte.
func TranslateTags(root *dom.Node) {
	for _, n := range dom.PostOrder(root) {
		if n.Whitelisted {
			continue
		}
		if renamed, ok := TagTranslations[n.Tag]; ok {
			n.Tag = renamed
		}
	}
}
