package cleanhtml

// PhrasingContent is the HTML5 phrasing-content set. It is deliberately
// generous (it includes everything the HTML Living Standard classifies as
// phrasing, not just the allowed-tags' inline subset) because
// classification runs before the tag vocabulary is enforced, on tags that
// may not survive the sanitizer at all.
var PhrasingContent = set(
	"a", "abbr", "area", "audio", "b", "bdi", "bdo", "br", "button",
	"canvas", "cite", "code", "data", "datalist", "del", "dfn", "em",
	"embed", "i", "iframe", "img", "input", "ins", "kbd", "label",
	"link", "map", "mark", "math", "meta", "meter", "noscript", "object",
	"output", "picture", "progress", "q", "ruby", "s", "samp", "script",
	"select", "slot", "small", "span", "strong", "sub", "sup", "svg",
	"template", "textarea", "time", "u", "var", "video", "wbr",
)

// IsPhrasing reports whether tag is phrasing content. Any tag the system
// does not recognize at all defaults to phrasing: an unknown element is
// assumed to flow inline rather than break a paragraph.
func IsPhrasing(tag string) bool {
	if has(PhrasingContent, tag) {
		return true
	}
	return !has(knownBlockTags, tag)
}

// knownBlockTags is every tag this system recognizes as NOT phrasing.
// Anything outside both this set and PhrasingContent is, by definition,
// unknown to the system and therefore defaults to phrasing.
var knownBlockTags = union(
	TopLevelTags,
	TableTags,
	ListTags,
	DefListTags,
	set("figcaption", "div", "section", "article", "header", "footer",
		"nav", "main", "form", "style", "body", "html"),
)
