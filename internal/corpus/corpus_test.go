package corpus

import (
	"testing"

	"github.com/nsf/jsondiff"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cases := map[string]Case{
		"b-case": {URL: "https://example.com/b", RawHTML: "<div>b</div>", ExpectedHTML: "<article>\n\n<p>b</p>\n\n</article>"},
		"a-case": {URL: "https://example.com/a", RawHTML: "<div>a & <b>bold</b></div>", ExpectedHTML: "<article>\n\n<p>a &amp; <strong>bold</strong></p>\n\n</article>"},
	}

	encoded, err := SaveCorpus(cases)
	if err != nil {
		t.Fatalf("SaveCorpus: %v", err)
	}

	decoded, err := LoadCorpus(encoded)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(decoded) != len(cases) {
		t.Fatalf("got %d cases, want %d", len(decoded), len(cases))
	}
	for id, want := range cases {
		got, ok := decoded[id]
		if !ok {
			t.Fatalf("missing case %q after round trip", id)
		}
		if got != want {
			t.Errorf("case %q: got %+v, want %+v", id, got, want)
		}
	}
}

func TestSaveCorpusKeysSorted(t *testing.T) {
	cases := map[string]Case{
		"zeta":  {URL: "z"},
		"alpha": {URL: "a"},
		"mu":    {URL: "m"},
	}
	encoded, err := SaveCorpus(cases)
	if err != nil {
		t.Fatalf("SaveCorpus: %v", err)
	}

	want := `{
    "alpha": {
        "url": "a",
        "raw_html": "",
        "expected_html": ""
    },
    "mu": {
        "url": "m",
        "raw_html": "",
        "expected_html": ""
    },
    "zeta": {
        "url": "z",
        "raw_html": "",
        "expected_html": ""
    }
}`

	opts := jsondiff.DefaultJSONOptions()
	diff, _ := jsondiff.Compare(encoded, []byte(want), &opts)
	if diff != jsondiff.FullMatch {
		t.Errorf("got: %s\n\nwant: %s", encoded, want)
	}
	// jsondiff ignores key order, so only the byte-exact comparison checks the sorting.
	if string(encoded) != want {
		t.Errorf("keys not in sorted order:\ngot: %s\n\nwant: %s", encoded, want)
	}
}
