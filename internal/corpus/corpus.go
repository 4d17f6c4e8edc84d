// Package corpus implements the optional annotation-corpus persistence
// format: a JSON object mapping an id to the raw HTML submitted for
// cleaning, the URL it came from, and the expected cleaned HTML, used by
// tests as a growing regression fixture set. This is not part of the
// cleaning core itself.
package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Case is one annotated fixture: the raw HTML a test feeds into Clean,
// the URL used as its base for link absolutization, and the HTML the
// pipeline is expected to produce.
type Case struct {
	URL          string `json:"url"`
	RawHTML      string `json:"raw_html"`
	ExpectedHTML string `json:"expected_html"`
}

// LoadCorpus parses a JSON object of id → Case.
func LoadCorpus(data []byte) (map[string]Case, error) {
	var cases map[string]Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("corpus: decode: %w", err)
	}
	return cases, nil
}

// SaveCorpus serializes cases with keys sorted, 4-space indentation, and
// HTML escaping disabled so that "<" and "&" in stored fixtures stay
// literal instead of becoming unicode escapes. encoding/json already sorts
// string map keys when marshaling, so no explicit sort is needed here.
func SaveCorpus(cases map[string]Case) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cases); err != nil {
		return nil, fmt.Errorf("corpus: encode: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
