package directive

import (
	"encoding/json"
	"strings"
)

// maxScanDepth bounds the brace matcher. Directives nest at most params
// inside the object, so anything deeper is not a candidate.
const maxScanDepth = 4

// Parse extracts a structured directive from a model reply. The model is
// instructed to emit either a lone JSON directive or free prose, but is not
// contractually guaranteed to isolate its output, so Parse tolerates
// surrounding text and malformed candidates. Returns nil when the reply is
// plain conversational text.
func Parse(raw string) *Directive {
	trimmed := strings.TrimSpace(raw)

	// Fast path: the whole reply is one JSON object.
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		if d := tryDecode(trimmed); d != nil {
			return d
		}
	}

	// Tolerant path: scan for balanced-brace substrings in order of
	// appearance and return the first that decodes. Decode failures on
	// individual candidates are non-fatal.
	for _, candidate := range scanObjects(trimmed) {
		if d := tryDecode(candidate); d != nil {
			return d
		}
	}

	return nil
}

// tryDecode decodes a candidate and verifies both required fields were
// actually present, not merely zero-valued.
func tryDecode(candidate string) *Directive {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		return nil
	}
	if _, ok := probe["action"]; !ok {
		return nil
	}
	if _, ok := probe["params"]; !ok {
		return nil
	}

	var d Directive
	if err := json.Unmarshal([]byte(candidate), &d); err != nil {
		return nil
	}
	return &d
}

// scanObjects returns balanced-brace substrings in order of appearance.
// It is a small bounded-depth matcher, not a general JSON parser: braces
// inside string literals are rare enough in model output that a candidate
// broken by one simply fails to decode and scanning continues.
func scanObjects(text string) []string {
	var candidates []string
	depth := 0
	start := -1

	for i, r := range text {
		switch r {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
			if depth > maxScanDepth {
				// Too deep to be a directive; abandon this candidate.
				depth = 0
				start = -1
			}
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				candidates = append(candidates, text[start:i+1])
				start = -1
			}
		}
	}

	return candidates
}
