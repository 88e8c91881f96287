package catalog

import (
	"encoding/json"
	"strings"
)

// parseFragments decodes a loosely formatted JSON data file into records.
// Data files are hand-maintained, so besides a well-formed array or object a
// file may carry a trailing comma or hold comma-separated objects with the
// surrounding array brackets missing. Candidates are tried in a fixed order:
// the raw text, the raw text minus a trailing comma, and both wrapped in
// array brackets. The first candidate that decodes wins; a single object
// decodes as a one-element slice. No error escapes: undecodable input yields
// an empty result.
func parseFragments[T any](raw []byte) []T {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil
	}

	stripped := strings.TrimRight(strings.TrimSuffix(strings.TrimRight(trimmed, " \t\r\n"), ","), " \t\r\n")
	candidates := []string{
		trimmed,
		stripped,
		"[" + trimmed + "]",
		"[" + stripped + "]",
	}

	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true

		if records, ok := decodeFragment[T](candidate); ok {
			return records
		}
	}

	return nil
}

func decodeFragment[T any](text string) ([]T, bool) {
	// A file holding only a comma strips down to an empty candidate.
	if text == "" {
		return nil, false
	}
	switch text[0] {
	case '[':
		var records []T
		if err := json.Unmarshal([]byte(text), &records); err == nil {
			return records, true
		}
	case '{':
		var record T
		if err := json.Unmarshal([]byte(text), &record); err == nil {
			return []T{record}, true
		}
	}
	return nil, false
}
