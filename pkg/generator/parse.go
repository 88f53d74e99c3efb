package generator

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// arrayPattern matches the first bracketed array literal in free-form text,
// tolerating commentary before and after it.
var arrayPattern = regexp.MustCompile(`(?s)\[.*?\]`)

// ParseKeywordArray extracts candidate keywords from a model response.
// Best-effort: it finds the first well-formed JSON array, keeps string
// entries within the length bounds, lower-cases and deduplicates them.
// An absent or malformed array yields an empty slice, not an error - the
// rule-based generator takes over in that case.
func ParseKeywordArray(content string) []string {
	match := arrayPattern.FindString(strings.TrimSpace(content))
	if match == "" {
		return nil
	}

	var raw []interface{}
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	for _, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		kw := NormalizeKeyword(s)
		if kw == "" {
			continue
		}
		seen[kw] = struct{}{}
	}

	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	// Map order is random; keep the candidate set stable across runs.
	sort.Strings(keywords)
	return keywords
}

// NormalizeKeyword lower-cases and trims a candidate, returning "" when it
// falls outside the accepted length bounds.
func NormalizeKeyword(s string) string {
	kw := strings.ToLower(strings.TrimSpace(s))
	if len(kw) < MinKeywordLength || len(kw) > MaxKeywordLength {
		return ""
	}
	return kw
}
