package generator

import "fmt"

// Rule-based generation templates, applied when the model path degrades.
var (
	commercialPrefixes = []string{"best", "top", "affordable", "cheap", "professional", "premium", "quality"}

	questionPrefixes = []string{"how to", "what is", "why", "when to", "where to"}

	keywordSuffixes = []string{
		"guide", "tips", "services", "online", "near me", "reviews", "cost", "price",
		"benefits", "comparison", "alternatives", "solutions", "help", "support",
	}

	longTailTemplates = []string{
		"%s for beginners",
		"%s step by step",
		"%s complete guide",
		"%s free trial",
		"%s vs alternatives",
		"%s ultimate guide",
		"learn %s",
		"find %s",
		"get %s",
	}
)

// RuleBasedKeywords deterministically expands a seed with fixed prefix,
// suffix and long-tail templates. Output is deduplicated, normalized and
// capped at MaxCandidates.
func RuleBasedKeywords(seed string, opts Options) []string {
	base := NormalizeKeyword(seed)
	if base == "" {
		return nil
	}

	candidates := []string{base}

	for _, prefix := range commercialPrefixes {
		candidates = append(candidates, prefix+" "+base)
	}

	if opts.IncludeQuestions {
		for _, prefix := range questionPrefixes {
			candidates = append(candidates, prefix+" "+base)
		}
	}

	for _, suffix := range keywordSuffixes {
		candidates = append(candidates, base+" "+suffix)
	}

	if opts.IncludeLongTail {
		for _, tmpl := range longTailTemplates {
			candidates = append(candidates, fmt.Sprintf(tmpl, base))
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	keywords := make([]string, 0, len(candidates))
	for _, c := range candidates {
		kw := NormalizeKeyword(c)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}

	return capCandidates(keywords)
}
