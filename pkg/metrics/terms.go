package metrics

import "strings"

// Marker term lists shared by the heuristic calculators. Grouped by the
// effect they have on a keyword's profile rather than by topic.
var (
	// highValueTerms indicate broad, heavily searched query shapes.
	highValueTerms = []string{"best", "top", "how to", "what is", "review", "buy", "free"}

	// mediumValueTerms indicate moderately searched helper queries.
	mediumValueTerms = []string{"guide", "tips", "help", "learn", "find", "get"}

	// commercialTerms signal purchase research or purchase readiness.
	commercialTerms = []string{"price", "cost", "buy", "purchase", "deal", "discount"}

	// ultraCompetitiveTerms are regulated or high-payout verticals where
	// paid and organic competition is extreme.
	ultraCompetitiveTerms = []string{"insurance", "lawyer", "mortgage", "loan", "credit card", "casino", "forex"}

	// highCompetitionTerms are crowded but not regulated verticals.
	highCompetitionTerms = []string{"software", "tool", "course", "training", "marketing", "seo"}

	// questionTerms mark question-phrased queries.
	questionTerms = []string{"how to", "what is", "why", "when", "where"}

	// highTrafficIndustries get a small volume lift from sheer audience size.
	highTrafficIndustries = []string{"insurance", "finance", "health", "tech", "education"}
)

// wordCount returns the number of whitespace-separated words in a keyword.
func wordCount(keyword string) int {
	return len(strings.Fields(keyword))
}

// containsAny reports whether the keyword contains at least one of the terms.
// Matching is substring-based on the lower-cased keyword, the same loose
// matching search tools apply to query text.
func containsAny(keyword string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(keyword, term) {
			return true
		}
	}
	return false
}

// isQuestion reports whether the keyword reads as a question query.
func isQuestion(keyword string) bool {
	return containsAny(keyword, questionTerms)
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
