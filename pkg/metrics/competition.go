package metrics

import "strings"

// Competition score bounds.
const (
	MinCompetition = 0.1
	MaxCompetition = 0.95

	baseCompetition = 0.5
)

// Competition scores how contested a keyword is, in [MinCompetition,
// MaxCompetition]. Lower means less competitive.
func Competition(keyword string) float64 {
	kw := strings.ToLower(keyword)
	wc := wordCount(kw)

	competition := baseCompetition

	if containsAny(kw, ultraCompetitiveTerms) {
		competition += 0.4
	}
	if containsAny(kw, highCompetitionTerms) {
		competition += 0.2
	}
	if containsAny(kw, []string{"best", "top", "buy", "price", "cost"}) {
		competition += 0.15
	}

	// Long-tail phrases face fewer competing pages.
	if wc >= 4 {
		competition -= 0.25
	} else if wc >= 3 {
		competition -= 0.15
	}

	if isQuestion(kw) {
		competition -= 0.2
	}

	return clampFloat(competition, MinCompetition, MaxCompetition)
}
