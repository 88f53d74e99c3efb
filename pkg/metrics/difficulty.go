package metrics

import "strings"

// Difficulty bounds.
const (
	MinDifficulty = 5
	MaxDifficulty = 95

	baseDifficulty = 45
)

// Difficulty scores how hard a keyword is to rank for, in [MinDifficulty,
// MaxDifficulty]. Lower means easier.
//
// Competitive-term tiers are mutually exclusive: only the highest matching
// tier applies.
func Difficulty(keyword string) int {
	kw := strings.ToLower(keyword)
	wc := wordCount(kw)

	difficulty := baseDifficulty

	switch {
	case containsAny(kw, []string{"insurance", "lawyer", "mortgage", "loan"}):
		difficulty += 40
	case containsAny(kw, []string{"best", "top", "software", "course"}):
		difficulty += 25
	case containsAny(kw, []string{"buy", "price", "cost", "review"}):
		difficulty += 15
	}

	// More words, easier ranking.
	switch {
	case wc >= 5:
		difficulty -= 30
	case wc >= 4:
		difficulty -= 20
	case wc >= 3:
		difficulty -= 10
	}

	if containsAny(kw, []string{"how to", "what is", "why", "guide"}) {
		difficulty -= 15
	}

	if containsAny(kw, []string{"near me", "free", "tips"}) {
		difficulty -= 10
	}

	return clampInt(difficulty, MinDifficulty, MaxDifficulty)
}
