package metrics

import (
	"math"
	"strings"
)

// Cost-per-click bounds, in US dollars.
const (
	MinCPC = 0.25
	MaxCPC = 50.0

	baseCPC = 1.50
)

// CPC estimates the cost per click for a keyword, clamped to [MinCPC,
// MaxCPC] and rounded to cents. Industry tiers are mutually exclusive:
// only the highest-value matching tier applies.
func CPC(keyword string) float64 {
	kw := strings.ToLower(keyword)

	cpc := baseCPC

	switch {
	case containsAny(kw, []string{"insurance", "lawyer", "loan", "mortgage"}):
		cpc *= 15.0
	case containsAny(kw, []string{"software", "course", "training"}):
		cpc *= 5.0
	case containsAny(kw, []string{"buy", "purchase", "price"}):
		cpc *= 3.0
	case containsAny(kw, []string{"best", "top", "review"}):
		cpc *= 2.0
	}

	// Long-tail clicks are cheaper.
	wc := wordCount(kw)
	if wc >= 4 {
		cpc *= 0.6
	} else if wc >= 3 {
		cpc *= 0.8
	}

	return math.Round(clampFloat(cpc, MinCPC, MaxCPC)*100) / 100
}
