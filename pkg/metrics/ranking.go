package metrics

// RankingProbability maps a difficulty score to the probability of landing
// a first-page placement. Deterministic step function, monotonically
// decreasing in difficulty.
func RankingProbability(difficulty int) float64 {
	switch {
	case difficulty <= 20:
		return 0.85
	case difficulty <= 35:
		return 0.70
	case difficulty <= 50:
		return 0.50
	case difficulty <= 65:
		return 0.30
	case difficulty <= 80:
		return 0.15
	default:
		return 0.05
	}
}
