package metrics

import (
	"math/rand"
	"strings"
	"sync"
)

// Search volume bounds. Estimates are clamped into this range regardless of
// how many boosts a keyword collects.
const (
	MinSearchVolume = 50
	MaxSearchVolume = 100000

	baseSearchVolume = 500
)

// wordCountMultipliers maps word count to a volume multiplier. Single words
// carry the most traffic; long-tail phrases the least.
var wordCountMultipliers = map[int]float64{
	1: 8.0,
	2: 4.0,
	3: 2.0,
	4: 1.0,
	5: 0.6,
}

const longTailMultiplier = 0.3 // 6+ words

// VolumeEstimator produces monthly search volume estimates from keyword
// characteristics. An optional random source adds bounded variance for
// realism; a nil source makes the estimator fully deterministic.
type VolumeEstimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewVolumeEstimator creates an estimator. Pass nil to disable variance.
func NewVolumeEstimator(rng *rand.Rand) *VolumeEstimator {
	return &VolumeEstimator{rng: rng}
}

// Estimate returns the estimated monthly search volume for a keyword,
// clamped to [MinSearchVolume, MaxSearchVolume].
func (e *VolumeEstimator) Estimate(keyword string) int {
	kw := strings.ToLower(keyword)

	multiplier, ok := wordCountMultipliers[wordCount(kw)]
	if !ok {
		multiplier = longTailMultiplier
	}

	if containsAny(kw, highValueTerms) {
		multiplier *= 2.5
	}
	if containsAny(kw, mediumValueTerms) {
		multiplier *= 1.8
	}
	if containsAny(kw, commercialTerms) {
		multiplier *= 1.5
	}
	if strings.Contains(kw, "near me") {
		multiplier *= 0.7
	}
	if containsAny(kw, highTrafficIndustries) {
		multiplier *= 1.3
	}

	variance := 1.0
	if e.rng != nil {
		e.mu.Lock()
		variance = 0.5 + e.rng.Float64()*1.3 // uniform in [0.5, 1.8)
		e.mu.Unlock()
	}

	estimated := int(baseSearchVolume * multiplier * variance)
	return clampInt(estimated, MinSearchVolume, MaxSearchVolume)
}
