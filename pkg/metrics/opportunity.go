package metrics

import "seoagent-go/pkg/intent"

// Opportunity score component weights. They sum to 100.
const (
	volumeWeight      = 0.35 // applied to the 0-100 normalized volume
	competitionWeight = 35.0
	difficultyWeight  = 20.0

	// volumeNormalizer maps raw monthly volume onto a 0-100 sub-scale:
	// 5000+ searches/month saturates the volume component.
	volumeNormalizer = 50.0
)

// intentBonus is the fixed 10%-weight intent component.
var intentBonus = map[intent.Intent]float64{
	intent.Transactional: 10,
	intent.Commercial:    8,
	intent.Informational: 6,
	intent.Navigational:  4,
}

// Opportunity combines volume, competition, difficulty and intent into a
// single 0-100 score used as the ranking key. Pure and total: identical
// inputs always yield identical output.
func Opportunity(searchVolume int, competition float64, difficulty int, in intent.Intent) float64 {
	volumeNormalized := float64(searchVolume) / volumeNormalizer
	if volumeNormalized > 100 {
		volumeNormalized = 100
	}
	volumeScore := volumeNormalized * volumeWeight

	competitionScore := (1 - competition) * competitionWeight
	difficultyScore := (100 - float64(difficulty)) / 100 * difficultyWeight

	bonus, ok := intentBonus[in]
	if !ok {
		bonus = intentBonus[intent.Informational]
	}

	return clampFloat(volumeScore+competitionScore+difficultyScore+bonus, 0, 100)
}
