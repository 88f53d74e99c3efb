package research

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"seoagent-go/pkg/metrics"
)

// analyzeKeyword computes the full metric record for one candidate. Search
// volume prefers the trends collaborator when one is configured; every other
// metric comes from the heuristic calculators. Only an empty keyword is an
// error - collaborator failures degrade internally.
func (a *Agent) analyzeKeyword(ctx context.Context, keyword, country string) (KeywordMetrics, error) {
	if strings.TrimSpace(keyword) == "" {
		return KeywordMetrics{}, fmt.Errorf("empty keyword")
	}

	searchVolume := a.lookupVolume(ctx, keyword, country)
	competition := metrics.Competition(keyword)
	difficulty := metrics.Difficulty(keyword)
	in := a.classifier.Classify(ctx, keyword)
	cpc := metrics.CPC(keyword)
	opportunity := metrics.Opportunity(searchVolume, competition, difficulty, in)
	probability := metrics.RankingProbability(difficulty)

	return KeywordMetrics{
		Keyword:            keyword,
		SearchVolume:       searchVolume,
		CompetitionScore:   round(competition, 2),
		Difficulty:         difficulty,
		Intent:             in,
		CPCEstimate:        cpc,
		OpportunityScore:   round(opportunity, 1),
		RankingProbability: round(probability, 2),
		WordCount:          len(strings.Fields(keyword)),
		CharacterCount:     utf8.RuneCountInString(keyword),
	}, nil
}

// lookupVolume resolves search volume from the trends service when
// configured, falling back to the heuristic estimator on any failure.
func (a *Agent) lookupVolume(ctx context.Context, keyword, country string) int {
	if a.trends != nil {
		volume, err := a.trends.Lookup(ctx, keyword, country)
		if err == nil && volume > 0 {
			return volume
		}
		if err != nil {
			a.log.WithError(err).WithField("keyword", keyword).Debug("Trends lookup unavailable, using heuristic estimate")
		}
	}
	return a.volume.Estimate(keyword)
}

// round truncates v to the given number of decimal places for display.
func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
