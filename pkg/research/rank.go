package research

import "sort"

// RankKeywords orders records best-first: opportunity score descending, then
// search volume descending, then difficulty ascending. The sort is stable so
// fully tied records keep their analysis order.
func RankKeywords(keywords []KeywordMetrics) {
	sort.SliceStable(keywords, func(i, j int) bool {
		a, b := keywords[i], keywords[j]
		if a.OpportunityScore != b.OpportunityScore {
			return a.OpportunityScore > b.OpportunityScore
		}
		if a.SearchVolume != b.SearchVolume {
			return a.SearchVolume > b.SearchVolume
		}
		return a.Difficulty < b.Difficulty
	})
}
