package research

import (
	"time"

	"seoagent-go/pkg/intent"
)

// KeywordMetrics is the full metric record computed for one candidate
// keyword. Every numeric field is derived from the keyword string (and, for
// intent, possibly a collaborator call); records are never mutated after
// analysis except for display rounding applied at creation.
type KeywordMetrics struct {
	Keyword            string        `json:"keyword"`
	SearchVolume       int           `json:"search_volume"`
	CompetitionScore   float64       `json:"competition_score"`
	Difficulty         int           `json:"difficulty"`
	Intent             intent.Intent `json:"intent"`
	CPCEstimate        float64       `json:"cpc_estimate"`
	OpportunityScore   float64       `json:"opportunity_score"`
	RankingProbability float64       `json:"ranking_probability"`
	WordCount          int           `json:"word_count"`
	CharacterCount     int           `json:"character_count"`
}

// Metadata carries run accounting for one research invocation.
type Metadata struct {
	APICalls             int      `json:"api_calls"`
	RawKeywordsGenerated int      `json:"raw_keywords_generated"`
	FiltersApplied       []string `json:"filters_applied"`
}

// Result is the outcome of one research run. Keywords are ordered by rank;
// the struct is immutable once returned.
type Result struct {
	SeedKeyword    string           `json:"seed_keyword"`
	TotalKeywords  int              `json:"total_keywords"`
	ProcessingTime float64          `json:"processing_time"`
	Timestamp      time.Time        `json:"timestamp"`
	Country        string           `json:"country"`
	Keywords       []KeywordMetrics `json:"keywords"`
	Metadata       Metadata         `json:"metadata"`
}

// BatchEntry holds one seed's slot in a batch run: either a result or the
// error that seed hit. Seeds fail independently.
type BatchEntry struct {
	SeedKeyword string  `json:"seed_keyword"`
	Result      *Result `json:"result,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// BatchResult maps each requested seed to its entry.
type BatchResult map[string]BatchEntry

// Request describes one research invocation.
type Request struct {
	Seed             string `json:"seed_keyword"`
	MaxKeywords      int    `json:"max_keywords"`
	Country          string `json:"country"`
	IncludeQuestions bool   `json:"include_questions"`
	IncludeLongTail  bool   `json:"include_long_tail"`
}
