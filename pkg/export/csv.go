package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"seoagent-go/pkg/research"
)

// csvHeader defines the tabular export column order.
var csvHeader = []string{
	"Keyword", "Opportunity Score", "Search Volume", "Competition Score",
	"Difficulty", "Intent", "CPC Estimate", "Ranking Probability", "Word Count",
}

// WriteCSV renders a research result as CSV, one row per keyword.
func WriteCSV(w io.Writer, result *research.Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, kw := range result.Keywords {
		row := []string{
			kw.Keyword,
			strconv.FormatFloat(kw.OpportunityScore, 'f', 1, 64),
			strconv.Itoa(kw.SearchVolume),
			strconv.FormatFloat(kw.CompetitionScore, 'f', 2, 64),
			strconv.Itoa(kw.Difficulty),
			string(kw.Intent),
			strconv.FormatFloat(kw.CPCEstimate, 'f', 2, 64),
			strconv.FormatFloat(kw.RankingProbability, 'f', 2, 64),
			strconv.Itoa(kw.WordCount),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
