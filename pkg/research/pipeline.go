package research

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seoagent-go/pkg/generator"
	"seoagent-go/pkg/worker"
)

// ResearchKeywords runs the full pipeline for one seed: generate candidates,
// analyze them in paced concurrent batches, rank, and truncate to the
// requested count. Partial analysis failures shrink the result set; only an
// invalid seed or context cancellation return an error. A run where both
// generation paths produce nothing yields an empty, well-formed Result.
func (a *Agent) ResearchKeywords(ctx context.Context, req Request) (*Result, error) {
	seed := strings.ToLower(strings.TrimSpace(req.Seed))
	if seed == "" {
		return nil, fmt.Errorf("seed keyword cannot be empty")
	}

	maxKeywords := req.MaxKeywords
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	country := req.Country
	if country == "" {
		country = DefaultCountry
	}

	start := time.Now()
	a.log.WithField("seed", seed).Info("Starting keyword research")

	// Generating
	candidates := a.generator.Generate(ctx, seed, generator.Options{
		IncludeQuestions: req.IncludeQuestions,
		IncludeLongTail:  req.IncludeLongTail,
	})
	a.log.WithFields(map[string]interface{}{
		"seed":  seed,
		"count": len(candidates),
	}).Info("Candidate keywords generated")

	if len(candidates) == 0 {
		return a.emptyResult(seed, country, start), nil
	}

	// Analyzing: fixed-size concurrent batches, one slot per candidate so a
	// failed analysis leaves a hole instead of poisoning its batch.
	slots := make([]*KeywordMetrics, len(candidates))
	jobs := make([]worker.Job, len(candidates))
	for i, keyword := range candidates {
		i, keyword := i, keyword
		jobs[i] = worker.Job{
			ID: keyword,
			Fn: func(ctx context.Context) error {
				record, err := a.analyzeKeyword(ctx, keyword, country)
				if err != nil {
					return err
				}
				slots[i] = &record
				return nil
			},
		}
	}

	stats, err := a.runner.Run(ctx, jobs)
	if err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	analyzed := make([]KeywordMetrics, 0, len(candidates))
	for _, record := range slots {
		if record != nil {
			analyzed = append(analyzed, *record)
		}
	}

	if stats.Failed > 0 {
		a.log.WithFields(map[string]interface{}{
			"failed":   stats.Failed,
			"analyzed": len(analyzed),
		}).Warn("Some keywords were excluded from analysis")
	}

	// Ranking
	RankKeywords(analyzed)

	// Done
	if len(analyzed) > maxKeywords {
		analyzed = analyzed[:maxKeywords]
	}

	elapsed := time.Since(start)
	result := &Result{
		SeedKeyword:    seed,
		TotalKeywords:  len(analyzed),
		ProcessingTime: round(elapsed.Seconds(), 2),
		Timestamp:      time.Now(),
		Country:        country,
		Keywords:       analyzed,
		Metadata: Metadata{
			APICalls:             len(candidates) + 1,
			RawKeywordsGenerated: len(candidates),
			FiltersApplied:       []string{"opportunity_score", "relevance", "competition"},
		},
	}

	a.log.WithFields(map[string]interface{}{
		"seed":     seed,
		"keywords": result.TotalKeywords,
		"duration": elapsed.String(),
	}).Info("Keyword research completed")

	return result, nil
}

// BatchResearch runs the pipeline once per seed, sequentially with a pacing
// delay, capturing each seed's failure in its own entry so sibling seeds
// always complete.
func (a *Agent) BatchResearch(ctx context.Context, seeds []string, maxKeywordsEach int, country string) (BatchResult, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("at least one seed keyword is required")
	}

	a.log.WithField("seeds", len(seeds)).Info("Starting batch keyword research")
	start := time.Now()

	results := make(BatchResult, len(seeds))
	for i, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := a.ResearchKeywords(ctx, Request{
			Seed:             seed,
			MaxKeywords:      maxKeywordsEach,
			Country:          country,
			IncludeQuestions: true,
			IncludeLongTail:  true,
		})
		if err != nil {
			a.log.WithError(err).WithField("seed", seed).Error("Seed research failed")
			results[seed] = BatchEntry{SeedKeyword: seed, Error: err.Error()}
		} else {
			results[seed] = BatchEntry{SeedKeyword: seed, Result: result}
		}

		if a.seedDelay > 0 && i < len(seeds)-1 {
			select {
			case <-time.After(a.seedDelay):
			case <-ctx.Done():
				return results, ctx.Err()
			}
		}
	}

	a.log.WithFields(map[string]interface{}{
		"seeds":    len(seeds),
		"duration": time.Since(start).String(),
	}).Info("Batch keyword research completed")

	return results, nil
}

// emptyResult builds the well-formed zero-keyword result for the
// total-generation-failure edge case.
func (a *Agent) emptyResult(seed, country string, start time.Time) *Result {
	a.log.WithField("seed", seed).Warn("No candidates generated, returning empty result")
	return &Result{
		SeedKeyword:    seed,
		TotalKeywords:  0,
		ProcessingTime: round(time.Since(start).Seconds(), 2),
		Timestamp:      time.Now(),
		Country:        country,
		Keywords:       []KeywordMetrics{},
		Metadata: Metadata{
			FiltersApplied: []string{"opportunity_score", "relevance", "competition"},
		},
	}
}
