package research

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"seoagent-go/pkg/generator"
	"seoagent-go/pkg/intent"
	"seoagent-go/pkg/llm"
	"seoagent-go/pkg/logger"
	"seoagent-go/pkg/metrics"
	"seoagent-go/pkg/trends"
	"seoagent-go/pkg/worker"
)

// Pipeline defaults.
const (
	DefaultMaxKeywords = 50
	DefaultCountry     = "US"
	DefaultBatchSize   = 20
	DefaultBatchDelay  = 500 * time.Millisecond
	DefaultSeedDelay   = 1 * time.Second
)

// Agent owns the keyword research pipeline and its collaborators. Construct
// it once via AgentBuilder and share it; all methods are safe for concurrent
// use.
type Agent struct {
	generator  *generator.Generator
	classifier *intent.Classifier
	volume     *metrics.VolumeEstimator
	trends     trends.VolumeProvider // nil when no trends service configured
	runner     *worker.BatchRunner
	seedDelay  time.Duration
	log        *logger.Logger
}

// AgentBuilder assembles an Agent with validated configuration.
// Configuration problems are collected and surface once at Build, never at
// research time.
type AgentBuilder struct {
	apiKey              string
	apiBaseURL          string
	generationModel     string
	classificationModel string
	trendsBaseURL       string
	trendsAPIKey        string
	batchSize           int
	batchDelay          time.Duration
	seedDelay           time.Duration
	varianceSeed        int64
	disableVariance     bool
	completer           llm.Completer
	volumeProvider      trends.VolumeProvider
	errors              []error
}

// NewAgentBuilder creates a builder with pipeline defaults.
func NewAgentBuilder() *AgentBuilder {
	return &AgentBuilder{
		generationModel:     "gpt-4o-mini",
		classificationModel: "gpt-3.5-turbo",
		batchSize:           DefaultBatchSize,
		batchDelay:          DefaultBatchDelay,
		seedDelay:           DefaultSeedDelay,
	}
}

// WithOpenAI sets the chat completion credentials. The key is required
// unless a custom completer is injected.
func (b *AgentBuilder) WithOpenAI(apiKey, baseURL string) *AgentBuilder {
	b.apiKey = apiKey
	b.apiBaseURL = baseURL
	return b
}

// WithModels overrides the generation and classification model names.
func (b *AgentBuilder) WithModels(generation, classification string) *AgentBuilder {
	if generation != "" {
		b.generationModel = generation
	}
	if classification != "" {
		b.classificationModel = classification
	}
	return b
}

// WithTrends enables the optional external volume-lookup service. Either
// value alone is enough: an empty base URL targets the public SerpApi
// endpoint.
func (b *AgentBuilder) WithTrends(baseURL, apiKey string) *AgentBuilder {
	b.trendsBaseURL = baseURL
	b.trendsAPIKey = apiKey
	return b
}

// WithBatchSize sets how many keywords are analyzed concurrently.
func (b *AgentBuilder) WithBatchSize(size int) *AgentBuilder {
	if size <= 0 {
		b.errors = append(b.errors, fmt.Errorf("batch size must be positive, got: %d", size))
		return b
	}
	if size > 100 {
		b.errors = append(b.errors, fmt.Errorf("batch size too large (max 100), got: %d", size))
		return b
	}
	b.batchSize = size
	return b
}

// WithPacing sets the inter-batch and inter-seed delays.
func (b *AgentBuilder) WithPacing(batchDelay, seedDelay time.Duration) *AgentBuilder {
	if batchDelay < 0 || seedDelay < 0 {
		b.errors = append(b.errors, fmt.Errorf("pacing delays cannot be negative"))
		return b
	}
	b.batchDelay = batchDelay
	b.seedDelay = seedDelay
	return b
}

// WithVarianceSeed fixes the volume estimator's random source for
// reproducible runs.
func (b *AgentBuilder) WithVarianceSeed(seed int64) *AgentBuilder {
	b.varianceSeed = seed
	return b
}

// WithoutVariance disables volume variance entirely, making every metric
// deterministic.
func (b *AgentBuilder) WithoutVariance() *AgentBuilder {
	b.disableVariance = true
	return b
}

// WithCompleter injects a chat completion collaborator directly, bypassing
// client construction. Used by tests and by callers with their own client.
func (b *AgentBuilder) WithCompleter(c llm.Completer) *AgentBuilder {
	b.completer = c
	return b
}

// WithVolumeProvider injects a volume-lookup collaborator directly.
func (b *AgentBuilder) WithVolumeProvider(p trends.VolumeProvider) *AgentBuilder {
	b.volumeProvider = p
	return b
}

// Build validates the configuration and creates the Agent.
func (b *AgentBuilder) Build() (*Agent, error) {
	if len(b.errors) > 0 {
		msgs := make([]string, 0, len(b.errors))
		for _, err := range b.errors {
			msgs = append(msgs, err.Error())
		}
		return nil, fmt.Errorf("agent configuration invalid: %s", strings.Join(msgs, "; "))
	}

	completer := b.completer
	if completer == nil {
		client, err := llm.NewClient(llm.Config{
			BaseURL:      b.apiBaseURL,
			APIKey:       b.apiKey,
			DefaultModel: b.generationModel,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create chat client: %w", err)
		}
		completer = client
	}

	volumeProvider := b.volumeProvider
	if volumeProvider == nil && (b.trendsBaseURL != "" || b.trendsAPIKey != "") {
		client, err := trends.NewClient(trends.Config{
			BaseURL: b.trendsBaseURL,
			APIKey:  b.trendsAPIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create trends client: %w", err)
		}
		volumeProvider = client
	}

	var rng *rand.Rand
	if !b.disableVariance {
		seed := b.varianceSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	agent := &Agent{
		generator:  generator.NewGenerator(completer, b.generationModel),
		classifier: intent.NewClassifier(completer, b.classificationModel),
		volume:     metrics.NewVolumeEstimator(rng),
		trends:     volumeProvider,
		runner:     worker.NewBatchRunner(b.batchSize, b.batchDelay),
		seedDelay:  b.seedDelay,
		log:        logger.GetLogger().WithComponent("research_agent"),
	}

	agent.log.WithFields(map[string]interface{}{
		"generation_model":     b.generationModel,
		"classification_model": b.classificationModel,
		"batch_size":           b.batchSize,
		"trends_enabled":       volumeProvider != nil,
	}).Info("Research agent initialized")

	return agent, nil
}
