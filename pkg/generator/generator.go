package generator

import (
	"context"
	"fmt"
	"strings"

	"seoagent-go/pkg/llm"
	"seoagent-go/pkg/logger"
)

// Candidate length bounds and the cap on candidates per run.
const (
	MinKeywordLength = 3
	MaxKeywordLength = 80
	MaxCandidates    = 100
)

// Options controls which keyword shapes a generation run asks for.
type Options struct {
	IncludeQuestions bool
	IncludeLongTail  bool
}

// Generator produces candidate keywords for a seed phrase. The primary path
// asks the language-model collaborator for a JSON array of variations; any
// failure or unparsable response degrades to the rule-based fallback, so
// generation itself never fails.
type Generator struct {
	completer llm.Completer
	model     string
	log       *logger.Logger
}

// NewGenerator creates a generator. A nil completer always uses the
// rule-based path.
func NewGenerator(completer llm.Completer, model string) *Generator {
	return &Generator{
		completer: completer,
		model:     model,
		log:       logger.GetLogger().WithComponent("keyword_generator"),
	}
}

// Generate returns a deduplicated, normalized candidate set for the seed.
func (g *Generator) Generate(ctx context.Context, seed string, opts Options) []string {
	if g.completer != nil {
		raw, err := g.completer.Complete(ctx, llm.Request{
			Model:       g.model,
			System:      generateSystemPrompt,
			Prompt:      buildGenerationPrompt(seed, opts),
			Temperature: 0.7,
			MaxTokens:   2000,
		})
		if err == nil {
			keywords := ParseKeywordArray(raw)
			if len(keywords) > 0 {
				g.log.WithFields(map[string]interface{}{
					"seed":  seed,
					"count": len(keywords),
				}).Debug("Keywords generated from model response")
				return capCandidates(keywords)
			}
			g.log.WithField("seed", seed).Warn("Model response yielded no usable keywords, using rule-based generation")
		} else {
			g.log.WithError(err).WithField("seed", seed).Warn("Keyword generation call failed, using rule-based generation")
		}
	}

	return RuleBasedKeywords(seed, opts)
}

const generateSystemPrompt = "You are an expert SEO keyword researcher. Return ONLY valid JSON arrays of keywords. Never add explanations or extra text."

// buildGenerationPrompt assembles the natural-language instruction for the
// model, shaped by the caller's inclusion options.
func buildGenerationPrompt(seed string, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Generate 100 high-value SEO keyword variations for: "%s"

REQUIREMENTS:
- Each keyword must be realistic and searchable
- Include commercial intent keywords (best, top, review, buy)
- Include informational keywords (how to, what is, guide, tips)
- Include transactional keywords (apply, signup, get, find)
- Focus on keywords that can realistically rank on first page
- Avoid ultra-competitive broad terms
- Include semantic variations and related concepts

KEYWORD TYPES TO INCLUDE:
- Exact match variations and synonyms
- "Best %s" and "Top %s" variations
- Problem-solution keywords
- User benefit keywords
- Location-based variations when relevant`, seed, seed, seed)

	if opts.IncludeQuestions {
		b.WriteString(`
- Question-based keywords (how, what, why, when, where)
- "How to" variations
- "What is" variations`)
	}

	if opts.IncludeLongTail {
		b.WriteString(`
- Long-tail variations (3+ words)
- Specific use case keywords
- Niche-specific variations`)
	}

	b.WriteString(`

CRITICAL: Return ONLY a valid JSON array of strings:
["keyword 1", "keyword 2", "keyword 3", ...]

No explanations, no extra text, ONLY the JSON array.`)

	return b.String()
}

// capCandidates bounds the candidate set at MaxCandidates.
func capCandidates(keywords []string) []string {
	if len(keywords) > MaxCandidates {
		return keywords[:MaxCandidates]
	}
	return keywords
}
