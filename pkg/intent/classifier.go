package intent

import (
	"context"
	"fmt"
	"strings"

	"seoagent-go/pkg/llm"
	"seoagent-go/pkg/logger"
)

// Fallback pattern tiers, checked in order. First matching tier wins.
var (
	transactionalMarkers = []string{"buy", "purchase", "order", "apply", "signup", "register", "get", "download"}
	commercialMarkers    = []string{"best", "top", "review", "compare", "vs", "price", "cost", "deal"}
	informationalMarkers = []string{"how to", "what is", "why", "when", "guide", "tips", "learn", "tutorial"}
	navigationalMarkers  = []string{"login", "website", "official", "homepage"}
)

const classifyPromptFormat = `Classify the search intent for: "%s"

Categories:
- informational: seeking information/learning
- commercial: researching before purchase
- transactional: ready to buy/take action
- navigational: looking for specific site

Return ONLY the category name (one word).`

const classifySystemPrompt = "You are an expert in search intent classification. Return only the category name."

// Classifier resolves a keyword's search intent. The primary path asks the
// language-model collaborator; any failure or out-of-taxonomy answer routes
// to the pattern fallback, so classification itself never fails.
type Classifier struct {
	completer llm.Completer
	model     string
	log       *logger.Logger
}

// NewClassifier creates a classifier. A nil completer skips the model call
// and classifies by patterns only.
func NewClassifier(completer llm.Completer, model string) *Classifier {
	return &Classifier{
		completer: completer,
		model:     model,
		log:       logger.GetLogger().WithComponent("intent_classifier"),
	}
}

// Classify returns the intent for a keyword. Never returns an error.
func (c *Classifier) Classify(ctx context.Context, keyword string) Intent {
	if c.completer != nil {
		label, err := c.completer.Complete(ctx, llm.Request{
			Model:       c.model,
			System:      classifySystemPrompt,
			Prompt:      fmt.Sprintf(classifyPromptFormat, keyword),
			Temperature: 0.1,
			MaxTokens:   15,
		})
		if err == nil {
			label = strings.ToLower(strings.TrimSpace(label))
			if Valid(label) {
				return Intent(label)
			}
			c.log.WithField("label", label).Debug("Model returned out-of-taxonomy intent, using fallback")
		} else {
			c.log.WithError(err).WithField("keyword", keyword).Debug("Intent classification call failed, using fallback")
		}
	}

	return ClassifyByPatterns(keyword)
}

// ClassifyByPatterns classifies a keyword by marker patterns alone.
// Exported so the deterministic path is directly testable.
func ClassifyByPatterns(keyword string) Intent {
	kw := strings.ToLower(keyword)

	switch {
	case matchesAny(kw, transactionalMarkers):
		return Transactional
	case matchesAny(kw, commercialMarkers):
		return Commercial
	case matchesAny(kw, informationalMarkers):
		return Informational
	case matchesAny(kw, navigationalMarkers):
		return Navigational
	}

	// Long-tail phrases lean informational; short heads lean commercial.
	if len(strings.Fields(kw)) >= 3 {
		return Informational
	}
	return Commercial
}

func matchesAny(keyword string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(keyword, m) {
			return true
		}
	}
	return false
}
