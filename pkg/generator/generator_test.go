package generator

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"seoagent-go/pkg/llm"
)

type stubCompleter struct {
	response string
	err      error
}

func (s *stubCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	return s.response, s.err
}

func TestParseKeywordArray(t *testing.T) {
	got := ParseKeywordArray(`["seo tools", "keyword research", "best seo software"]`)
	want := []string{"best seo software", "keyword research", "seo tools"}

	if len(got) != len(want) {
		t.Fatalf("ParseKeywordArray returned %d keywords, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keyword[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseKeywordArrayToleratesCommentary(t *testing.T) {
	content := `Sure! Here are your keywords:

["seo tools", "keyword research"]

Hope that helps.`

	got := ParseKeywordArray(content)
	if len(got) != 2 {
		t.Fatalf("ParseKeywordArray returned %d keywords, want 2: %v", len(got), got)
	}
}

func TestParseKeywordArrayNormalizesAndDeduplicates(t *testing.T) {
	got := ParseKeywordArray(`["  SEO Tools ", "seo tools", "SEO TOOLS"]`)
	if len(got) != 1 || got[0] != "seo tools" {
		t.Fatalf("ParseKeywordArray = %v, want [seo tools]", got)
	}
}

func TestParseKeywordArrayDropsInvalidEntries(t *testing.T) {
	long := strings.Repeat("x", MaxKeywordLength+1)
	got := ParseKeywordArray(fmt.Sprintf(`["ok keyword", 42, null, "ab", %q]`, long))
	if len(got) != 1 || got[0] != "ok keyword" {
		t.Fatalf("ParseKeywordArray = %v, want [ok keyword]", got)
	}
}

func TestParseKeywordArrayMalformed(t *testing.T) {
	for _, content := range []string{
		"",
		"no array here",
		`["unterminated`,
		`[not json]`,
	} {
		if got := ParseKeywordArray(content); len(got) != 0 {
			t.Errorf("ParseKeywordArray(%q) = %v, want empty", content, got)
		}
	}
}

func TestNormalizeKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  SEO Tools ", "seo tools"},
		{"abc", "abc"},
		{"ab", ""},
		{"", ""},
		{"   ", ""},
		{strings.Repeat("x", MaxKeywordLength), strings.Repeat("x", MaxKeywordLength)},
		{strings.Repeat("x", MaxKeywordLength+1), ""},
	}

	for _, tt := range tests {
		if got := NormalizeKeyword(tt.in); got != tt.want {
			t.Errorf("NormalizeKeyword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRuleBasedKeywords(t *testing.T) {
	got := RuleBasedKeywords("Digital Marketing", Options{IncludeQuestions: true, IncludeLongTail: true})

	if len(got) == 0 {
		t.Fatal("RuleBasedKeywords returned no candidates")
	}
	if len(got) > MaxCandidates {
		t.Fatalf("RuleBasedKeywords returned %d candidates, cap is %d", len(got), MaxCandidates)
	}

	wantPresent := []string{
		"digital marketing",
		"best digital marketing",
		"how to digital marketing",
		"digital marketing guide",
		"digital marketing for beginners",
	}
	set := make(map[string]struct{}, len(got))
	for _, kw := range got {
		set[kw] = struct{}{}
	}
	for _, kw := range wantPresent {
		if _, ok := set[kw]; !ok {
			t.Errorf("expected candidate %q missing from %v", kw, got)
		}
	}

	if len(set) != len(got) {
		t.Errorf("candidates contain duplicates: %d unique of %d", len(set), len(got))
	}
}

func TestRuleBasedKeywordsOptions(t *testing.T) {
	noQuestions := RuleBasedKeywords("seo", Options{IncludeQuestions: false, IncludeLongTail: true})
	for _, kw := range noQuestions {
		if strings.HasPrefix(kw, "how to seo") || strings.HasPrefix(kw, "what is seo") {
			t.Errorf("question candidate %q present with IncludeQuestions=false", kw)
		}
	}

	noLongTail := RuleBasedKeywords("seo", Options{IncludeQuestions: true, IncludeLongTail: false})
	for _, kw := range noLongTail {
		if strings.HasSuffix(kw, "for beginners") || strings.HasSuffix(kw, "step by step") {
			t.Errorf("long-tail candidate %q present with IncludeLongTail=false", kw)
		}
	}
}

func TestRuleBasedKeywordsInvalidSeed(t *testing.T) {
	if got := RuleBasedKeywords("  ", Options{}); got != nil {
		t.Errorf("RuleBasedKeywords(blank) = %v, want nil", got)
	}
	if got := RuleBasedKeywords("ab", Options{}); got != nil {
		t.Errorf("RuleBasedKeywords(too short) = %v, want nil", got)
	}
}

func TestGenerateUsesModelResponse(t *testing.T) {
	g := NewGenerator(&stubCompleter{response: `["seo tools", "keyword research"]`}, "test-model")

	got := g.Generate(context.Background(), "seo", Options{})
	if len(got) != 2 {
		t.Fatalf("Generate returned %d keywords, want 2: %v", len(got), got)
	}
}

func TestGenerateFallsBackOnModelError(t *testing.T) {
	g := NewGenerator(&stubCompleter{err: fmt.Errorf("rate limited")}, "test-model")

	got := g.Generate(context.Background(), "seo", Options{IncludeQuestions: true, IncludeLongTail: true})
	if len(got) == 0 {
		t.Fatal("Generate returned no candidates on model failure")
	}
	found := false
	for _, kw := range got {
		if kw == "best seo" {
			found = true
		}
	}
	if !found {
		t.Errorf("rule-based fallback candidates missing, got %v", got)
	}
}

func TestGenerateFallsBackOnUnusableResponse(t *testing.T) {
	g := NewGenerator(&stubCompleter{response: "I cannot produce keywords right now."}, "test-model")

	got := g.Generate(context.Background(), "seo", Options{})
	if len(got) == 0 {
		t.Fatal("Generate returned no candidates on unusable response")
	}
}

func TestGenerateCapsCandidates(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < MaxCandidates+50; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%q", fmt.Sprintf("keyword variation %d", i))
	}
	b.WriteString("]")

	g := NewGenerator(&stubCompleter{response: b.String()}, "test-model")
	got := g.Generate(context.Background(), "seo", Options{})
	if len(got) != MaxCandidates {
		t.Fatalf("Generate returned %d candidates, want cap %d", len(got), MaxCandidates)
	}
}
