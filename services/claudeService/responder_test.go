package claudeService

import (
	"context"
	"errors"
	"strings"
	"testing"

	"launchpadBot/services/cacheService"
	"launchpadBot/services/ragService"
	"launchpadBot/services/routerService"
)

type fakeLLM struct {
	calls     []CompletionConfig
	responses []string
	errs      []error
}

func (f *fakeLLM) Complete(_ context.Context, cfg CompletionConfig) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, cfg)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	resp := ""
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func newTestResponder(llm *fakeLLM) *Responder {
	return &Responder{
		LLM:   llm,
		Cache: cacheService.NewMemoryCache(),
		Index: ragService.DefaultIndex(),
	}
}

func TestGenerateResponseCachesAnswers(t *testing.T) {
	llm := &fakeLLM{responses: []string{"first answer"}}
	r := newTestResponder(llm)
	ctx := context.Background()

	answer, cached := r.GenerateResponse(ctx, "u1", "g1", "How do I install the CLI?", false)
	if cached || answer != "first answer" {
		t.Fatalf("expected fresh answer, got %q (cached=%v)", answer, cached)
	}

	answer, cached = r.GenerateResponse(ctx, "u1", "g1", "  how do I install the CLI?  ", false)
	if !cached || answer != "first answer" {
		t.Errorf("expected cache hit on normalized question, got %q (cached=%v)", answer, cached)
	}
	if len(llm.calls) != 1 {
		t.Errorf("expected exactly one LLM call, got %d", len(llm.calls))
	}
}

func TestGenerateResponseOpusFallsBackToSonnet(t *testing.T) {
	llm := &fakeLLM{
		errs:      []error{errors.New("overloaded"), nil},
		responses: []string{"", "fallback answer"},
	}
	r := newTestResponder(llm)

	answer, _ := r.GenerateResponse(context.Background(), "u1", "g1", "debug my kernel panic in systemd", true)
	if answer != "fallback answer" {
		t.Fatalf("expected fallback answer, got %q", answer)
	}
	if len(llm.calls) != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", len(llm.calls))
	}
	if llm.calls[0].MaxTokens <= llm.calls[1].MaxTokens {
		t.Error("first call should be the bigger (opus) config")
	}
}

func TestGenerateResponseApologizesWhenAllCallsFail(t *testing.T) {
	llm := &fakeLLM{errs: []error{errors.New("down"), errors.New("still down")}}
	r := newTestResponder(llm)
	ctx := context.Background()

	answer, _ := r.GenerateResponse(ctx, "u1", "g1", "debug my kernel panic in systemd", true)
	if answer != apologyMessage {
		t.Fatalf("expected apology, got %q", answer)
	}

	// Failures must not be cached.
	if _, ok := r.Cache.Get(ctx, CacheKey("debug my kernel panic in systemd")); ok {
		t.Error("apology response should not be cached")
	}
}

func TestGenerateResponseSonnetHasNoFallback(t *testing.T) {
	llm := &fakeLLM{errs: []error{errors.New("down")}}
	r := newTestResponder(llm)

	answer, _ := r.GenerateResponse(context.Background(), "u1", "g1", "how do I change my plan?", false)
	if answer != apologyMessage {
		t.Fatalf("expected apology, got %q", answer)
	}
	if len(llm.calls) != 1 {
		t.Errorf("expected a single call for sonnet-tier failure, got %d", len(llm.calls))
	}
}

func TestGenerateResponseGatesOpusBehindPremium(t *testing.T) {
	opusTokens := routerService.ConfigForTier(routerService.TierOpus).MaxTokens
	sonnetTokens := routerService.ConfigForTier(routerService.TierSonnet).MaxTokens

	llm := &fakeLLM{responses: []string{"answer"}}
	r := newTestResponder(llm)
	r.GenerateResponse(context.Background(), "u1", "g1", "debug my kernel panic in systemd", false)
	if len(llm.calls) != 1 || llm.calls[0].MaxTokens != sonnetTokens {
		t.Fatalf("non-premium guild should get the sonnet config, got %+v", llm.calls)
	}

	llm = &fakeLLM{responses: []string{"answer"}}
	r = newTestResponder(llm)
	r.GenerateResponse(context.Background(), "u1", "g1", "debug my kernel panic in systemd", true)
	if len(llm.calls) != 1 || llm.calls[0].MaxTokens != opusTokens {
		t.Fatalf("premium guild should get the opus config, got %+v", llm.calls)
	}
}

func TestGenerateResponseIncludesRAGContext(t *testing.T) {
	llm := &fakeLLM{responses: []string{"answer"}}
	r := newTestResponder(llm)

	r.GenerateResponse(context.Background(), "u1", "g1", "how much does the pro subscription cost", false)
	if len(llm.calls) != 1 {
		t.Fatal("expected one call")
	}
	if llm.calls[0].ContextBlock == "" {
		t.Error("expected documentation context for a pricing question")
	}
}

func TestCacheKeyNormalizes(t *testing.T) {
	if CacheKey("Hello World") != CacheKey("  hello world  ") {
		t.Error("cache key should ignore case and surrounding whitespace")
	}
	if CacheKey("a") == CacheKey("b") {
		t.Error("distinct questions should not collide")
	}
}

func TestBuildContextBlock(t *testing.T) {
	block := strings.ToLower(BuildContextBlock([]string{"docs", "", "issues"}, "spanish", "negative"))
	for _, want := range []string{"docs", "issues", "spanish", "frustrat"} {
		if !strings.Contains(block, want) {
			t.Errorf("context block missing %q: %q", want, block)
		}
	}

	if BuildContextBlock(nil, "english", "neutral") != "" {
		t.Error("no sources and default hints should produce an empty block")
	}
}
