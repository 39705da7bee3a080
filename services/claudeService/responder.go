package claudeService

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"launchpadBot/services/cacheService"
	"launchpadBot/services/common"
	"launchpadBot/services/gamificationService"
	"launchpadBot/services/ragService"
	"launchpadBot/services/routerService"

	"golang.org/x/sync/errgroup"
)

const (
	responseCacheTTL = time.Hour
	ragTopK          = 3
)

const apologyMessage = "Sorry, I'm having trouble answering right now. Please try again in a minute, or ping a human in #support."

// Completer is the LLM call. *Client satisfies it; tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, cfg CompletionConfig) (string, error)
}

// IssueSearcher is the optional GitHub context source.
type IssueSearcher interface {
	SearchIssues(ctx context.Context, query string) (string, error)
}

// BountyProvider is the optional bounty-board context source.
type BountyProvider interface {
	ContextBlock(ctx context.Context) (string, error)
}

// Responder runs the question -> tier -> context -> response pipeline.
// GitHub and Bounties may be nil; those sources are skipped.
type Responder struct {
	LLM      Completer
	Cache    cacheService.Cache
	Index    *ragService.Index
	GitHub   IssueSearcher
	Bounties BountyProvider
}

// CacheKey normalizes the question so trivially different phrasings of
// the same string share an entry.
func CacheKey(question string) string {
	normalized := strings.ToLower(strings.TrimSpace(question))
	sum := sha256.Sum256([]byte(normalized))
	return "resp:" + hex.EncodeToString(sum[:])
}

// GenerateResponse answers one support question. The boolean reports a
// cache hit. Errors never escape: every failure path degrades to either
// a cheaper model or the apology string. The opus tier is reserved for
// premium guilds; everyone else tops out at sonnet.
func (r *Responder) GenerateResponse(ctx context.Context, userID, guildID, question string, premium bool) (string, bool) {
	key := CacheKey(question)
	if cached, ok := r.Cache.Get(ctx, key); ok {
		return cached, true
	}

	language := DetectLanguage(question)
	sentiment := DetectSentiment(question)
	tier := routerService.DetectComplexity(question)
	if tier == routerService.TierOpus && !premium {
		tier = routerService.TierSonnet
	}

	sources := r.gatherContext(ctx, userID, guildID, question)
	contextBlock := BuildContextBlock(sources, language, sentiment)

	answer, err := r.complete(ctx, tier, contextBlock, question)
	if err != nil {
		common.Log.Errorf("LLM call failed after fallback: %v", err)
		return apologyMessage, false
	}

	r.Cache.Set(ctx, key, answer, responseCacheTTL)
	return answer, false
}

// gatherContext fetches the optional sources concurrently. A failed
// source logs and contributes nothing; order in the prompt is fixed
// regardless of completion order.
func (r *Responder) gatherContext(ctx context.Context, userID, guildID, question string) []string {
	sources := make([]string, 4)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sources[0] = ragService.FormatContext(r.Index.Search(question, ragTopK))
		return nil
	})

	if r.GitHub != nil {
		g.Go(func() error {
			snippet, err := r.GitHub.SearchIssues(gctx, question)
			if err != nil {
				common.Log.Warnf("GitHub context fetch failed: %v", err)
				return nil
			}
			sources[1] = snippet
			return nil
		})
	}

	if r.Bounties != nil && mentionsBounties(question) {
		g.Go(func() error {
			snippet, err := r.Bounties.ContextBlock(gctx)
			if err != nil {
				common.Log.Warnf("bounty context fetch failed: %v", err)
				return nil
			}
			sources[2] = snippet
			return nil
		})
	}

	g.Go(func() error {
		if u := gamificationService.Get(userID, guildID); u != nil {
			sources[3] = fmt.Sprintf("User profile: level %d, %d questions asked, current streak %d days.",
				u.Level, u.QuestionCount, u.Streak)
		}
		return nil
	})

	_ = g.Wait()
	return sources
}

func mentionsBounties(question string) bool {
	q := strings.ToLower(question)
	return strings.Contains(q, "bounty") || strings.Contains(q, "bounties") || strings.Contains(q, "reward")
}

// complete makes the tier's model call with a single opus->sonnet
// fallback and nothing fancier.
func (r *Responder) complete(ctx context.Context, tier, contextBlock, question string) (string, error) {
	cfg := buildConfig(tier, contextBlock, question)
	answer, err := r.LLM.Complete(ctx, cfg)
	if err == nil {
		return answer, nil
	}

	fallback, ok := routerService.FallbackTier(tier)
	if !ok {
		return "", err
	}
	common.Log.Warnf("%s call failed, retrying on %s: %v", tier, fallback, err)
	return r.LLM.Complete(ctx, buildConfig(fallback, contextBlock, question))
}

func buildConfig(tier, contextBlock, question string) CompletionConfig {
	mc := routerService.ConfigForTier(tier)
	return CompletionConfig{
		Model:        mc.Model,
		MaxTokens:    mc.MaxTokens,
		Temperature:  mc.Temperature,
		SystemPrompt: systemPrompt,
		ContextBlock: contextBlock,
		Question:     question,
	}
}
