package routerService

import (
	"regexp"
	"strings"
)

// ModelConfig is the per-tier request shape sent to the Messages API.
type ModelConfig struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

const (
	TierHaiku  = "haiku"
	TierSonnet = "sonnet"
	TierOpus   = "opus"
)

var tierConfigs = map[string]ModelConfig{
	TierHaiku:  {Model: "claude-3-5-haiku-latest", MaxTokens: 512, Temperature: 0.5},
	TierSonnet: {Model: "claude-sonnet-4-20250514", MaxTokens: 1024, Temperature: 0.7},
	TierOpus:   {Model: "claude-opus-4-1-20250805", MaxTokens: 2048, Temperature: 0.7},
}

// ConfigForTier returns the config for an unknown tier as sonnet.
func ConfigForTier(tier string) ModelConfig {
	if cfg, ok := tierConfigs[tier]; ok {
		return cfg
	}
	return tierConfigs[TierSonnet]
}

// FallbackTier maps a failed tier to the one retried once before giving up.
// Only opus falls back; everything else is terminal.
func FallbackTier(tier string) (string, bool) {
	if tier == TierOpus {
		return TierSonnet, true
	}
	return "", false
}

var greetingRe = regexp.MustCompile(`(?i)^\s*(hi|hey|hello|yo|sup|thanks|thank you|ty|gm|good (morning|evening|night))[\s!.?]*$`)

// Weighted keywords. Scoring mirrors the support triage rules: anything
// that smells like debugging or systems work escalates fast.
var complexKeywords = map[string]int{
	"debug":          1,
	"error":          1,
	"crash":          1,
	"panic":          1,
	"kernel":         1,
	"segfault":       2,
	"stacktrace":     1,
	"stack trace":    1,
	"memory leak":    2,
	"deadlock":       2,
	"race condition": 2,
	"systemd":        1,
	"architecture":   1,
	"implement":      1,
	"refactor":       1,
	"security":       1,
	"vulnerability":  2,
	"performance":    1,
	"optimize":       1,
	"migration":      1,
	"regression":     1,
	"not working":    1,
	"broken":         1,
	"traceback":      1,
	"exception":      1,
}

// DetectComplexity maps a free-text question to a model tier. Trivial
// greetings go to haiku, a keyword score of 3+ goes to opus, anything
// in between gets the sonnet default.
func DetectComplexity(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return TierHaiku
	}
	if greetingRe.MatchString(q) {
		return TierHaiku
	}

	score := 0
	for kw, weight := range complexKeywords {
		if strings.Contains(q, kw) {
			score += weight
		}
	}

	// Long multi-part questions lean complex even without keywords.
	if len(strings.Fields(q)) > 60 {
		score++
	}
	if strings.Count(q, "```") >= 2 {
		score++
	}

	switch {
	case score >= 3:
		return TierOpus
	case score >= 1:
		return TierSonnet
	default:
		if len(strings.Fields(q)) <= 3 && !strings.Contains(q, "?") {
			return TierHaiku
		}
		return TierSonnet
	}
}
