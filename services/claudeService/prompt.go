package claudeService

import (
	"fmt"
	"strings"
)

// The static product prompt. This is the block flagged for prompt
// caching, so keep per-request details out of it.
const systemPrompt = `You are the support assistant for Launchpad, a developer-tools platform, answering questions in the official Discord server.

Guidelines:
- Be concise and direct. Discord messages should stay under 2000 characters.
- Use the provided documentation context when it is relevant; do not invent product behavior that is not in the context.
- For billing disputes, refunds, or account deletion, direct the user to support@launchpad.dev instead of improvising.
- Format code and commands with Markdown code blocks.
- If you genuinely do not know, say so and point at the docs site.`

// BuildContextBlock folds the gathered optional sources plus the
// preprocessing hints into the non-cached system block.
func BuildContextBlock(sources []string, language, sentiment string) string {
	var parts []string
	for _, s := range sources {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}

	if language != "" && language != "english" {
		parts = append(parts, fmt.Sprintf("The user wrote in %s. Reply in %s.", language, language))
	}
	if sentiment == "negative" {
		parts = append(parts, "The user sounds frustrated. Acknowledge the frustration briefly before answering.")
	}

	return strings.Join(parts, "\n\n")
}
