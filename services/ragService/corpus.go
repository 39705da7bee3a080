package ragService

// The support corpus ships with the binary. Keep entries short and
// answer-shaped; they are pasted into the system prompt verbatim.
var supportCorpus = []*Document{
	{
		ID:       "install-cli",
		Category: "setup",
		Content:  "Install the CLI with `npm install -g @launchpad/cli` or grab a standalone binary from the releases page. Run `launchpad init` inside your project to generate a config.",
		Keywords: []string{"install", "setup", "cli", "npm", "init"},
	},
	{
		ID:       "auth-tokens",
		Category: "setup",
		Content:  "Authentication uses a personal access token. Create one from the dashboard under Settings > Tokens and export it as LAUNCHPAD_TOKEN. Tokens expire after 90 days.",
		Keywords: []string{"auth", "token", "login", "credentials"},
	},
	{
		ID:       "pricing-tiers",
		Category: "billing",
		Content:  "The Free tier covers 500 runs per month. Pro ($20/mo) raises the limit to 10,000 runs and adds priority queues. Team plans are usage-based; annual billing gets two months free.",
		Keywords: []string{"pricing", "billing", "plan", "subscription", "upgrade", "cost"},
	},
	{
		ID:       "billing-portal",
		Category: "billing",
		Content:  "Invoices, payment methods, and cancellation live in the billing portal linked from the dashboard. Downgrades take effect at the end of the current billing period.",
		Keywords: []string{"invoice", "cancel", "payment", "downgrade", "refund"},
	},
	{
		ID:       "waitlist-referrals",
		Category: "waitlist",
		Content:  "Waitlist position improves by 10 spots for every verified referral. A referral counts once the invitee verifies both their Discord and GitHub accounts through the OAuth flow.",
		Keywords: []string{"waitlist", "referral", "invite", "position", "verify"},
	},
	{
		ID:       "bounty-board",
		Category: "community",
		Content:  "Open bounties are listed on the bounty board and in the #bounties channel. Claim one by commenting on the linked issue; payouts go out within a week of the PR merging.",
		Keywords: []string{"bounty", "bounties", "reward", "contribute", "payout"},
	},
	{
		ID:       "xp-levels",
		Category: "community",
		Content:  "You earn XP for messages and answered questions in the Discord. Levels unlock badges and early-access features; streaks add a daily bonus. Check your progress with /my-xp.",
		Keywords: []string{"xp", "level", "badge", "streak", "rank"},
	},
	{
		ID:       "ci-integration",
		Category: "usage",
		Content:  "For CI, run `launchpad run --ci` with LAUNCHPAD_TOKEN set as a secret. The GitHub Action `launchpad/setup-action@v2` handles caching and version pinning for you.",
		Keywords: []string{"ci", "github actions", "pipeline", "automation"},
	},
	{
		ID:       "common-errors",
		Category: "troubleshooting",
		Content:  "ERR_CONFIG_NOT_FOUND means `launchpad init` was never run in the repo. 401 responses almost always mean an expired token. A stuck run can be cancelled with `launchpad cancel <run-id>`.",
		Keywords: []string{"error", "troubleshooting", "401", "config", "stuck", "failed"},
	},
	{
		ID:       "data-retention",
		Category: "usage",
		Content:  "Run logs are retained for 30 days on Free and 180 days on Pro. Artifacts can be exported with `launchpad export` before they age out.",
		Keywords: []string{"logs", "retention", "export", "artifacts", "data"},
	},
}

// DefaultIndex builds the index over the compiled-in corpus.
func DefaultIndex() *Index {
	return BuildIndex(supportCorpus)
}
