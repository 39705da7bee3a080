package oauthService

import (
	"launchpadBot/models"
	"strings"
	"testing"
)

func TestShouldCreditReferral(t *testing.T) {
	tests := []struct {
		name     string
		entry    models.WaitlistEntry
		expected bool
	}{
		{
			name:     "both verified, referred, not yet credited",
			entry:    models.WaitlistEntry{DiscordVerified: true, GitHubVerified: true, ReferredBy: "abc"},
			expected: true,
		},
		{
			name:     "only discord verified",
			entry:    models.WaitlistEntry{DiscordVerified: true, ReferredBy: "abc"},
			expected: false,
		},
		{
			name:     "only github verified",
			entry:    models.WaitlistEntry{GitHubVerified: true, ReferredBy: "abc"},
			expected: false,
		},
		{
			name:     "no referrer",
			entry:    models.WaitlistEntry{DiscordVerified: true, GitHubVerified: true},
			expected: false,
		},
		{
			name: "already credited",
			entry: models.WaitlistEntry{
				DiscordVerified: true, GitHubVerified: true,
				ReferredBy: "abc", ReferralCredited: true,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldCreditReferral(&tt.entry); got != tt.expected {
				t.Errorf("ShouldCreditReferral = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAuthURLsCarryState(t *testing.T) {
	s := NewService()
	for _, url := range []string{s.DiscordAuthURL("code123"), s.GitHubAuthURL("code123")} {
		if url == "" {
			t.Fatal("expected non-empty auth URL")
		}
		if !strings.Contains(url, "state=code123") {
			t.Errorf("auth URL missing state: %s", url)
		}
	}
}
