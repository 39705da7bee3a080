package oauthService

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"launchpadBot/models"
	"launchpadBot/services/common"

	gogithub "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
	"gorm.io/gorm"
)

// Referral positions improve by this many spots per credited referral.
const referralPositionBoost = 10

var discordEndpoint = oauth2.Endpoint{
	AuthURL:  "https://discord.com/oauth2/authorize",
	TokenURL: "https://discord.com/api/oauth2/token",
}

// Service runs the two verification flows. The OAuth state parameter is
// the waitlist entry's referral code, which is unique and unguessable.
type Service struct {
	Discord *oauth2.Config
	GitHub  *oauth2.Config
}

func NewService() *Service {
	base := os.Getenv("PUBLIC_BASE_URL")
	return &Service{
		Discord: &oauth2.Config{
			ClientID:     os.Getenv("DISCORD_CLIENT_ID"),
			ClientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
			Endpoint:     discordEndpoint,
			RedirectURL:  base + "/api/oauth/discord/callback",
			Scopes:       []string{"identify"},
		},
		GitHub: &oauth2.Config{
			ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
			ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
			Endpoint:     githuboauth.Endpoint,
			RedirectURL:  base + "/api/oauth/github/callback",
			Scopes:       []string{"read:user"},
		},
	}
}

func (s *Service) DiscordAuthURL(state string) string {
	return s.Discord.AuthCodeURL(state)
}

func (s *Service) GitHubAuthURL(state string) string {
	return s.GitHub.AuthCodeURL(state)
}

type discordUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// HandleDiscordCallback exchanges the code, resolves the Discord
// identity, and marks the waitlist entry verified.
func (s *Service) HandleDiscordCallback(ctx context.Context, db *gorm.DB, code, state string) error {
	token, err := s.Discord.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("discord token exchange failed: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", "https://discord.com/api/users/@me", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("discord identity fetch failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discord identity fetch returned status %d", resp.StatusCode)
	}

	var du discordUser
	if err := json.NewDecoder(resp.Body).Decode(&du); err != nil {
		return fmt.Errorf("error decoding discord user: %v", err)
	}

	return markVerified(db, state, func(entry *models.WaitlistEntry) {
		entry.DiscordID = &du.ID
		entry.DiscordVerified = true
	})
}

// HandleGitHubCallback is the GitHub half of the referral verification.
func (s *Service) HandleGitHubCallback(ctx context.Context, db *gorm.DB, code, state string) error {
	token, err := s.GitHub.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("github token exchange failed: %v", err)
	}

	client := gogithub.NewClient(s.GitHub.Client(ctx, token))
	ghUser, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return fmt.Errorf("github identity fetch failed: %v", err)
	}

	login := ghUser.GetLogin()
	return markVerified(db, state, func(entry *models.WaitlistEntry) {
		entry.GitHubLogin = &login
		entry.GitHubVerified = true
	})
}

// markVerified applies the flag update and credits the referrer inside
// one transaction so a double callback can't double-count.
func markVerified(db *gorm.DB, referralCode string, update func(*models.WaitlistEntry)) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var entry models.WaitlistEntry
		if err := tx.Where("referral_code = ?", referralCode).First(&entry).Error; err != nil {
			return fmt.Errorf("waitlist entry not found for state: %v", err)
		}

		update(&entry)

		if ShouldCreditReferral(&entry) {
			now := time.Now()
			entry.ReferralCredited = true
			entry.VerifiedAt = &now

			var referrer models.WaitlistEntry
			if err := tx.Where("referral_code = ?", entry.ReferredBy).First(&referrer).Error; err != nil {
				// Dangling referral code; verify the entry anyway.
				common.Log.Warnf("referrer %s not found for entry %d", entry.ReferredBy, entry.ID)
			} else {
				referrer.ReferralCount++
				referrer.Position -= referralPositionBoost
				if referrer.Position < 1 {
					referrer.Position = 1
				}
				if err := tx.Save(&referrer).Error; err != nil {
					return err
				}
			}
		}

		return tx.Save(&entry).Error
	})
}

// ShouldCreditReferral reports whether this entry's referrer is owed a
// credit: both accounts verified, referred by someone, not yet counted.
func ShouldCreditReferral(entry *models.WaitlistEntry) bool {
	return entry.DiscordVerified &&
		entry.GitHubVerified &&
		entry.ReferredBy != "" &&
		!entry.ReferralCredited
}
