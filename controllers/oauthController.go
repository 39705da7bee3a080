package controllers

import (
	"net/http"
	"net/url"
	"os"

	"launchpadBot/database"
	"launchpadBot/services/common"

	"github.com/gin-gonic/gin"
)

func frontendURL(path string, params url.Values) string {
	base := os.Getenv("FRONTEND_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	u := base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// DiscordStart kicks off the Discord half of referral verification. The
// waitlist referral code rides in the OAuth state parameter.
func DiscordStart(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		c.Redirect(http.StatusFound, frontendURL("/waitlist", url.Values{"error": {"missing_ref"}}))
		return
	}
	c.Redirect(http.StatusFound, Oauth.DiscordAuthURL(ref))
}

func DiscordCallback(c *gin.Context) {
	code, state := c.Query("code"), c.Query("state")
	if code == "" || state == "" {
		c.Redirect(http.StatusFound, frontendURL("/waitlist", url.Values{"error": {"oauth_denied"}}))
		return
	}

	if err := Oauth.HandleDiscordCallback(c.Request.Context(), database.DB, code, state); err != nil {
		common.Log.Errorf("discord oauth callback failed: %v", err)
		c.Redirect(http.StatusFound, frontendURL("/waitlist", url.Values{"error": {"discord_verification_failed"}}))
		return
	}

	c.Redirect(http.StatusFound, frontendURL("/waitlist", url.Values{"verified": {"discord"}}))
}

func GitHubStart(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		c.Redirect(http.StatusFound, frontendURL("/waitlist", url.Values{"error": {"missing_ref"}}))
		return
	}
	c.Redirect(http.StatusFound, Oauth.GitHubAuthURL(ref))
}

func GitHubCallback(c *gin.Context) {
	code, state := c.Query("code"), c.Query("state")
	if code == "" || state == "" {
		c.Redirect(http.StatusFound, frontendURL("/waitlist", url.Values{"error": {"oauth_denied"}}))
		return
	}

	if err := Oauth.HandleGitHubCallback(c.Request.Context(), database.DB, code, state); err != nil {
		common.Log.Errorf("github oauth callback failed: %v", err)
		c.Redirect(http.StatusFound, frontendURL("/waitlist", url.Values{"error": {"github_verification_failed"}}))
		return
	}

	c.Redirect(http.StatusFound, frontendURL("/waitlist", url.Values{"verified": {"github"}}))
}
