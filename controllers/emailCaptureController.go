package controllers

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"launchpadBot/database"
	"launchpadBot/models"
	"launchpadBot/services/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail is the same check the site form runs client-side.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

type emailCaptureRequest struct {
	Email      string `json:"email"`
	ReferredBy string `json:"referredBy"`
}

type emailCaptureResponse struct {
	Success      bool   `json:"success"`
	ReferralCode string `json:"referralCode,omitempty"`
	Position     int    `json:"position,omitempty"`
	Error        string `json:"error,omitempty"`
}

// EmailCapture adds an address to the waitlist and hands back a referral
// code. Re-submitting an existing address returns the stored entry
// instead of erroring, so the form is safe to double-submit.
func EmailCapture(c *gin.Context) {
	var req emailCaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, emailCaptureResponse{Success: false, Error: "invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !ValidEmail(email) {
		c.JSON(http.StatusBadRequest, emailCaptureResponse{Success: false, Error: "invalid email address"})
		return
	}

	var entry models.WaitlistEntry
	result := database.DB.Where("email = ?", email).First(&entry)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		common.Log.Errorf("error looking up waitlist entry: %v", result.Error)
		c.JSON(http.StatusInternalServerError, emailCaptureResponse{Success: false, Error: "could not join waitlist"})
		return
	}
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		entry = models.WaitlistEntry{
			Email:        email,
			ReferralCode: uuid.NewString(),
			ReferredBy:   strings.TrimSpace(req.ReferredBy),
		}
		if err := database.DB.Create(&entry).Error; err != nil {
			common.Log.Errorf("error creating waitlist entry: %v", err)
			c.JSON(http.StatusInternalServerError, emailCaptureResponse{Success: false, Error: "could not join waitlist"})
			return
		}

		// Position comes from the auto-increment ID so concurrent
		// signups can't land on the same spot.
		entry.Position = int(entry.ID)
		if err := database.DB.Model(&entry).Update("position", entry.Position).Error; err != nil {
			common.Log.Warnf("error setting waitlist position for %s: %v", email, err)
		}

		// Forward to the marketing sheet off the request path; the row
		// is already persisted.
		go func(e models.WaitlistEntry) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := Sheets.Forward(ctx, e.Email, e.ReferralCode, e.ReferredBy); err != nil {
				common.Log.Warnf("sheets forward failed for %s: %v", e.Email, err)
			}
		}(entry)
	}

	c.JSON(http.StatusOK, emailCaptureResponse{
		Success:      true,
		ReferralCode: entry.ReferralCode,
		Position:     entry.Position,
	})
}

type waitlistStatusResponse struct {
	Success         bool   `json:"success"`
	Position        int    `json:"position,omitempty"`
	ReferralCount   int    `json:"referralCount"`
	DiscordVerified bool   `json:"discordVerified"`
	GitHubVerified  bool   `json:"githubVerified"`
	Error           string `json:"error,omitempty"`
}

func WaitlistStatus(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if !ValidEmail(email) {
		c.JSON(http.StatusBadRequest, waitlistStatusResponse{Success: false, Error: "invalid email address"})
		return
	}

	var entry models.WaitlistEntry
	if err := database.DB.Where("email = ?", email).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, waitlistStatusResponse{Success: false, Error: "email not on the waitlist"})
		return
	}

	c.JSON(http.StatusOK, waitlistStatusResponse{
		Success:         true,
		Position:        entry.Position,
		ReferralCount:   entry.ReferralCount,
		DiscordVerified: entry.DiscordVerified,
		GitHubVerified:  entry.GitHubVerified,
	})
}
