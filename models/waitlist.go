package models

import (
	"time"

	"gorm.io/gorm"
)

type WaitlistEntry struct {
	gorm.Model
	ID               uint   `gorm:"primaryKey"`
	Email            string `gorm:"uniqueIndex; size:255"`
	ReferralCode     string `gorm:"uniqueIndex; size:64"`
	ReferredBy       string `gorm:"size:64"`
	DiscordID        *string
	GitHubLogin      *string
	DiscordVerified  bool
	GitHubVerified   bool
	ReferralCredited bool
	ReferralCount    int
	Position         int
	VerifiedAt       *time.Time
}
