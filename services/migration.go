package services

import (
	"fmt"
	"time"

	"launchpadBot/models"
	"launchpadBot/services/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RunReferralCodeBackfill issues referral codes to waitlist rows created
// before codes existed. Guarded by the migrations table so it runs once.
func RunReferralCodeBackfill(db *gorm.DB) error {
	var existingMigration models.Migration
	result := db.Where("name = ?", "waitlist_referral_code_backfill").First(&existingMigration)
	if result.Error == nil && existingMigration.ID != 0 {
		return nil
	}

	var entries []models.WaitlistEntry
	if err := db.Where("referral_code = ? OR referral_code IS NULL", "").Find(&entries).Error; err != nil {
		return fmt.Errorf("error fetching waitlist entries: %v", err)
	}

	for _, entry := range entries {
		entry.ReferralCode = uuid.NewString()
		if err := db.Save(&entry).Error; err != nil {
			return fmt.Errorf("error backfilling referral code for entry %d: %v", entry.ID, err)
		}
	}

	if len(entries) > 0 {
		common.Log.Infof("backfilled referral codes for %d waitlist entries", len(entries))
	}

	migration := models.Migration{
		Name:       "waitlist_referral_code_backfill",
		ExecutedAt: time.Now(),
	}
	return db.Create(&migration).Error
}
