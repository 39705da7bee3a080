package scheduler_jobs

import (
	"time"

	"launchpadBot/models"

	"gorm.io/gorm"
)

const errorLogRetention = 30 * 24 * time.Hour

func PruneErrorLog(db *gorm.DB) error {
	cutoff := time.Now().Add(-errorLogRetention)
	return db.Unscoped().Where("created_at < ?", cutoff).Delete(&models.ErrorLog{}).Error
}
