package scheduler_jobs

import (
	"launchpadBot/services/gamificationService"

	"gorm.io/gorm"
)

func FlushXP(db *gorm.DB) error {
	return gamificationService.Flush(db)
}
