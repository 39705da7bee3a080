package scheduler_jobs

import (
	"launchpadBot/services/common"
	"launchpadBot/services/gamificationService"
)

func RolloverStreaks() error {
	if reset := gamificationService.RolloverStreaks(); reset > 0 {
		common.Log.Infof("reset %d lapsed streaks", reset)
	}
	return nil
}
