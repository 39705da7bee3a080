package scheduler

import (
	"fmt"

	"launchpadBot/models"
	"launchpadBot/scheduler/scheduler_jobs"
	"launchpadBot/services/bountyService"
	"launchpadBot/services/cacheService"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Job specs, seconds field included.
var cronSpecs = map[string]string{
	"refresh-bounties": "0 */15 * * * *", // every 15 minutes
	"flush-xp":         "0 */5 * * * *",  // every 5 minutes
	"rollover-streaks": "0 5 0 * * *",    // daily at 00:05
	"prune-errorlog":   "0 0 3 * * 0",    // weekly, Sunday 3am
	"sweep-cache":      "0 0 */1 * * *",  // hourly
}

func SetupCron(db *gorm.DB, bounties *bountyService.Service, memCache *cacheService.MemoryCache) {
	cronService := cron.New(cron.WithSeconds())

	// Each registration is checked on its own; a bad spec in one job
	// must not hide behind a later good one.
	addJob := func(name string, job func()) {
		if _, err := cronService.AddFunc(cronSpecs[name], job); err != nil {
			errLog := models.ErrorLog{
				GuildID: "CRON ERR",
				Message: fmt.Sprintf("%s: %v", name, err),
			}
			db.Create(&errLog)
		}
	}

	addJob("refresh-bounties", func() {
		err := scheduler_jobs.RefreshBounties(bounties)
		if err != nil {
			fmt.Println(err)
		}
	})
	addJob("flush-xp", func() {
		err := scheduler_jobs.FlushXP(db)
		if err != nil {
			fmt.Println(err)
		}
	})
	addJob("rollover-streaks", func() {
		err := scheduler_jobs.RolloverStreaks()
		if err != nil {
			fmt.Println(err)
		}
	})
	addJob("prune-errorlog", func() {
		err := scheduler_jobs.PruneErrorLog(db)
		if err != nil {
			fmt.Println(err)
		}
	})
	if memCache != nil {
		addJob("sweep-cache", func() {
			memCache.Sweep()
		})
	}

	cronService.Start()
}
