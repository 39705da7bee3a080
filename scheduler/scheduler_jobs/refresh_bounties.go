package scheduler_jobs

import (
	"context"
	"time"

	"launchpadBot/services/bountyService"
)

func RefreshBounties(bounties *bountyService.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return bounties.Refresh(ctx)
}
