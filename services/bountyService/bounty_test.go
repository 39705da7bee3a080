package bountyService

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"launchpadBot/models/external"
	"launchpadBot/services/cacheService"
)

func seedCache(t *testing.T, cache cacheService.Cache, list external.BountyList) {
	t.Helper()
	raw, err := json.Marshal(list)
	if err != nil {
		t.Fatal(err)
	}
	cache.Set(context.Background(), cacheKey, string(raw), time.Minute)
}

func TestListServesFromCache(t *testing.T) {
	cache := cacheService.NewMemoryCache()
	seedCache(t, cache, external.BountyList{
		Bounties: []external.Bounty{{ID: 1, Title: "Fix flaky test", Status: "open", Reward: 100, Currency: "USD"}},
		Total:    1,
	})

	s := &Service{Cache: cache, BaseURL: "http://unreachable.invalid"}
	list, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("expected cached list, got error: %v", err)
	}
	if list.Total != 1 || list.Bounties[0].Title != "Fix flaky test" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestContextBlockFiltersToOpen(t *testing.T) {
	cache := cacheService.NewMemoryCache()
	seedCache(t, cache, external.BountyList{
		Bounties: []external.Bounty{
			{ID: 1, Title: "Open one", Status: "open", Reward: 50, Currency: "USD"},
			{ID: 2, Title: "Closed one", Status: "closed", Reward: 75, Currency: "USD"},
		},
		Total: 2,
	})

	s := &Service{Cache: cache}
	block, err := s.ContextBlock(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(block, "Open one") {
		t.Errorf("expected open bounty in block: %q", block)
	}
	if strings.Contains(block, "Closed one") {
		t.Errorf("closed bounty leaked into block: %q", block)
	}
}

func TestContextBlockEmptyWhenNothingOpen(t *testing.T) {
	cache := cacheService.NewMemoryCache()
	seedCache(t, cache, external.BountyList{
		Bounties: []external.Bounty{{ID: 2, Title: "Closed", Status: "closed"}},
		Total:    1,
	})

	s := &Service{Cache: cache}
	block, err := s.ContextBlock(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if block != "" {
		t.Errorf("expected empty block, got %q", block)
	}
}
