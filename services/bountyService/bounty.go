package bountyService

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"launchpadBot/models/external"
	"launchpadBot/services/cacheService"
	"launchpadBot/services/common"
)

const (
	cacheKey  = "bounties:list"
	cacheTTL  = 15 * time.Minute
	maxInline = 5
)

// Service serves the bounty board from cache. The cron refresh keeps the
// cache warm; request paths never block on the upstream API unless the
// cache is cold.
type Service struct {
	Cache   cacheService.Cache
	BaseURL string
}

func NewService(cache cacheService.Cache) *Service {
	base := os.Getenv("BOUNTY_API_URL")
	if base == "" {
		base = "https://api.launchpad.dev/bounties"
	}
	return &Service{Cache: cache, BaseURL: base}
}

// Refresh fetches the bounty list from the upstream API and rewrites the
// cache entry. Called at startup and from cron.
func (s *Service) Refresh(ctx context.Context) error {
	resp, err := common.BountyWrapper(s.BaseURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var list external.BountyList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return fmt.Errorf("error decoding bounty list: %v", err)
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	s.Cache.Set(ctx, cacheKey, string(raw), cacheTTL)
	return nil
}

// List returns the cached bounty list, refreshing on a cold cache.
func (s *Service) List(ctx context.Context) (*external.BountyList, error) {
	raw, ok := s.Cache.Get(ctx, cacheKey)
	if !ok {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
		raw, ok = s.Cache.Get(ctx, cacheKey)
		if !ok {
			return nil, fmt.Errorf("bounty cache still cold after refresh")
		}
	}

	var list external.BountyList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("error decoding cached bounties: %v", err)
	}
	return &list, nil
}

// ContextBlock renders open bounties as a prompt snippet for the
// responder's optional bounty source.
func (s *Service) ContextBlock(ctx context.Context) (string, error) {
	list, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	var open []external.Bounty
	for _, b := range list.Bounties {
		if b.Status == "open" {
			open = append(open, b)
		}
	}
	if len(open) == 0 {
		return "", nil
	}
	if len(open) > maxInline {
		open = open[:maxInline]
	}

	var sb strings.Builder
	sb.WriteString("Open bounties right now:\n")
	for _, b := range open {
		sb.WriteString(fmt.Sprintf("- %s (%.0f %s) %s\n", b.Title, b.Reward, b.Currency, b.URL))
	}
	return sb.String(), nil
}
