package external

import "time"

type Bounty struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reward      float64   `json:"reward"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BountyList struct {
	Bounties []Bounty `json:"bounties"`
	Total    int      `json:"total"`
}
