package external

type SheetsCaptureRow struct {
	Email        string `json:"email"`
	ReferralCode string `json:"referralCode"`
	ReferredBy   string `json:"referredBy,omitempty"`
	Source       string `json:"source"`
	Timestamp    string `json:"timestamp"`
}

type SheetsCaptureResponse struct {
	Result string `json:"result"`
	Row    int    `json:"row"`
}
