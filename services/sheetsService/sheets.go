package sheetsService

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"launchpadBot/models/external"
	"launchpadBot/services/common"
)

// Forwarder posts captured emails to the marketing team's Apps-Script
// webhook. The capture is already persisted before this runs, so a
// webhook failure is logged by the caller and otherwise ignored.
type Forwarder struct {
	WebhookURL string
	httpClient *http.Client
}

func NewForwarder() *Forwarder {
	return &Forwarder{
		WebhookURL: os.Getenv("SHEETS_WEBHOOK_URL"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *Forwarder) Enabled() bool {
	return f != nil && f.WebhookURL != ""
}

func (f *Forwarder) Forward(ctx context.Context, email, referralCode, referredBy string) error {
	if !f.Enabled() {
		return nil
	}

	row := external.SheetsCaptureRow{
		Email:        email,
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
		Source:       "website",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", f.WebhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets webhook call failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sheets webhook returned status %d", resp.StatusCode)
	}

	// Apps-Script answers with {"result":"success","row":N} when the
	// append worked, but redirects can land on a non-JSON page; only a
	// parseable body that says something other than success is an error.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("sheets webhook response read failed: %v", err)
	}
	var ack external.SheetsCaptureResponse
	if err := json.Unmarshal(body, &ack); err != nil || ack.Result == "" {
		return nil
	}
	if ack.Result != "success" {
		return fmt.Errorf("sheets webhook reported %q", ack.Result)
	}
	common.Log.Debugf("sheets webhook appended %s at row %d", email, ack.Row)
	return nil
}
