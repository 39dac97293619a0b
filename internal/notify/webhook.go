package notify

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
)

// WebhookSink POSTs alerts to a push gateway that fans them out to the
// user's devices.
type WebhookSink struct {
	client *resty.Client
}

// NewWebhookSink returns a sink targeting the given gateway base URL.
func NewWebhookSink(baseURL string) *WebhookSink {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
	return &WebhookSink{client: c}
}

// PermissionGranted reports whether the sink has a configured gateway.
func (s *WebhookSink) PermissionGranted() bool {
	return s.client.BaseURL != ""
}

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag"`
}

// Display delivers the alert with a short exponential backoff; the
// gateway dedupes on the tag, so retries of the same key are safe.
func (s *WebhookSink) Display(title, body, dedupKey string) error {
	payload := pushPayload{Title: title, Body: body, Tag: dedupKey}

	op := func() error {
		resp, err := s.client.R().
			SetBody(&payload).
			Post("/notifications")
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("push gateway: http %d", resp.StatusCode())
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	if err := backoff.Retry(op, policy); err != nil {
		failedTotal.WithLabelValues("webhook").Inc()
		return err
	}
	displayedTotal.WithLabelValues("webhook").Inc()
	return nil
}
