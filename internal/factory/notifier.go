package factory

import (
	"fmt"

	"github.com/PickleRicc/deep-work-sub001/internal/config"
	"github.com/PickleRicc/deep-work-sub001/internal/notify"
)

// NewSink selects the notification sink based on cfg.NotifySink.
func NewSink(cfg *config.Config) (notify.Sink, error) {
	switch cfg.NotifySink {
	case "desktop":
		return notify.NewDesktopSink("Deep Work Planner"), nil
	case "webhook":
		if cfg.WebhookURL == "" {
			return nil, fmt.Errorf("webhook sink requires PLANNER_WEBHOOK_URL")
		}
		return notify.NewWebhookSink(cfg.WebhookURL), nil
	default:
		return nil, fmt.Errorf("unknown notification sink: %s", cfg.NotifySink)
	}
}
