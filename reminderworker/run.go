// Package reminderworker boots the standalone block-reminder worker.
package reminderworker

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/PickleRicc/deep-work-sub001/internal/config"
	"github.com/PickleRicc/deep-work-sub001/internal/factory"
	"github.com/PickleRicc/deep-work-sub001/internal/logger"
	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/reminder"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
)

// Run starts the reminder worker and blocks until shutdown or error.
func Run() error {
	log := logger.New("reminder-worker")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Str("reminder_mode", cfg.ReminderMode).
		Str("notify_sink", cfg.NotifySink).
		Msg("Reminder worker starting")

	st, err := factory.NewStore(cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}
	sink, err := factory.NewSink(cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Notification sink unavailable")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := storeSource{st: st}
	loc := cfg.Location()

	switch cfg.ReminderMode {
	case "poll":
		p := reminder.NewPoller(src, sink, loc, cfg.ReminderInterval(), log)
		err = p.Run(ctx)
	case "timer":
		r := reminder.NewRunner(src, sink, loc, cfg.ReminderRefresh(), log)
		err = r.Run(ctx)
	default:
		return fmt.Errorf("unknown reminder mode: %s", cfg.ReminderMode)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Stack().Err(err).Msg("reminder worker exit")
		return err
	}
	return nil
}

// storeSource adapts the store to the reminder Source contract.
type storeSource struct{ st store.Store }

func (s storeSource) EnabledPrefs(ctx context.Context) ([]model.NotificationPrefs, error) {
	return s.st.Prefs().ListEnabled(ctx)
}

func (s storeSource) BlocksForDate(ctx context.Context, userID, date string) ([]model.TimeBlock, error) {
	return s.st.Blocks().ListForDate(ctx, userID, date)
}
