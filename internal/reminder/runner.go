package reminder

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/notify"
)

// Runner keeps per-user timer schedulers in sync with the store. Every
// refresh it re-reads reminder-enabled users and their schedules for
// today and reschedules each user's triggers, cancelling triggers for
// users who turned reminders off.
type Runner struct {
	src     Source
	sink    notify.Sink
	loc     *time.Location
	refresh time.Duration
	log     zerolog.Logger

	scheds map[string]*TimerScheduler
}

// NewRunner returns a runner refreshing at the given cadence.
func NewRunner(src Source, sink notify.Sink, loc *time.Location, refresh time.Duration, log zerolog.Logger) *Runner {
	if refresh <= 0 {
		refresh = 5 * time.Minute
	}
	return &Runner{
		src:     src,
		sink:    sink,
		loc:     loc,
		refresh: refresh,
		log:     log.With().Str("component", "reminder-runner").Logger(),
		scheds:  make(map[string]*TimerScheduler),
	}
}

// Run refreshes until ctx is cancelled, then disarms everything.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Info().Dur("refresh", r.refresh).Msg("reminder runner started")

	ticker := time.NewTicker(r.refresh)
	defer ticker.Stop()

	r.refreshOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			for _, s := range r.scheds {
				s.CancelAll()
			}
			r.log.Info().Msg("reminder runner stopped")
			return ctx.Err()
		case <-ticker.C:
			r.refreshOnce(ctx)
		}
	}
}

func (r *Runner) refreshOnce(ctx context.Context) {
	prefs, err := r.src.EnabledPrefs(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("listing enabled prefs failed, refresh skipped")
		return
	}

	today := time.Now().In(r.loc).Format(model.DateLayout)
	enabled := make(map[string]struct{}, len(prefs))
	for _, pref := range prefs {
		enabled[pref.UserID] = struct{}{}

		blocks, err := r.src.BlocksForDate(ctx, pref.UserID, today)
		if err != nil {
			r.log.Error().Err(err).Str("user_id", pref.UserID).Msg("listing blocks failed")
			continue
		}

		lead := pref.LeadMinutes
		if lead <= 0 {
			lead = model.DefaultLeadMinutes
		}
		s, ok := r.scheds[pref.UserID]
		if !ok {
			s = NewTimerScheduler(r.sink, r.loc, r.log.With().Str("user_id", pref.UserID).Logger())
			r.scheds[pref.UserID] = s
		}
		s.Reschedule(blocks, time.Duration(lead)*time.Minute)
	}

	for userID, s := range r.scheds {
		if _, ok := enabled[userID]; !ok {
			s.CancelAll()
			delete(r.scheds, userID)
		}
	}
}
