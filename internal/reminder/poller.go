package reminder

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/notify"
)

// Source supplies the poller with reminder-enabled users and their
// schedules. The store satisfies it.
type Source interface {
	// EnabledPrefs lists preferences for users with reminders on.
	EnabledPrefs(ctx context.Context) ([]model.NotificationPrefs, error)
	// BlocksForDate lists one user's blocks for a YYYY-MM-DD date.
	BlocksForDate(ctx context.Context, userID, date string) ([]model.TimeBlock, error)
}

// Poller checks every tick whether any block's start falls inside its
// owner's lead window and fires a reminder at most once per block per
// day.
type Poller struct {
	src      Source
	sink     notify.Sink
	loc      *time.Location
	interval time.Duration
	log      zerolog.Logger

	// fired keys are blockID|date; only Run's goroutine touches it.
	fired map[string]struct{}
}

// NewPoller returns a poller ticking at the given interval.
func NewPoller(src Source, sink notify.Sink, loc *time.Location, interval time.Duration, log zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Poller{
		src:      src,
		sink:     sink,
		loc:      loc,
		interval: interval,
		log:      log.With().Str("component", "reminder-poller").Logger(),
		fired:    make(map[string]struct{}),
	}
}

// Run polls until ctx is cancelled. A failing tick is logged and the
// next tick proceeds normally.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info().Dur("interval", p.interval).Msg("reminder poller started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.processOnce(ctx, time.Now().In(p.loc))
	for {
		select {
		case <-ctx.Done():
			p.log.Info().Msg("reminder poller stopped")
			return ctx.Err()
		case <-ticker.C:
			p.processOnce(ctx, time.Now().In(p.loc))
		}
	}
}

// processOnce evaluates one tick at the given instant. Blocks are
// checked in ascending start-time order so near-simultaneous reminders
// come out in schedule order.
func (p *Poller) processOnce(ctx context.Context, now time.Time) {
	granted := p.sink.PermissionGranted()

	prefs, err := p.src.EnabledPrefs(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("listing enabled prefs failed, tick skipped")
		return
	}

	today := now.Format(model.DateLayout)
	for _, pref := range prefs {
		lead := pref.LeadMinutes
		if lead <= 0 {
			lead = model.DefaultLeadMinutes
		}

		blocks, err := p.src.BlocksForDate(ctx, pref.UserID, today)
		if err != nil {
			p.log.Error().Err(err).Str("user_id", pref.UserID).Msg("listing blocks failed")
			continue
		}
		sort.Slice(blocks, func(i, j int) bool { return blocks[i].StartTime < blocks[j].StartTime })

		for i := range blocks {
			b := &blocks[i]
			start, ok := blockStart(b, p.loc)
			if !ok {
				continue
			}
			until := start.Sub(now)
			if until <= 0 || until > time.Duration(lead)*time.Minute {
				continue
			}
			key := b.BlockID + "|" + b.Date
			if _, done := p.fired[key]; done {
				continue
			}
			// A due block without permission is suppressed but not
			// consumed; it can still fire on a later tick inside the
			// lead window once permission arrives.
			if !granted {
				suppressedTotal.Inc()
				p.log.Debug().Str("block_id", b.BlockID).Msg("reminder suppressed, no permission")
				continue
			}
			p.fired[key] = struct{}{}
			display(p.sink, b, p.log)
		}
	}
}
