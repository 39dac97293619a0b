// Package reminder decides when block reminders fire. Two
// implementations satisfy the same contract: a one-shot timer scheduler
// for environments with reliable long-lived timers, and a polling
// checker for those without. One canonical implementation is selected
// per deployment.
package reminder

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/notify"
)

// Scheduler arms at-most-once reminder triggers for a set of blocks.
//
// Each trigger moves ARMED -> FIRED or ARMED -> CANCELLED and never
// re-arms. Reschedule cancels every previously armed trigger before
// arming new ones, so a block present in both the old and new set fires
// at most once.
type Scheduler interface {
	// Reschedule replaces all armed triggers with triggers for the
	// given blocks at start-minus-lead. Fire times already in the past
	// are skipped, never fired retroactively.
	Reschedule(blocks []model.TimeBlock, lead time.Duration)
	// CancelAll disarms every pending trigger. Idempotent.
	CancelAll()
}

// blockStart resolves a block's starting instant in loc.
func blockStart(b *model.TimeBlock, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(model.DateLayout+" "+model.ClockLayout, b.Date+" "+b.StartTime, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// formatClock renders HH:MM as a 12-hour clock string for display.
func formatClock(hhmm string) string {
	t, err := time.Parse(model.ClockLayout, hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// dedupKey is the stable sink-level replacement tag for a block.
func dedupKey(b *model.TimeBlock) string { return "block-" + b.BlockID }

// display pushes one block reminder through the sink. Callers are
// responsible for the permission gate and for at-most-once bookkeeping.
func display(sink notify.Sink, b *model.TimeBlock, log zerolog.Logger) {
	title := b.Label()
	body := "Starts at " + formatClock(b.StartTime)
	if err := sink.Display(title, body, dedupKey(b)); err != nil {
		log.Error().Err(err).Str("block_id", b.BlockID).Msg("reminder display failed")
		return
	}
	firedTotal.Inc()
	log.Debug().Str("block_id", b.BlockID).Str("title", title).Msg("reminder fired")
}
