package reminder

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/notify"
)

// clock abstracts time for the timer scheduler so tests can drive fire
// times deterministically.
type clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) stopper
}

type stopper interface {
	Stop() bool
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

// trigger is one armed reminder. The callback carries its own trigger
// so it can tell whether the armed entry for its block is still the one
// it was created for.
type trigger struct {
	timer stopper
}

// TimerScheduler arms one time.AfterFunc trigger per upcoming block.
type TimerScheduler struct {
	clk  clock
	sink notify.Sink
	loc  *time.Location
	log  zerolog.Logger

	mu    sync.Mutex
	armed map[string]*trigger
}

// NewTimerScheduler returns a scheduler with no armed triggers.
func NewTimerScheduler(sink notify.Sink, loc *time.Location, log zerolog.Logger) *TimerScheduler {
	return newTimerScheduler(systemClock{}, sink, loc, log)
}

func newTimerScheduler(clk clock, sink notify.Sink, loc *time.Location, log zerolog.Logger) *TimerScheduler {
	return &TimerScheduler{
		clk:   clk,
		sink:  sink,
		loc:   loc,
		log:   log.With().Str("component", "reminder-timer").Logger(),
		armed: make(map[string]*trigger),
	}
}

// Reschedule cancels every armed trigger, then arms a fresh trigger at
// start-minus-lead for each block whose fire time is still ahead.
func (s *TimerScheduler) Reschedule(blocks []model.TimeBlock, lead time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	now := s.clk.Now()
	for i := range blocks {
		b := blocks[i]
		start, ok := blockStart(&b, s.loc)
		if !ok {
			s.log.Warn().Str("block_id", b.BlockID).Str("start_time", b.StartTime).
				Msg("unparseable start time, trigger skipped")
			continue
		}
		fireAt := start.Add(-lead)
		if !fireAt.After(now) {
			continue
		}
		t := &trigger{}
		t.timer = s.clk.AfterFunc(fireAt.Sub(now), func() { s.fire(b, t) })
		s.armed[b.BlockID] = t
	}
	s.log.Debug().Int("armed", len(s.armed)).Msg("triggers rescheduled")
}

// CancelAll disarms every pending trigger.
func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *TimerScheduler) cancelLocked() {
	for id, t := range s.armed {
		t.timer.Stop()
		delete(s.armed, id)
	}
}

// fire runs on the timer goroutine. A callback whose Stop raced its own
// expiry may arrive after the block was cancelled or re-armed; the
// identity check makes such a callback a no-op, so a cancelled trigger
// stays cancelled and a re-armed block fires only at its new time.
func (s *TimerScheduler) fire(b model.TimeBlock, t *trigger) {
	s.mu.Lock()
	if s.armed[b.BlockID] != t {
		s.mu.Unlock()
		return
	}
	delete(s.armed, b.BlockID)
	s.mu.Unlock()

	if !s.sink.PermissionGranted() {
		suppressedTotal.Inc()
		s.log.Debug().Str("block_id", b.BlockID).Msg("reminder suppressed, no permission")
		return
	}
	display(s.sink, &b, s.log)
}
