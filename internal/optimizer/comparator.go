// Package optimizer exposes the before/after comparison and apply
// contract for candidate schedules. The suggestion generator that
// produces the optimized list is an external collaborator; this package
// only compares its output with the current schedule and commits it.
package optimizer

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// ErrApplyInFlight is returned when Apply is invoked while a previous
// invocation has not settled.
var ErrApplyInFlight = errors.New("optimizer: apply already in flight")

// Comparison wraps a ScheduleComparison with diff helpers.
type Comparison struct {
	model.ScheduleComparison
}

// NewComparison builds a Comparison from the optimizer collaborator's
// output.
func NewComparison(c model.ScheduleComparison) Comparison {
	return Comparison{ScheduleComparison: c}
}

// Improvement is the score delta; negative when the candidate scores
// worse. Not clamped.
func (c Comparison) Improvement() int {
	return c.OptimizedScore - c.CurrentScore
}

// ChangedAt reports whether the optimized block at index i differs from
// the current block at the same index. Comparison is positional, not
// ID-based: a reorder with identical contents at a new index is flagged
// as changed. Kept for compatibility with existing clients.
func (c Comparison) ChangedAt(i int) bool {
	if i < 0 || i >= len(c.Optimized) {
		return false
	}
	if i >= len(c.Current) {
		return true
	}
	cur, opt := &c.Current[i], &c.Optimized[i]
	return derefTitle(cur.TaskTitle) != derefTitle(opt.TaskTitle) || cur.StartTime != opt.StartTime
}

// ChangedIndexes lists every optimized index flagged by ChangedAt.
func (c Comparison) ChangedIndexes() []int {
	var idx []int
	for i := range c.Optimized {
		if c.ChangedAt(i) {
			idx = append(idx, i)
		}
	}
	return idx
}

func derefTitle(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Saver persists an optimized schedule as the new schedule for a day.
type Saver interface {
	SaveOptimizedSchedule(ctx context.Context, userID, date string, blocks []model.TimeBlock) error
}

// Applier serializes schedule commits: while one Apply is in flight the
// caller-visible busy state holds and further invocations are rejected.
type Applier struct {
	saver Saver
	busy  atomic.Bool
}

func NewApplier(s Saver) *Applier { return &Applier{saver: s} }

// Busy reports whether an Apply is currently in flight.
func (a *Applier) Busy() bool { return a.busy.Load() }

// Apply hands the optimized list to the persistence sink. The busy flag
// is cleared whether the sink succeeds or fails, and sink errors are
// returned to the caller rather than swallowed.
func (a *Applier) Apply(ctx context.Context, userID, date string, blocks []model.TimeBlock) error {
	if !a.busy.CompareAndSwap(false, true) {
		return ErrApplyInFlight
	}
	defer a.busy.Store(false)
	return a.saver.SaveOptimizedSchedule(ctx, userID, date, blocks)
}
