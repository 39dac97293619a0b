package store

import (
	"context"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// Store exposes the persistence operations required by services and the
// reminder worker. Implementations live under internal/store/<driver>/.
type Store interface {
	Blocks() Blocks
	Tasks() Tasks
	Reviews() Reviews
	Prefs() Prefs
}

type Blocks interface {
	Create(ctx context.Context, b *model.TimeBlock) (*model.TimeBlock, error)
	// ListForDate returns one user's blocks for a YYYY-MM-DD date,
	// ordered by start time.
	ListForDate(ctx context.Context, userID, date string) ([]model.TimeBlock, error)
	// ListRange returns blocks with fromDate <= date <= toDate, ordered
	// by date then start time.
	ListRange(ctx context.Context, userID, fromDate, toDate string) ([]model.TimeBlock, error)
	// ListAll returns every block the user has, for streak history.
	ListAll(ctx context.Context, userID string) ([]model.TimeBlock, error)
	// ReplaceDay atomically swaps the user's schedule for one date.
	ReplaceDay(ctx context.Context, userID, date string, blocks []model.TimeBlock) error
	Delete(ctx context.Context, userID, blockID string) error
}

type Tasks interface {
	Create(ctx context.Context, t *model.Task) (*model.Task, error)
	List(ctx context.Context, userID string) ([]model.Task, error)
	// UpdateStatus moves a task to the given status, stamping
	// CompletedAt when the status is completed.
	UpdateStatus(ctx context.Context, userID, taskID, status string) (*model.Task, error)
}

type Reviews interface {
	Create(ctx context.Context, r *model.TaskReview) (*model.TaskReview, error)
	List(ctx context.Context, userID string) ([]model.TaskReview, error)
}

type Prefs interface {
	// Get returns the user's reminder preferences, falling back to the
	// defaults (enabled, 5-minute lead) when none were ever saved.
	Get(ctx context.Context, userID string) (*model.NotificationPrefs, error)
	Put(ctx context.Context, p *model.NotificationPrefs) (*model.NotificationPrefs, error)
	// ListEnabled returns saved preferences with reminders switched on.
	ListEnabled(ctx context.Context) ([]model.NotificationPrefs, error)
}
