package services

import (
	"context"
	"sync"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/optimizer"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
)

// CompareRequest carries a candidate schedule produced by a suggestion
// generator, with the generator's issue list and scores.
type CompareRequest struct {
	Optimized      []model.TimeBlock `json:"optimized"`
	Issues         []string          `json:"issues"`
	CurrentScore   int               `json:"currentScore"`
	OptimizedScore int               `json:"optimizedScore"`
}

// ScheduleService manages day schedules and serializes optimized-
// schedule commits per user.
type ScheduleService struct {
	store store.Store

	mu       sync.Mutex
	appliers map[string]*optimizer.Applier
}

func NewScheduleService(s store.Store) *ScheduleService {
	return &ScheduleService{store: s, appliers: make(map[string]*optimizer.Applier)}
}

// Day returns one user's schedule for a date, ordered by start time.
func (s *ScheduleService) Day(ctx context.Context, userID, date string) ([]model.TimeBlock, error) {
	return s.store.Blocks().ListForDate(ctx, userID, date)
}

// CreateBlock adds a block to a user's schedule.
func (s *ScheduleService) CreateBlock(ctx context.Context, b *model.TimeBlock) (*model.TimeBlock, error) {
	return s.store.Blocks().Create(ctx, b)
}

// DeleteBlock removes one block.
func (s *ScheduleService) DeleteBlock(ctx context.Context, userID, blockID string) error {
	return s.store.Blocks().Delete(ctx, userID, blockID)
}

// Compare loads the current schedule for the date and pairs it with the
// candidate for positional diffing.
func (s *ScheduleService) Compare(ctx context.Context, userID, date string, req CompareRequest) (optimizer.Comparison, error) {
	current, err := s.store.Blocks().ListForDate(ctx, userID, date)
	if err != nil {
		return optimizer.Comparison{}, err
	}
	return optimizer.NewComparison(model.ScheduleComparison{
		Current:        current,
		Optimized:      req.Optimized,
		Issues:         req.Issues,
		CurrentScore:   req.CurrentScore,
		OptimizedScore: req.OptimizedScore,
	}), nil
}

// Apply commits an optimized schedule as the user's new schedule for
// the date. Concurrent applies for the same user are rejected with
// optimizer.ErrApplyInFlight.
func (s *ScheduleService) Apply(ctx context.Context, userID, date string, blocks []model.TimeBlock) error {
	return s.applier(userID).Apply(ctx, userID, date, blocks)
}

func (s *ScheduleService) applier(userID string) *optimizer.Applier {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appliers[userID]
	if !ok {
		a = optimizer.NewApplier(&blockSaver{store: s.store})
		s.appliers[userID] = a
	}
	return a
}

// blockSaver adapts the store's day swap to the optimizer's Saver.
type blockSaver struct{ store store.Store }

func (b *blockSaver) SaveOptimizedSchedule(ctx context.Context, userID, date string, blocks []model.TimeBlock) error {
	return b.store.Blocks().ReplaceDay(ctx, userID, date, blocks)
}
