// Package services orchestrates store reads and domain computations for
// the HTTP layer.
package services

import (
	"context"
	"time"

	"github.com/PickleRicc/deep-work-sub001/internal/analytics"
	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
)

// reportingDays is the trailing window used for the session average,
// productivity score, daily series, distribution, heatmap, and peak
// hours. Week-over-week and streak figures always use full history.
const reportingDays = 30

// AnalyticsService computes user analytics from stored blocks, tasks,
// and reviews.
type AnalyticsService struct {
	store store.Store
	loc   *time.Location
	now   func() time.Time
}

func NewAnalyticsService(s store.Store, loc *time.Location) *AnalyticsService {
	return &AnalyticsService{store: s, loc: loc, now: time.Now}
}

func (s *AnalyticsService) localNow() time.Time { return s.now().In(s.loc) }

// rangeBlocks fetches the trailing reporting window for a user.
func (s *AnalyticsService) rangeBlocks(ctx context.Context, userID string, now time.Time) ([]model.TimeBlock, error) {
	from := analytics.DateKey(now.AddDate(0, 0, -(reportingDays - 1)))
	to := analytics.DateKey(now)
	return s.store.Blocks().ListRange(ctx, userID, from, to)
}

// Summary returns the headline analytics payload.
func (s *AnalyticsService) Summary(ctx context.Context, userID string) (analytics.Summary, error) {
	now := s.localNow()

	history, err := s.store.Blocks().ListAll(ctx, userID)
	if err != nil {
		return analytics.Summary{}, err
	}
	tasks, err := s.store.Tasks().List(ctx, userID)
	if err != nil {
		return analytics.Summary{}, err
	}
	rng, err := s.rangeBlocks(ctx, userID, now)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(now, rng, tasks, history), nil
}

// Daily returns the zero-filled 30-day focus series.
func (s *AnalyticsService) Daily(ctx context.Context, userID string) ([]analytics.DailyFocus, error) {
	now := s.localNow()
	rng, err := s.rangeBlocks(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return analytics.DailyFocusSeries(now, rng), nil
}

// Distribution returns the block-type share breakdown for the reporting
// window.
func (s *AnalyticsService) Distribution(ctx context.Context, userID string) ([]analytics.TypeShare, error) {
	rng, err := s.rangeBlocks(ctx, userID, s.localNow())
	if err != nil {
		return nil, err
	}
	return analytics.Distribution(rng), nil
}

// Heatmap returns the weekday-by-hour focus frequency grid.
func (s *AnalyticsService) Heatmap(ctx context.Context, userID string) (analytics.Heatmap, error) {
	rng, err := s.rangeBlocks(ctx, userID, s.localNow())
	if err != nil {
		return analytics.Heatmap{}, err
	}
	return analytics.HourlyHeatmap(rng), nil
}

// PeakHours returns scheduled minutes apportioned per hour of day.
func (s *AnalyticsService) PeakHours(ctx context.Context, userID string) ([]analytics.HourLoad, error) {
	rng, err := s.rangeBlocks(ctx, userID, s.localNow())
	if err != nil {
		return nil, err
	}
	return analytics.PeakHours(rng), nil
}

// ReviewsReport combines task tag usage with weekly satisfaction means.
type ReviewsReport struct {
	Tags   []analytics.TagStat          `json:"tags"`
	Weekly []analytics.WeekSatisfaction `json:"weekly"`
}

// Reviews returns the retrospective report for a user.
func (s *AnalyticsService) Reviews(ctx context.Context, userID string) (ReviewsReport, error) {
	tasks, err := s.store.Tasks().List(ctx, userID)
	if err != nil {
		return ReviewsReport{}, err
	}
	reviews, err := s.store.Reviews().List(ctx, userID)
	if err != nil {
		return ReviewsReport{}, err
	}
	return ReviewsReport{
		Tags:   analytics.TagStats(tasks),
		Weekly: analytics.WeeklySatisfaction(reviews, s.loc),
	}, nil
}
