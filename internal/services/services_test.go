package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/optimizer"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
	"github.com/PickleRicc/deep-work-sub001/internal/store/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	db, err := sqlite.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.EnsureSchema(db))
	return sqlite.NewWithDB(db)
}

var fixedNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func seedBlock(t *testing.T, st store.Store, date, start, end, blockType string) {
	t.Helper()
	_, err := st.Blocks().Create(context.Background(), &model.TimeBlock{
		UserID: "u1", Date: date, StartTime: start, EndTime: end, BlockType: blockType,
	})
	require.NoError(t, err)
}

func TestAnalyticsService_Summary(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Two deep-work hours today, one last week.
	seedBlock(t, st, "2025-03-12", "09:00", "11:00", model.BlockDeepWork)
	seedBlock(t, st, "2025-03-05", "09:00", "10:00", model.BlockDeepWork)

	task, err := st.Tasks().Create(ctx, &model.Task{UserID: "u1", Title: "report"})
	require.NoError(t, err)
	_, err = st.Tasks().UpdateStatus(ctx, "u1", task.TaskID, model.TaskCompleted)
	require.NoError(t, err)

	svc := NewAnalyticsService(st, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	sum, err := svc.Summary(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, sum.FocusHours.ThisWeek)
	assert.Equal(t, 1.0, sum.FocusHours.LastWeek)
	assert.Equal(t, 100.0, sum.FocusHours.PercentChange)
	assert.Equal(t, 1, sum.TasksCompleted)
	assert.Equal(t, 1, sum.Streaks.Current)
	// 3 deep hours * 15 + 1 task * 10 + 1 streak day * 5
	assert.Equal(t, 60, sum.ProductivityScore)
}

func TestAnalyticsService_DailySeriesWindow(t *testing.T) {
	st := newTestStore(t)

	seedBlock(t, st, "2025-03-12", "09:00", "10:30", model.BlockDeepWork)
	// Outside the 30-day window: ignored.
	seedBlock(t, st, "2025-01-01", "09:00", "10:00", model.BlockDeepWork)

	svc := NewAnalyticsService(st, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	daily, err := svc.Daily(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, daily, 30)
	assert.Equal(t, "2025-03-12", daily[29].Date)
	assert.Equal(t, 1.5, daily[29].DeepHours)
	assert.Equal(t, "2025-02-11", daily[0].Date)
	assert.Zero(t, daily[0].TotalHours)
}

func TestAnalyticsService_Reviews(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	task, err := st.Tasks().Create(ctx, &model.Task{UserID: "u1", Title: "report", Tags: []string{"writing"}})
	require.NoError(t, err)
	_, err = st.Reviews().Create(ctx, &model.TaskReview{
		UserID: "u1", TaskID: task.TaskID, EnjoymentRating: 4, OverallRating: 5, EnergyRequired: "high",
	})
	require.NoError(t, err)

	svc := NewAnalyticsService(st, time.UTC)
	rep, err := svc.Reviews(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rep.Tags, 1)
	assert.Equal(t, "writing", rep.Tags[0].Tag)
	require.Len(t, rep.Weekly, 1)
	assert.Equal(t, 5.0, rep.Weekly[0].Overall)
}

func TestScheduleService_CompareAndApply(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedBlock(t, st, "2025-03-12", "09:00", "10:00", model.BlockDeepWork)
	seedBlock(t, st, "2025-03-12", "10:00", "11:00", model.BlockShallowWork)

	svc := NewScheduleService(st)

	candidate := []model.TimeBlock{
		{UserID: "u1", Date: "2025-03-12", StartTime: "08:00", EndTime: "09:00", BlockType: model.BlockDeepWork},
		{UserID: "u1", Date: "2025-03-12", StartTime: "10:00", EndTime: "11:00", BlockType: model.BlockShallowWork},
	}
	cmp, err := svc.Compare(ctx, "u1", "2025-03-12", CompareRequest{
		Optimized: candidate, CurrentScore: 60, OptimizedScore: 80,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, cmp.Improvement())
	assert.Equal(t, []int{0}, cmp.ChangedIndexes())

	require.NoError(t, svc.Apply(ctx, "u1", "2025-03-12", candidate))
	day, err := svc.Day(ctx, "u1", "2025-03-12")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "08:00", day[0].StartTime)
}

func TestScheduleService_AppliersArePerUser(t *testing.T) {
	svc := NewScheduleService(newTestStore(t))
	a1 := svc.applier("u1")
	assert.Same(t, a1, svc.applier("u1"))
	assert.NotSame(t, a1, svc.applier("u2"))
	assert.IsType(t, &optimizer.Applier{}, a1)
}

func TestPrefsService_DefaultsAndValidation(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	svc := NewPrefsService(st)

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, got.Enabled)
	assert.Equal(t, model.DefaultLeadMinutes, got.LeadMinutes)

	_, err = svc.Put(ctx, &model.NotificationPrefs{UserID: "u1", Enabled: true, LeadMinutes: 0})
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = svc.Put(ctx, &model.NotificationPrefs{UserID: "u1", Enabled: true, LeadMinutes: 500})
	assert.ErrorIs(t, err, model.ErrValidation)

	saved, err := svc.Put(ctx, &model.NotificationPrefs{UserID: "u1", Enabled: false, LeadMinutes: 15})
	require.NoError(t, err)
	assert.False(t, saved.Enabled)

	got, err = svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 15, got.LeadMinutes)
}
