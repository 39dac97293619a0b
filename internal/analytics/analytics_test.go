package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// Wednesday, 2025-03-12 10:00 UTC.
var wednesday = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

func block(date, start, end, blockType string) model.TimeBlock {
	return model.TimeBlock{
		BlockID:   date + "-" + start,
		UserID:    "u1",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		BlockType: blockType,
	}
}

func deepOn(t time.Time) model.TimeBlock {
	return block(DateKey(t), "09:00", "10:00", model.BlockDeepWork)
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 90, DurationMinutes("09:00", "10:30"))
	assert.Equal(t, 0, DurationMinutes("12:00", "12:00"))
	assert.Equal(t, -60, DurationMinutes("13:00", "12:00"))
	// Malformed endpoints are guarded to zero minutes since midnight.
	assert.Equal(t, 600, DurationMinutes("9:00", "10:00"))
	assert.Equal(t, 0, DurationMinutes("oops", "nope"))
}

func TestComputeStreaks_ConsecutiveThroughToday(t *testing.T) {
	history := []model.TimeBlock{
		deepOn(wednesday),
		deepOn(wednesday.AddDate(0, 0, -1)),
		deepOn(wednesday.AddDate(0, 0, -2)),
	}
	s := ComputeStreaks(wednesday, history)
	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 3, s.Longest)
}

func TestComputeStreaks_GapSplitsRuns(t *testing.T) {
	// day-5, day-4, [gap at day-3], day-2, day-1, today
	history := []model.TimeBlock{
		deepOn(wednesday.AddDate(0, 0, -5)),
		deepOn(wednesday.AddDate(0, 0, -4)),
		deepOn(wednesday.AddDate(0, 0, -2)),
		deepOn(wednesday.AddDate(0, 0, -1)),
		deepOn(wednesday),
	}
	s := ComputeStreaks(wednesday, history)
	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 3, s.Longest)
}

func TestComputeStreaks_BrokenWhenLastDeepWorkTwoDaysAgo(t *testing.T) {
	history := []model.TimeBlock{
		deepOn(wednesday.AddDate(0, 0, -2)),
		deepOn(wednesday.AddDate(0, 0, -3)),
		deepOn(wednesday.AddDate(0, 0, -4)),
	}
	s := ComputeStreaks(wednesday, history)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 3, s.Longest)
}

func TestComputeStreaks_YesterdayKeepsStreakAlive(t *testing.T) {
	history := []model.TimeBlock{
		deepOn(wednesday.AddDate(0, 0, -1)),
		deepOn(wednesday.AddDate(0, 0, -2)),
	}
	s := ComputeStreaks(wednesday, history)
	assert.Equal(t, 2, s.Current)
}

func TestComputeStreaks_Empty(t *testing.T) {
	assert.Equal(t, Streaks{}, ComputeStreaks(wednesday, nil))
	// Shallow work never feeds streaks.
	history := []model.TimeBlock{block(DateKey(wednesday), "09:00", "10:00", model.BlockShallowWork)}
	assert.Equal(t, Streaks{}, ComputeStreaks(wednesday, history))
}

func TestSummarize_WeekOverWeek(t *testing.T) {
	// This week started Sunday 2025-03-09.
	history := []model.TimeBlock{
		block("2025-03-10", "09:00", "11:00", model.BlockDeepWork),    // this week, 2h
		block("2025-03-05", "09:00", "10:00", model.BlockShallowWork), // last week, 1h
		block("2025-03-11", "12:00", "12:30", model.BlockBreak),       // not focus
	}
	s := Summarize(wednesday, nil, nil, history)
	assert.Equal(t, 2.0, s.FocusHours.ThisWeek)
	assert.Equal(t, 1.0, s.FocusHours.LastWeek)
	assert.Equal(t, 100.0, s.FocusHours.PercentChange)
}

func TestSummarize_PercentChangeZeroBaseline(t *testing.T) {
	thisWeekOnly := []model.TimeBlock{block("2025-03-10", "09:00", "14:00", model.BlockDeepWork)}
	s := Summarize(wednesday, nil, nil, thisWeekOnly)
	assert.Equal(t, 100.0, s.FocusHours.PercentChange)

	s = Summarize(wednesday, nil, nil, nil)
	assert.Equal(t, 0.0, s.FocusHours.PercentChange)
}

func TestSummarize_ProductivityScore(t *testing.T) {
	// 2h deep work, 3 completed tasks, 1-day streak: 30 + 30 + 5 = 65.
	today := DateKey(wednesday)
	rangeBlocks := []model.TimeBlock{block(today, "09:00", "11:00", model.BlockDeepWork)}
	tasks := []model.Task{
		{TaskID: "t1", Status: model.TaskCompleted},
		{TaskID: "t2", Status: model.TaskCompleted},
		{TaskID: "t3", Status: model.TaskCompleted},
		{TaskID: "t4", Status: model.TaskActive},
	}
	history := []model.TimeBlock{block(today, "09:00", "11:00", model.BlockDeepWork)}

	s := Summarize(wednesday, rangeBlocks, tasks, history)
	assert.Equal(t, 65, s.ProductivityScore)
	assert.Equal(t, 3, s.TasksCompleted)
	assert.Equal(t, 120, s.AverageSessionMinutes)
}

func TestSummarize_ScoreCappedAt100(t *testing.T) {
	today := DateKey(wednesday)
	rangeBlocks := []model.TimeBlock{block(today, "06:00", "18:00", model.BlockDeepWork)} // 12h -> 180 pts
	s := Summarize(wednesday, rangeBlocks, nil, rangeBlocks)
	assert.Equal(t, 100, s.ProductivityScore)
}

func TestSummarize_AverageSessionZeroWithoutFocusBlocks(t *testing.T) {
	rangeBlocks := []model.TimeBlock{block(DateKey(wednesday), "12:00", "13:00", model.BlockBreak)}
	s := Summarize(wednesday, rangeBlocks, nil, nil)
	assert.Equal(t, 0, s.AverageSessionMinutes)
}

func TestDailyFocusSeries_ShapeAndOrdering(t *testing.T) {
	series := DailyFocusSeries(wednesday, nil)
	require.Len(t, series, 30)
	assert.Equal(t, DateKey(wednesday), series[29].Date)
	assert.Equal(t, DateKey(wednesday.AddDate(0, 0, -29)), series[0].Date)
	for i := 1; i < len(series); i++ {
		assert.Less(t, series[i-1].Date, series[i].Date)
	}
	for _, d := range series {
		assert.Zero(t, d.TotalHours)
	}
}

func TestDailyFocusSeries_BucketsFocusMinutes(t *testing.T) {
	today := DateKey(wednesday)
	blocks := []model.TimeBlock{
		block(today, "09:00", "10:30", model.BlockDeepWork),
		block(today, "11:00", "11:30", model.BlockShallowWork),
		block(today, "13:00", "14:00", model.BlockMeeting), // ignored
	}
	series := DailyFocusSeries(wednesday, blocks)
	last := series[29]
	assert.Equal(t, 2.0, last.TotalHours)
	assert.Equal(t, 1.5, last.DeepHours)
	assert.Equal(t, 0.5, last.ShallowHours)
}

func TestDistribution_SharesAndOrdering(t *testing.T) {
	blocks := []model.TimeBlock{
		block("2025-03-10", "09:00", "12:00", model.BlockDeepWork), // 180m
		block("2025-03-10", "13:00", "14:00", model.BlockMeeting),  // 60m
		block("2025-03-10", "14:00", "15:00", model.BlockMeeting),  // 60m
		block("2025-03-10", "15:00", "15:00", model.BlockBreak),    // zero, dropped
	}
	shares := Distribution(blocks)
	require.Len(t, shares, 2)
	assert.Equal(t, model.BlockDeepWork, shares[0].BlockType)
	assert.Equal(t, 3.0, shares[0].Hours)
	assert.Equal(t, 60, shares[0].Percent)
	assert.Equal(t, 40, shares[1].Percent)
	assert.Equal(t, "Deep Work", shares[0].Label)
	assert.NotEmpty(t, shares[0].Color)

	total := 0
	for _, s := range shares {
		total += s.Percent
	}
	assert.InDelta(t, 100, total, 1)
}

func TestDistribution_Empty(t *testing.T) {
	assert.Empty(t, Distribution(nil))
}

func TestHourlyHeatmap_CountsEveryTouchedHour(t *testing.T) {
	// 2025-03-10 is a Monday.
	blocks := []model.TimeBlock{
		block("2025-03-10", "09:00", "11:30", model.BlockDeepWork),
		block("2025-03-10", "12:00", "13:00", model.BlockBreak), // ignored
	}
	grid := HourlyHeatmap(blocks)
	mon := int(time.Monday)
	for h := 9; h <= 11; h++ {
		assert.Equal(t, 1, grid[mon][h], "hour %d", h)
	}
	assert.Zero(t, grid[mon][8])
	assert.Zero(t, grid[mon][12])
}

func TestHourlyHeatmap_ClampsAtMidnight(t *testing.T) {
	blocks := []model.TimeBlock{block("2025-03-10", "22:00", "23:59", model.BlockDeepWork)}
	grid := HourlyHeatmap(blocks)
	mon := int(time.Monday)
	assert.Equal(t, 1, grid[mon][22])
	assert.Equal(t, 1, grid[mon][23])
}

func TestPeakHours_ApportionsDurationAcrossHours(t *testing.T) {
	// 90 minutes across hours 9 and 10: 45 each.
	blocks := []model.TimeBlock{block("2025-03-10", "09:00", "10:30", model.BlockDeepWork)}
	loads := PeakHours(blocks)
	require.Len(t, loads, 2)
	assert.Equal(t, HourLoad{Hour: 9, Label: "9AM", Minutes: 45}, loads[0])
	assert.Equal(t, HourLoad{Hour: 10, Label: "10AM", Minutes: 45}, loads[1])
}

func TestPeakHours_DropsIdleHours(t *testing.T) {
	assert.Empty(t, PeakHours(nil))
}

func TestHourLabel(t *testing.T) {
	assert.Equal(t, "12AM", HourLabel(0))
	assert.Equal(t, "11AM", HourLabel(11))
	assert.Equal(t, "12PM", HourLabel(12))
	assert.Equal(t, "11PM", HourLabel(23))
}

func TestTagStats(t *testing.T) {
	tasks := []model.Task{
		{TaskID: "a", Status: model.TaskCompleted, Tags: []string{"writing", "focus"}},
		{TaskID: "b", Status: model.TaskActive, Tags: []string{"writing"}},
		{TaskID: "c", Status: model.TaskBacklog},
	}
	stats := TagStats(tasks)
	require.Len(t, stats, 2)
	assert.Equal(t, TagStat{Tag: "writing", Count: 2, Completed: 1}, stats[0])
	assert.Equal(t, TagStat{Tag: "focus", Count: 1, Completed: 1}, stats[1])
}

func TestWeeklySatisfaction(t *testing.T) {
	reviews := []model.TaskReview{
		{ReviewID: "r1", EnjoymentRating: 4, OverallRating: 5, CreationTime: wednesday},
		{ReviewID: "r2", EnjoymentRating: 3, OverallRating: 4, CreationTime: wednesday.AddDate(0, 0, -1)},
		{ReviewID: "r3", EnjoymentRating: 5, OverallRating: 5, CreationTime: wednesday.AddDate(0, 0, -7)},
	}
	weeks := WeeklySatisfaction(reviews, time.UTC)
	require.Len(t, weeks, 2)
	assert.Equal(t, "2025-03-02", weeks[0].WeekStart)
	assert.Equal(t, "2025-03-09", weeks[1].WeekStart)
	assert.Equal(t, 3.5, weeks[1].Enjoyment)
	assert.Equal(t, 4.5, weeks[1].Overall)
	assert.Equal(t, 2, weeks[1].Count)
}
