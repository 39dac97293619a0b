package analytics

import (
	"sort"
	"time"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// TagStat aggregates task counts per tag.
type TagStat struct {
	Tag       string `json:"tag"`
	Count     int    `json:"count"`
	Completed int    `json:"completed"`
}

// TagStats reduces the task set to per-tag totals, sorted descending by
// count then alphabetically.
func TagStats(tasks []model.Task) []TagStat {
	type agg struct{ count, completed int }
	byTag := make(map[string]agg)
	for i := range tasks {
		t := &tasks[i]
		for _, tag := range t.Tags {
			a := byTag[tag]
			a.count++
			if t.Status == model.TaskCompleted {
				a.completed++
			}
			byTag[tag] = a
		}
	}

	stats := make([]TagStat, 0, len(byTag))
	for tag, a := range byTag {
		stats = append(stats, TagStat{Tag: tag, Count: a.count, Completed: a.completed})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Tag < stats[j].Tag
	})
	return stats
}

// WeekSatisfaction is the mean review ratings for one week.
type WeekSatisfaction struct {
	WeekStart string  `json:"weekStart"` // Sunday, YYYY-MM-DD
	Enjoyment float64 `json:"enjoyment"` // 1 decimal
	Overall   float64 `json:"overall"`   // 1 decimal
	Count     int     `json:"count"`
}

// WeeklySatisfaction buckets reviews by the Sunday-started week of their
// creation time (in loc) and averages the two ratings, rounded to 1
// decimal. Weeks are returned oldest first.
func WeeklySatisfaction(reviews []model.TaskReview, loc *time.Location) []WeekSatisfaction {
	type agg struct{ enjoyment, overall, count int }
	byWeek := make(map[string]agg)
	for i := range reviews {
		r := &reviews[i]
		local := r.CreationTime.In(loc)
		week := midnight(local).AddDate(0, 0, -int(local.Weekday()))
		key := DateKey(week)
		a := byWeek[key]
		a.enjoyment += r.EnjoymentRating
		a.overall += r.OverallRating
		a.count++
		byWeek[key] = a
	}

	weeks := make([]WeekSatisfaction, 0, len(byWeek))
	for key, a := range byWeek {
		weeks = append(weeks, WeekSatisfaction{
			WeekStart: key,
			Enjoyment: round1(float64(a.enjoyment) / float64(a.count)),
			Overall:   round1(float64(a.overall) / float64(a.count)),
			Count:     a.count,
		})
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].WeekStart < weeks[j].WeekStart })
	return weeks
}
