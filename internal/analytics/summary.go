package analytics

import (
	"math"
	"time"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// FocusHours compares focus time across the current and previous week.
type FocusHours struct {
	ThisWeek      float64 `json:"thisWeek"`
	LastWeek      float64 `json:"lastWeek"`
	PercentChange float64 `json:"percentChange"`
}

// Streaks reports consecutive deep-work days.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Summary is the top-level analytics payload for a user.
type Summary struct {
	FocusHours            FocusHours `json:"focusHours"`
	Streaks               Streaks    `json:"streaks"`
	TasksCompleted        int        `json:"tasksCompleted"`
	AverageSessionMinutes int        `json:"averageSessionMinutes"`
	ProductivityScore     int        `json:"productivityScore"`
}

// weekWindow returns the date keys bounding the week containing now:
// [start, end) where start is the most recent Sunday at local midnight.
func weekWindow(now time.Time) (startKey, endKey string) {
	start := midnight(now).AddDate(0, 0, -int(now.Weekday()))
	return DateKey(start), DateKey(start.AddDate(0, 0, 7))
}

// Summarize computes the headline analytics for one user.
// rangeBlocks is the caller's current reporting range (used for average
// session duration and the productivity score's deep-work hours);
// history is the full block set ever seen (used for week-over-week
// focus hours and streaks).
func Summarize(now time.Time, rangeBlocks []model.TimeBlock, tasks []model.Task, history []model.TimeBlock) Summary {
	thisStart, thisEnd := weekWindow(now)
	lastStart, _ := weekWindow(now.AddDate(0, 0, -7))

	var thisMins, lastMins int
	for i := range history {
		b := &history[i]
		if !b.IsFocus() {
			continue
		}
		switch {
		case b.Date >= thisStart && b.Date < thisEnd:
			thisMins += blockMinutes(b)
		case b.Date >= lastStart && b.Date < thisStart:
			lastMins += blockMinutes(b)
		}
	}

	thisWeek := hoursFromMinutes(thisMins)
	lastWeek := hoursFromMinutes(lastMins)

	// lastWeek == 0 is special-cased: first-ever activity counts as a
	// full-credit improvement, not a true percentage.
	var pct float64
	switch {
	case lastWeek == 0 && thisWeek > 0:
		pct = 100
	case lastWeek == 0:
		pct = 0
	default:
		pct = round1((thisWeek - lastWeek) / lastWeek * 100)
	}

	streaks := ComputeStreaks(now, history)

	completed := 0
	for i := range tasks {
		if tasks[i].Status == model.TaskCompleted {
			completed++
		}
	}

	var focusMins, focusCount, deepMins int
	for i := range rangeBlocks {
		b := &rangeBlocks[i]
		if !b.IsFocus() {
			continue
		}
		mins := blockMinutes(b)
		focusMins += mins
		focusCount++
		if b.BlockType == model.BlockDeepWork {
			deepMins += mins
		}
	}
	avgSession := 0
	if focusCount > 0 {
		avgSession = int(math.Round(float64(focusMins) / float64(focusCount)))
	}

	// Deep-work hours weigh 15 points each, completed tasks 10, streak
	// days 5; capped at 100. The formula is load-bearing for clients.
	deepHours := float64(deepMins) / 60
	score := math.Round(deepHours*15 + float64(completed)*10 + float64(streaks.Current)*5)
	if score > 100 {
		score = 100
	}

	return Summary{
		FocusHours:            FocusHours{ThisWeek: thisWeek, LastWeek: lastWeek, PercentChange: pct},
		Streaks:               streaks,
		TasksCompleted:        completed,
		AverageSessionMinutes: avgSession,
		ProductivityScore:     int(score),
	}
}
