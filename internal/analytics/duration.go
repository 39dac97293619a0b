// Package analytics computes schedule aggregations: focus-hour totals,
// streaks, productivity scores, daily series, block-type distributions,
// hourly heatmaps and peak-usage totals. Every function is pure; callers
// pass immutable snapshots of one user's blocks, tasks and reviews.
package analytics

import (
	"math"
	"time"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// parseClock converts an HH:MM string to minutes since midnight.
// Malformed input returns ok=false; duration math treats it as zero
// rather than propagating garbage.
func parseClock(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h := digits2(s[0], s[1])
	m := digits2(s[3], s[4])
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func digits2(a, b byte) int {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return -1
	}
	return int(a-'0')*10 + int(b-'0')
}

// DurationMinutes returns the minute difference between two HH:MM
// times of day. End-before-start yields a negative value; cross-midnight
// blocks are not supported. Malformed endpoints count as zero.
func DurationMinutes(start, end string) int {
	s, ok := parseClock(start)
	if !ok {
		s = 0
	}
	e, ok := parseClock(end)
	if !ok {
		e = 0
	}
	return e - s
}

// blockMinutes is DurationMinutes over a block's own endpoints.
func blockMinutes(b *model.TimeBlock) int {
	return DurationMinutes(b.StartTime, b.EndTime)
}

// DateKey normalizes a time to its calendar day in that time's location.
func DateKey(t time.Time) string {
	return t.Format(model.DateLayout)
}

// midnight truncates t to local midnight in t's location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// hoursFromMinutes converts minute totals to hours rounded to 1 decimal.
func hoursFromMinutes(minutes int) float64 {
	return round1(float64(minutes) / 60)
}
