package analytics

import (
	"fmt"
	"math"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// HourLoad is accumulated focus minutes for one hour of day across all
// days in the input set.
type HourLoad struct {
	Hour    int    `json:"hour"`
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// PeakHours apportions each focus block's duration evenly across every
// whole hour it touches and accumulates per hour-of-day. Hours with no
// accumulated time are dropped; the result is ordered by hour.
func PeakHours(blocks []model.TimeBlock) []HourLoad {
	var totals [24]float64
	for i := range blocks {
		b := &blocks[i]
		if !b.IsFocus() {
			continue
		}
		startMins, ok1 := parseClock(b.StartTime)
		endMins, ok2 := parseClock(b.EndTime)
		if !ok1 || !ok2 {
			continue
		}
		startHour, endHour := startMins/60, endMins/60
		span := endHour - startHour + 1
		if span <= 0 {
			continue
		}
		share := float64(DurationMinutes(b.StartTime, b.EndTime)) / float64(span)
		for h := startHour; h <= endHour && h < 24; h++ {
			totals[h] += share
		}
	}

	loads := make([]HourLoad, 0, 24)
	for h, total := range totals {
		mins := int(math.Round(total))
		if mins == 0 {
			continue
		}
		loads = append(loads, HourLoad{Hour: h, Label: HourLabel(h), Minutes: mins})
	}
	return loads
}

// HourLabel formats an hour of day as 12AM..11PM.
func HourLabel(h int) string {
	switch {
	case h == 0:
		return "12AM"
	case h < 12:
		return fmt.Sprintf("%dAM", h)
	case h == 12:
		return "12PM"
	default:
		return fmt.Sprintf("%dPM", h-12)
	}
}
