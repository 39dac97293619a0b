package analytics

import (
	"time"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// Heatmap is a 7x24 grid of intensity counts, day-of-week (Sunday=0) by
// hour-of-day.
type Heatmap [7][24]int

// HourlyHeatmap counts, for each focus block, every whole hour the block
// touches on its day of week. A block spanning several hours increments
// each of them, so values over-count relative to true duration share;
// the grid is an intensity weighting for coloring, not a duration
// measure (see PeakHours for apportioned totals).
func HourlyHeatmap(blocks []model.TimeBlock) Heatmap {
	var grid Heatmap
	for i := range blocks {
		b := &blocks[i]
		if !b.IsFocus() {
			continue
		}
		day, err := time.Parse(model.DateLayout, b.Date)
		if err != nil {
			continue
		}
		startMins, ok1 := parseClock(b.StartTime)
		endMins, ok2 := parseClock(b.EndTime)
		if !ok1 || !ok2 {
			continue
		}
		dow := int(day.Weekday())
		for h := startMins / 60; h <= endMins/60 && h < 24; h++ {
			grid[dow][h]++
		}
	}
	return grid
}
