package analytics

import (
	"time"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// dailyWindowDays is the length of the daily focus series.
const dailyWindowDays = 30

// DailyFocus is one day's focus totals in the 30-day series.
type DailyFocus struct {
	Date         string  `json:"date"`
	TotalHours   float64 `json:"totalHours"`
	DeepHours    float64 `json:"deepHours"`
	ShallowHours float64 `json:"shallowHours"`
}

// DailyFocusSeries produces exactly 30 entries, one per day from 29 days
// ago through today inclusive, oldest first. Days without blocks are
// zero-filled.
func DailyFocusSeries(now time.Time, blocks []model.TimeBlock) []DailyFocus {
	type minutes struct{ deep, shallow int }
	byDay := make(map[string]minutes)
	for i := range blocks {
		b := &blocks[i]
		if !b.IsFocus() {
			continue
		}
		m := byDay[b.Date]
		if b.BlockType == model.BlockDeepWork {
			m.deep += blockMinutes(b)
		} else {
			m.shallow += blockMinutes(b)
		}
		byDay[b.Date] = m
	}

	series := make([]DailyFocus, 0, dailyWindowDays)
	start := midnight(now).AddDate(0, 0, -(dailyWindowDays - 1))
	for d := start; len(series) < dailyWindowDays; d = d.AddDate(0, 0, 1) {
		key := DateKey(d)
		m := byDay[key]
		series = append(series, DailyFocus{
			Date:         key,
			TotalHours:   hoursFromMinutes(m.deep + m.shallow),
			DeepHours:    hoursFromMinutes(m.deep),
			ShallowHours: hoursFromMinutes(m.shallow),
		})
	}
	return series
}
