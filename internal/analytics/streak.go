package analytics

import (
	"sort"
	"time"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// ComputeStreaks derives current and longest consecutive-day deep-work
// streaks from the full historical block set. A streak is alive when it
// ends today or yesterday.
func ComputeStreaks(now time.Time, history []model.TimeBlock) Streaks {
	days := make(map[string]struct{})
	for i := range history {
		if history[i].BlockType == model.BlockDeepWork {
			days[history[i].Date] = struct{}{}
		}
	}
	if len(days) == 0 {
		return Streaks{}
	}

	today := midnight(now)
	yesterday := today.AddDate(0, 0, -1)

	var anchor time.Time
	if _, ok := days[DateKey(today)]; ok {
		anchor = today
	} else if _, ok := days[DateKey(yesterday)]; ok {
		anchor = yesterday
	}

	current := 0
	if !anchor.IsZero() {
		for d := anchor; ; d = d.AddDate(0, 0, -1) {
			if _, ok := days[DateKey(d)]; !ok {
				break
			}
			current++
		}
	}

	// Longest run anywhere in the sorted distinct-date list, also
	// compared against the live streak.
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	longest, run := 0, 0
	var prev time.Time
	for i, k := range keys {
		d, err := time.Parse(model.DateLayout, k)
		if err != nil {
			continue
		}
		if i > 0 && d.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = d
	}
	if current > longest {
		longest = current
	}

	return Streaks{Current: current, Longest: longest}
}
