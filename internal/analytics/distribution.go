package analytics

import (
	"math"
	"sort"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// TypeShare is one block type's slice of total scheduled time.
type TypeShare struct {
	BlockType string  `json:"blockType"`
	Label     string  `json:"label"`
	Color     string  `json:"color"`
	Hours     float64 `json:"hours"`
	Percent   int     `json:"percent"`
}

// Fixed palette per block type; clients key legends on these values.
var typeColors = map[string]string{
	model.BlockDeepWork:    "#7C3AED",
	model.BlockShallowWork: "#3B82F6",
	model.BlockMeeting:     "#F59E0B",
	model.BlockBreak:       "#10B981",
	model.BlockPersonal:    "#EC4899",
}

// Distribution sums scheduled time per block type across the input set.
// Zero-valued types are dropped; the result is sorted descending by
// hours. Percentages are integer shares of total minutes (0 when the
// total is 0).
func Distribution(blocks []model.TimeBlock) []TypeShare {
	byType := make(map[string]int)
	total := 0
	for i := range blocks {
		b := &blocks[i]
		mins := blockMinutes(b)
		byType[b.BlockType] += mins
		total += mins
	}

	shares := make([]TypeShare, 0, len(byType))
	for blockType, mins := range byType {
		if mins == 0 {
			continue
		}
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(mins) / float64(total) * 100))
		}
		shares = append(shares, TypeShare{
			BlockType: blockType,
			Label:     model.BlockTypeLabel(blockType),
			Color:     typeColors[blockType],
			Hours:     hoursFromMinutes(mins),
			Percent:   pct,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Hours != shares[j].Hours {
			return shares[i].Hours > shares[j].Hours
		}
		return shares[i].BlockType < shares[j].BlockType
	})
	return shares
}
