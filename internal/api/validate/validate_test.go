package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

func TestUserID(t *testing.T) {
	assert.NoError(t, UserID("alice_42"))
	assert.NoError(t, UserID("u-1"))
	assert.Error(t, UserID(""))
	assert.Error(t, UserID("Alice"))
	assert.Error(t, UserID("has space"))
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date("2025-03-12"))
	assert.Error(t, Date("2025-3-12"))
	assert.Error(t, Date("12-03-2025"))
	assert.Error(t, Date(""))
}

func TestClock(t *testing.T) {
	assert.NoError(t, Clock("startTime", "00:00"))
	assert.NoError(t, Clock("startTime", "23:59"))
	assert.Error(t, Clock("startTime", "24:00"))
	assert.Error(t, Clock("startTime", "9:00"))
	assert.Error(t, Clock("startTime", "09:60"))
}

func TestBlock(t *testing.T) {
	b := &model.TimeBlock{
		Date: "2025-03-12", StartTime: "09:00", EndTime: "10:30", BlockType: model.BlockDeepWork,
	}
	assert.NoError(t, Block(b))

	inverted := *b
	inverted.StartTime, inverted.EndTime = "11:00", "10:00"
	assert.Error(t, Block(&inverted))

	badType := *b
	badType.BlockType = "nap"
	assert.Error(t, Block(&badType))
}

func TestRatingAndEnergy(t *testing.T) {
	assert.NoError(t, Rating("overallRating", 3))
	assert.Error(t, Rating("overallRating", 0))
	assert.Error(t, Rating("overallRating", 6))
	assert.NoError(t, EnergyRequired("medium"))
	assert.Error(t, EnergyRequired("extreme"))
}
