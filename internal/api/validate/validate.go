// Package validate holds request field validation for the HTTP API.
package validate

import (
	"fmt"
	"regexp"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
)

// UserID must be lowercase letters, digits, hyphen, underscore, 1-40 chars.
var userIDRx = regexp.MustCompile(`^[a-z0-9_-]{1,40}$`)

// dateRx matches calendar dates as YYYY-MM-DD.
var dateRx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// clockRx matches 24-hour HH:MM wall-clock times.
var clockRx = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func UserID(v string) error {
	if v == "" {
		return fmt.Errorf("userId is required")
	}
	if !userIDRx.MatchString(v) {
		return fmt.Errorf("userId must match %s", userIDRx.String())
	}
	return nil
}

func Date(v string) error {
	if !dateRx.MatchString(v) {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

func Clock(field, v string) error {
	if !clockRx.MatchString(v) {
		return fmt.Errorf("%s must be HH:MM", field)
	}
	return nil
}

func BlockType(v string) error {
	switch v {
	case model.BlockDeepWork, model.BlockShallowWork, model.BlockBreak, model.BlockPersonal, model.BlockMeeting:
		return nil
	}
	return fmt.Errorf("unknown blockType: %s", v)
}

func TaskStatus(v string) error {
	switch v {
	case model.TaskBacklog, model.TaskActive, model.TaskCompleted, model.TaskArchived:
		return nil
	}
	return fmt.Errorf("unknown status: %s", v)
}

func Rating(field string, v int) error {
	if v < 1 || v > 5 {
		return fmt.Errorf("%s must be 1..5", field)
	}
	return nil
}

func EnergyRequired(v string) error {
	switch v {
	case "low", "medium", "high":
		return nil
	}
	return fmt.Errorf("energyRequired must be low, medium, or high")
}

// Block validates the user-supplied fields of a time block. The start
// must precede the end; cross-midnight blocks are rejected.
func Block(b *model.TimeBlock) error {
	if err := Date(b.Date); err != nil {
		return err
	}
	if err := Clock("startTime", b.StartTime); err != nil {
		return err
	}
	if err := Clock("endTime", b.EndTime); err != nil {
		return err
	}
	if b.StartTime >= b.EndTime {
		return fmt.Errorf("startTime must precede endTime")
	}
	return BlockType(b.BlockType)
}
