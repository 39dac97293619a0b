package model

import "time"

// Block types recognized by the planner.
const (
	BlockDeepWork    = "deep_work"
	BlockShallowWork = "shallow_work"
	BlockBreak       = "break"
	BlockPersonal    = "personal"
	BlockMeeting     = "meeting"
)

// Task statuses.
const (
	TaskBacklog   = "backlog"
	TaskActive    = "active"
	TaskCompleted = "completed"
	TaskArchived  = "archived"
)

// DateLayout is the calendar-day format used throughout the planner.
// Dates are local to the owning user.
const DateLayout = "2006-01-02"

// ClockLayout is the 24-hour time-of-day format carried by time blocks.
const ClockLayout = "15:04"

// TimeBlock represents one scheduled interval on one calendar day.
// StartTime must precede EndTime within the same day; cross-midnight
// blocks are not supported.
type TimeBlock struct {
	BlockID      string    `json:"blockId"`
	UserID       string    `json:"userId"`
	Date         string    `json:"date"`      // YYYY-MM-DD
	StartTime    string    `json:"startTime"` // HH:MM
	EndTime      string    `json:"endTime"`   // HH:MM
	BlockType    string    `json:"blockType"`
	TaskTitle    *string   `json:"taskTitle,omitempty"`
	Completed    bool      `json:"completed"`
	CreationTime time.Time `json:"creationTime"`
}

// IsFocus reports whether the block counts toward focus time.
func (b *TimeBlock) IsFocus() bool {
	return b.BlockType == BlockDeepWork || b.BlockType == BlockShallowWork
}

// Label returns the user-facing name for the block: the task title when
// present, otherwise the humanized block type.
func (b *TimeBlock) Label() string {
	if b.TaskTitle != nil && *b.TaskTitle != "" {
		return *b.TaskTitle
	}
	return BlockTypeLabel(b.BlockType)
}

// BlockTypeLabel maps a block type to its human-readable form.
func BlockTypeLabel(blockType string) string {
	switch blockType {
	case BlockDeepWork:
		return "Deep Work"
	case BlockShallowWork:
		return "Shallow Work"
	case BlockBreak:
		return "Break"
	case BlockPersonal:
		return "Personal"
	case BlockMeeting:
		return "Meeting"
	default:
		return blockType
	}
}

// Task is a unit of work tracked alongside the schedule.
type Task struct {
	TaskID       string     `json:"taskId"`
	UserID       string     `json:"userId"`
	Title        string     `json:"title"`
	Status       string     `json:"status"`
	Tags         []string   `json:"tags,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreationTime time.Time  `json:"creationTime"`
}

// TaskReview captures a retrospective rating of a completed task.
type TaskReview struct {
	ReviewID        string    `json:"reviewId"`
	UserID          string    `json:"userId"`
	TaskID          string    `json:"taskId"`
	EnjoymentRating int       `json:"enjoymentRating"` // 1-5
	OverallRating   int       `json:"overallRating"`   // 1-5
	EnergyRequired  string    `json:"energyRequired"`  // low | medium | high
	CreationTime    time.Time `json:"creationTime"`
}

// NotificationPrefs holds a user's block-reminder settings.
type NotificationPrefs struct {
	UserID      string `json:"userId"`
	Enabled     bool   `json:"enabled"`
	LeadMinutes int    `json:"leadMinutes"`
}

// DefaultLeadMinutes is the reminder lead time applied when a user has
// never saved preferences.
const DefaultLeadMinutes = 5

// ScheduleComparison carries a current/candidate schedule pair for one
// day, the issues the optimizer detected, and the two 0-100 scores.
type ScheduleComparison struct {
	Current        []TimeBlock `json:"current"`
	Optimized      []TimeBlock `json:"optimized"`
	Issues         []string    `json:"issues"`
	CurrentScore   int         `json:"currentScore"`
	OptimizedScore int         `json:"optimizedScore"`
}
