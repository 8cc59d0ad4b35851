package task

import "time"

// Priority represents the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned when a payload omits the priority field.
const DefaultPriority = PriorityMedium

// Priorities lists the valid priority levels in ascending urgency.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// IsValid reports whether p is one of the known priority levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority converts a raw level into a Priority.
// It returns ErrInvalidPriorityLevel for anything outside the valid set.
func ParsePriority(level string) (Priority, error) {
	p := Priority(level)
	if !p.IsValid() {
		return "", ErrInvalidPriorityLevel
	}
	return p, nil
}

// Task is the core domain entity.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}
