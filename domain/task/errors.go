package task

import "errors"

// Sentinel errors for task operations.
var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTitle is returned when the title is missing, not a string or blank.
	ErrInvalidTitle = errors.New("invalid title")

	// ErrInvalidDescription is returned when the description is missing, not a string or blank.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrInvalidCompleted is returned when completed is present but not a boolean.
	ErrInvalidCompleted = errors.New("invalid completed")

	// ErrInvalidPriority is returned when a payload carries an unknown priority.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidPriorityLevel is returned when the priority path filter is unknown.
	ErrInvalidPriorityLevel = errors.New("invalid priority level")
)
