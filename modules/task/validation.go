package task

import (
	"strings"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
)

// Payload is a decoded request body. A key that is present with a null value
// is still present.
type Payload map[string]any

// TaskInput holds the validated fields of a create or update payload.
// An empty Priority means the field was omitted.
type TaskInput struct {
	Title       string
	Description string
	Completed   *bool
	Priority    domain.Priority
}

func (in TaskInput) priorityOrDefault() domain.Priority {
	if in.Priority == "" {
		return domain.DefaultPriority
	}
	return in.Priority
}

// ValidatePayload checks a create or update body and returns the first failure.
// Rules run in order: title, description, completed, priority.
func ValidatePayload(p Payload) (TaskInput, error) {
	var in TaskInput

	title, ok := p["title"].(string)
	if !ok || isBlank(title) {
		return TaskInput{}, domain.ErrInvalidTitle
	}
	in.Title = title

	description, ok := p["description"].(string)
	if !ok || isBlank(description) {
		return TaskInput{}, domain.ErrInvalidDescription
	}
	in.Description = description

	if raw, present := p["completed"]; present {
		completed, ok := raw.(bool)
		if !ok {
			return TaskInput{}, domain.ErrInvalidCompleted
		}
		in.Completed = &completed
	}

	if raw, present := p["priority"]; present {
		level, ok := raw.(string)
		if !ok || !domain.Priority(level).IsValid() {
			return TaskInput{}, domain.ErrInvalidPriority
		}
		in.Priority = domain.Priority(level)
	}

	return in, nil
}

// validateInput re-checks typed fields arriving over the service container.
func validateInput(in TaskInput) error {
	if isBlank(in.Title) {
		return domain.ErrInvalidTitle
	}
	if isBlank(in.Description) {
		return domain.ErrInvalidDescription
	}
	if in.Priority != "" && !in.Priority.IsValid() {
		return domain.ErrInvalidPriority
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
