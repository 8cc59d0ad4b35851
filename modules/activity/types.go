package activity

import (
	"context"
	"time"
)

// Activity types recorded in the feed.
const (
	TypeTaskCreated = "task_created"
	TypeTaskUpdated = "task_updated"
	TypeTaskDeleted = "task_deleted"
)

// Entry is one recorded task mutation.
type Entry struct {
	ID        string    `json:"id"`
	TaskID    int       `json:"taskId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ListActivityRequest is the request for the list-activity service.
// A Limit of zero or less returns the whole feed.
type ListActivityRequest struct {
	Limit int `json:"limit,omitempty"`
}

// ListActivityResponse is the response for the list-activity service.
type ListActivityResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// ActivityPort defines the activity operations used by other modules.
type ActivityPort interface {
	ListActivity(ctx context.Context, limit int) ([]Entry, error)
}
