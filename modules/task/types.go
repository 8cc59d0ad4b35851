package task

import (
	"context"
	"errors"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
)

// ListTasksRequest is the request for listing tasks.
// Completed carries the raw query value and is nil when the parameter was absent.
type ListTasksRequest struct {
	Completed *string `json:"completed,omitempty"`
	Sort      string  `json:"sort,omitempty"`
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	TaskID int `json:"task_id"`
}

// ListByPriorityRequest is the request for listing tasks of one priority level.
type ListByPriorityRequest struct {
	Level string `json:"level"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
}

// UpdateTaskRequest is the request for replacing a task.
type UpdateTaskRequest struct {
	TaskID      int    `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   *bool  `json:"completed,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	TaskID int `json:"task_id"`
}

// TaskReply is the response for services returning a single task.
// Error holds a domain error code when the operation was rejected.
type TaskReply struct {
	Task  *domain.Task `json:"task,omitempty"`
	Error string       `json:"error,omitempty"`
}

// TaskListReply is the response for services returning several tasks.
type TaskListReply struct {
	Tasks []domain.Task `json:"tasks"`
	Total int           `json:"total"`
	Error string        `json:"error,omitempty"`
}

// DeleteTaskReply is the response for deleting a task.
type DeleteTaskReply struct {
	Deleted bool   `json:"deleted"`
	Error   string `json:"error,omitempty"`
}

// TaskPort defines the task operations used by driving adapters such as the HTTP API.
type TaskPort interface {
	ListTasks(ctx context.Context, req *ListTasksRequest) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID int) (*domain.Task, error)
	ListTasksByPriority(ctx context.Context, level string) ([]domain.Task, error)
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*domain.Task, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// Error codes carried in service replies.
const (
	codeNotFound             = "not_found"
	codeInvalidTitle         = "invalid_title"
	codeInvalidDescription   = "invalid_description"
	codeInvalidCompleted     = "invalid_completed"
	codeInvalidPriority      = "invalid_priority"
	codeInvalidPriorityLevel = "invalid_priority_level"
)

var errorCodes = map[error]string{
	domain.ErrTaskNotFound:         codeNotFound,
	domain.ErrInvalidTitle:         codeInvalidTitle,
	domain.ErrInvalidDescription:   codeInvalidDescription,
	domain.ErrInvalidCompleted:     codeInvalidCompleted,
	domain.ErrInvalidPriority:      codeInvalidPriority,
	domain.ErrInvalidPriorityLevel: codeInvalidPriorityLevel,
}

// errorCode returns the reply code for a domain error, or "" if err is not one.
func errorCode(err error) string {
	for sentinel, code := range errorCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}

// errorFromCode turns a reply code back into its sentinel error.
func errorFromCode(code string) error {
	for sentinel, c := range errorCodes {
		if c == code {
			return sentinel
		}
	}
	return errors.New("unknown task error: " + code)
}
