package task

import (
	"context"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
)

// Service provides task operations over a Store. It implements TaskPort in-process.
type Service struct {
	store *Store
}

var _ TaskPort = (*Service)(nil)

// NewService creates a new task service.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Store returns the underlying store.
func (s *Service) Store() *Store {
	return s.store
}

// ListTasks returns all tasks after applying the completion filter and sort order.
func (s *Service) ListTasks(_ context.Context, req *ListTasksRequest) ([]domain.Task, error) {
	q := NewListQuery(req.Completed, req.Sort)
	return q.Apply(s.store.List()), nil
}

// GetTask returns the task with the given id.
func (s *Service) GetTask(_ context.Context, taskID int) (*domain.Task, error) {
	t, err := s.store.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasksByPriority returns the tasks at the given priority level in insertion order.
func (s *Service) ListTasksByPriority(_ context.Context, level string) ([]domain.Task, error) {
	priority, err := domain.ParsePriority(level)
	if err != nil {
		return nil, err
	}
	return s.store.FindByPriority(priority), nil
}

// CreateTask stores a new task.
func (s *Service) CreateTask(_ context.Context, req *CreateTaskRequest) (*domain.Task, error) {
	in := TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.Priority(req.Priority),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	t := s.store.Append(in)
	return &t, nil
}

// UpdateTask replaces the mutable fields of an existing task.
func (s *Service) UpdateTask(_ context.Context, req *UpdateTaskRequest) (*domain.Task, error) {
	in := TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    domain.Priority(req.Priority),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	t, err := s.store.Replace(req.TaskID, in)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(_ context.Context, taskID int) error {
	return s.store.Remove(taskID)
}
