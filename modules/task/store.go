package task

import (
	"sync"
	"time"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSeed preloads the store. The id counter starts one past the highest seeded id.
func WithSeed(tasks ...domain.Task) StoreOption {
	return func(s *Store) {
		s.tasks = append(s.tasks, tasks...)
	}
}

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// Store provides in-memory task storage in insertion order.
type Store struct {
	tasks  []domain.Task
	nextID int
	now    func() time.Time
	mu     sync.RWMutex
}

// NewStore creates a new task store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		tasks: make([]domain.Task, 0),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.nextID = 1
	for _, t := range s.tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// SeedTasks returns the task the application starts with.
func SeedTasks(now time.Time) []domain.Task {
	return []domain.Task{
		{
			ID:          1,
			Title:       "Set up environment",
			Description: "Install Node.js, npm, and git",
			Completed:   true,
			Priority:    domain.PriorityMedium,
			CreatedAt:   now,
		},
	}
}

// List returns a copy of all tasks.
func (s *Store) List() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// FindByID finds a task by id.
func (s *Store) FindByID(id int) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return s.tasks[i], nil
}

// FindByPriority returns the tasks with the given priority.
func (s *Store) FindByPriority(priority domain.Priority) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Task, 0)
	for _, t := range s.tasks {
		if t.Priority == priority {
			result = append(result, t)
		}
	}
	return result
}

// Append stores a new task under the next id. New tasks always start incomplete.
func (s *Store) Append(input TaskInput) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Task{
		ID:          s.nextID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		Priority:    input.priorityOrDefault(),
		CreatedAt:   s.now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// Replace overwrites the mutable fields of a task, keeping its id and createdAt.
func (s *Store) Replace(id int, input TaskInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	t := &s.tasks[i]
	t.Title = input.Title
	t.Description = input.Description
	t.Completed = input.Completed != nil && *input.Completed
	t.Priority = input.priorityOrDefault()
	return *t, nil
}

// Remove deletes a task by id.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// indexOf must be called with the lock held.
func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
