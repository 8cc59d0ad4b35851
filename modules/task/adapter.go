package task

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
// This is the adapter that implements the TaskPort interface.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

// ListTasks lists tasks via the list-tasks service.
func (a *taskAdapter) ListTasks(ctx context.Context, req *ListTasksRequest) ([]domain.Task, error) {
	var resp TaskListReply
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceListTasks,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceListTasks, err)
	}
	return resp.tasks()
}

// GetTask retrieves a task by id via the get-task service.
func (a *taskAdapter) GetTask(ctx context.Context, taskID int) (*domain.Task, error) {
	req := GetTaskRequest{TaskID: taskID}
	var resp TaskReply
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceGetTask,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceGetTask, err)
	}
	return resp.task()
}

// ListTasksByPriority lists tasks of one priority via the list-tasks-by-priority service.
func (a *taskAdapter) ListTasksByPriority(ctx context.Context, level string) ([]domain.Task, error) {
	req := ListByPriorityRequest{Level: level}
	var resp TaskListReply
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceListTasksByPriority,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceListTasksByPriority, err)
	}
	return resp.tasks()
}

// CreateTask creates a task via the create-task service.
func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*domain.Task, error) {
	var resp TaskReply
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceCreateTask,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceCreateTask, err)
	}
	return resp.task()
}

// UpdateTask replaces a task via the update-task service.
func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*domain.Task, error) {
	var resp TaskReply
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceUpdateTask,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("%s service call failed: %w", ServiceUpdateTask, err)
	}
	return resp.task()
}

// DeleteTask deletes a task via the delete-task service.
func (a *taskAdapter) DeleteTask(ctx context.Context, taskID int) error {
	req := DeleteTaskRequest{TaskID: taskID}
	var resp DeleteTaskReply
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceDeleteTask,
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return fmt.Errorf("%s service call failed: %w", ServiceDeleteTask, err)
	}
	if resp.Error != "" {
		return errorFromCode(resp.Error)
	}
	if !resp.Deleted {
		return fmt.Errorf("task not deleted: %d", taskID)
	}
	return nil
}

func (r TaskReply) task() (*domain.Task, error) {
	if r.Error != "" {
		return nil, errorFromCode(r.Error)
	}
	if r.Task == nil {
		return nil, fmt.Errorf("empty task reply")
	}
	return r.Task, nil
}

func (r TaskListReply) tasks() ([]domain.Task, error) {
	if r.Error != "" {
		return nil, errorFromCode(r.Error)
	}
	if r.Tasks == nil {
		return []domain.Task{}, nil
	}
	return r.Tasks, nil
}
