package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// Service names registered by the task module.
const (
	ServiceListTasks           = "list-tasks"
	ServiceGetTask             = "get-task"
	ServiceListTasksByPriority = "list-tasks-by-priority"
	ServiceCreateTask          = "create-task"
	ServiceUpdateTask          = "update-task"
	ServiceDeleteTask          = "delete-task"
)

// TaskModule provides task management services (core domain).
type TaskModule struct {
	service  *Service
	eventBus mono.EventBus
	logger   types.Logger
}

var _ mono.Module = (*TaskModule)(nil)
var _ mono.ServiceProviderModule = (*TaskModule)(nil)
var _ mono.EventEmitterModule = (*TaskModule)(nil)

// NewModule creates a task module backed by store.
func NewModule(store *Store, logger types.Logger) *TaskModule {
	return &TaskModule{
		service: NewService(store),
		logger:  logger,
	}
}

func (m *TaskModule) Name() string {
	return "task"
}

func (m *TaskModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

func (m *TaskModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCreatedV1.ToBase(),
		events.TaskUpdatedV1.ToBase(),
		events.TaskDeletedV1.ToBase(),
	}
}

func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListTasks, json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListTasks, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceGetTask, json.Unmarshal, json.Marshal, m.getTask,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceGetTask, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListTasksByPriority, json.Unmarshal, json.Marshal, m.listTasksByPriority,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListTasksByPriority, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceCreateTask, json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceCreateTask, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceUpdateTask, json.Unmarshal, json.Marshal, m.updateTask,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceUpdateTask, err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceDeleteTask, json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceDeleteTask, err)
	}

	m.logger.Info("Registered task services",
		"services", []string{
			ServiceListTasks, ServiceGetTask, ServiceListTasksByPriority,
			ServiceCreateTask, ServiceUpdateTask, ServiceDeleteTask,
		})
	return nil
}

func (m *TaskModule) Start(_ context.Context) error {
	if m.eventBus == nil {
		m.logger.Warn("eventBus not set, task events will not be published")
	}
	m.logger.Info("Task module started", "tasks", m.service.Store().Len())
	return nil
}

func (m *TaskModule) Stop(_ context.Context) error {
	m.logger.Info("Task module stopped")
	return nil
}

// Service returns the in-process task service.
func (m *TaskModule) Service() *Service {
	return m.service
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (TaskListReply, error) {
	tasks, err := m.service.ListTasks(ctx, &req)
	return listReply(tasks, err)
}

// getTask handles the get-task service request.
func (m *TaskModule) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskReply, error) {
	t, err := m.service.GetTask(ctx, req.TaskID)
	return taskReply(t, err)
}

// listTasksByPriority handles the list-tasks-by-priority service request.
func (m *TaskModule) listTasksByPriority(ctx context.Context, req ListByPriorityRequest, _ *mono.Msg) (TaskListReply, error) {
	tasks, err := m.service.ListTasksByPriority(ctx, req.Level)
	return listReply(tasks, err)
}

// createTask handles the create-task service request.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskReply, error) {
	t, err := m.service.CreateTask(ctx, &req)
	if err != nil {
		return taskReply(nil, err)
	}

	// Event publishing is best-effort; log but don't fail the operation
	if m.eventBus != nil {
		event := events.TaskCreatedEvent{
			TaskID:    t.ID,
			Title:     t.Title,
			Priority:  string(t.Priority),
			CreatedAt: t.CreatedAt,
		}
		if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
			m.logger.Warn("Failed to publish TaskCreated event", "task_id", t.ID, "error", err)
		}
	}

	return taskReply(t, nil)
}

// updateTask handles the update-task service request.
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskReply, error) {
	t, err := m.service.UpdateTask(ctx, &req)
	if err != nil {
		return taskReply(nil, err)
	}

	if m.eventBus != nil {
		event := events.TaskUpdatedEvent{
			TaskID:    t.ID,
			Title:     t.Title,
			Completed: t.Completed,
			Priority:  string(t.Priority),
			UpdatedAt: time.Now().UTC(),
		}
		if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
			m.logger.Warn("Failed to publish TaskUpdated event", "task_id", t.ID, "error", err)
		}
	}

	return taskReply(t, nil)
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskReply, error) {
	if err := m.service.DeleteTask(ctx, req.TaskID); err != nil {
		if code := errorCode(err); code != "" {
			return DeleteTaskReply{Deleted: false, Error: code}, nil
		}
		return DeleteTaskReply{Deleted: false}, err
	}

	if m.eventBus != nil {
		event := events.TaskDeletedEvent{
			TaskID:    req.TaskID,
			DeletedAt: time.Now().UTC(),
		}
		if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
			m.logger.Warn("Failed to publish TaskDeleted event", "task_id", req.TaskID, "error", err)
		}
	}

	return DeleteTaskReply{Deleted: true}, nil
}

// taskReply folds domain errors into the reply so they survive the service boundary.
func taskReply(t *domain.Task, err error) (TaskReply, error) {
	if err != nil {
		if code := errorCode(err); code != "" {
			return TaskReply{Error: code}, nil
		}
		return TaskReply{}, err
	}
	return TaskReply{Task: t}, nil
}

func listReply(tasks []domain.Task, err error) (TaskListReply, error) {
	if err != nil {
		if code := errorCode(err); code != "" {
			return TaskListReply{Tasks: []domain.Task{}, Error: code}, nil
		}
		return TaskListReply{}, err
	}
	return TaskListReply{Tasks: tasks, Total: len(tasks)}, nil
}
