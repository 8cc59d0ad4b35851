package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// ServiceListActivity is the request-reply service exposing the feed.
const ServiceListActivity = "list-activity"

// ActivityModule records task events as a driven adapter.
// It subscribes to domain events using the EventConsumerModule interface.
type ActivityModule struct {
	feed   *Feed
	logger types.Logger
}

var _ mono.Module = (*ActivityModule)(nil)
var _ mono.EventConsumerModule = (*ActivityModule)(nil)
var _ mono.ServiceProviderModule = (*ActivityModule)(nil)
var _ mono.HealthCheckableModule = (*ActivityModule)(nil)

// NewModule creates an activity module keeping at most limit entries.
func NewModule(limit int, logger types.Logger) *ActivityModule {
	return &ActivityModule{
		feed:   NewFeed(limit),
		logger: logger,
	}
}

func (m *ActivityModule) Name() string {
	return "activity"
}

// Feed returns the module's activity feed.
func (m *ActivityModule) Feed() *Feed {
	return m.feed
}

func (m *ActivityModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}

	m.logger.Info("Registered event consumers", "events", []string{"TaskCreated", "TaskUpdated", "TaskDeleted"})
	return nil
}

func (m *ActivityModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, ServiceListActivity, json.Unmarshal, json.Marshal, m.listActivity,
	); err != nil {
		return fmt.Errorf("failed to register %s service: %w", ServiceListActivity, err)
	}
	return nil
}

func (m *ActivityModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	m.logger.Debug("Task created", "task_id", event.TaskID, "title", event.Title)
	m.feed.Record(event.TaskID, TypeTaskCreated,
		fmt.Sprintf("Task '%s' created with %s priority", event.Title, event.Priority), event.CreatedAt)
	return nil
}

func (m *ActivityModule) handleTaskUpdated(_ context.Context, event events.TaskUpdatedEvent, _ *mono.Msg) error {
	m.logger.Debug("Task updated", "task_id", event.TaskID)
	status := "open"
	if event.Completed {
		status = "completed"
	}
	m.feed.Record(event.TaskID, TypeTaskUpdated,
		fmt.Sprintf("Task %d updated: '%s' (%s, %s priority)", event.TaskID, event.Title, status, event.Priority), event.UpdatedAt)
	return nil
}

func (m *ActivityModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	m.logger.Debug("Task deleted", "task_id", event.TaskID)
	m.feed.Record(event.TaskID, TypeTaskDeleted, fmt.Sprintf("Task %d deleted", event.TaskID), event.DeletedAt)
	return nil
}

// listActivity handles the list-activity service request.
func (m *ActivityModule) listActivity(_ context.Context, req ListActivityRequest, _ *mono.Msg) (ListActivityResponse, error) {
	entries := m.feed.Recent(req.Limit)
	return ListActivityResponse{Entries: entries, Total: len(entries)}, nil
}

func (m *ActivityModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"entries": m.feed.Len(),
			"limit":   m.feed.limit,
		},
	}
}

func (m *ActivityModule) Start(_ context.Context) error {
	m.logger.Info("Activity module started - listening for task events")
	return nil
}

func (m *ActivityModule) Stop(_ context.Context) error {
	m.logger.Info("Activity module stopped", "entries", m.feed.Len())
	return nil
}
