package activity

import (
	"context"
	"testing"
	"time"

	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/events"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...any)         {}
func (m *mockLogger) Info(_ string, _ ...any)          {}
func (m *mockLogger) Warn(_ string, _ ...any)          {}
func (m *mockLogger) Error(_ string, _ ...any)         {}
func (m *mockLogger) With(_ ...any) types.Logger       { return m }
func (m *mockLogger) WithModule(_ string) types.Logger { return m }
func (m *mockLogger) WithError(_ error) types.Logger   { return m }

func TestModule_HandlesTaskEvents(t *testing.T) {
	m := NewModule(10, &mockLogger{})
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, m.handleTaskCreated(ctx, events.TaskCreatedEvent{TaskID: 2, Title: "T", Priority: "high", CreatedAt: now}, nil))
	require.NoError(t, m.handleTaskUpdated(ctx, events.TaskUpdatedEvent{TaskID: 2, Title: "T2", Completed: true, Priority: "low", UpdatedAt: now}, nil))
	require.NoError(t, m.handleTaskDeleted(ctx, events.TaskDeletedEvent{TaskID: 2, DeletedAt: now}, nil))

	resp, err := m.listActivity(ctx, ListActivityRequest{}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)

	assert.Equal(t, TypeTaskCreated, resp.Entries[0].Type)
	assert.Equal(t, "Task 'T' created with high priority", resp.Entries[0].Message)
	assert.Equal(t, TypeTaskUpdated, resp.Entries[1].Type)
	assert.Contains(t, resp.Entries[1].Message, "completed")
	assert.Equal(t, TypeTaskDeleted, resp.Entries[2].Type)

	for _, e := range resp.Entries {
		assert.Equal(t, 2, e.TaskID)
		_, err := uuid.Parse(e.ID)
		assert.NoError(t, err, "entry id should be a uuid")
	}
}

func TestModule_ListActivityLimit(t *testing.T) {
	m := NewModule(10, &mockLogger{})
	for i := 1; i <= 4; i++ {
		m.Feed().Record(i, TypeTaskCreated, "created", time.Now())
	}

	resp, err := m.listActivity(context.Background(), ListActivityRequest{Limit: 2}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 3, resp.Entries[0].TaskID)
	assert.Equal(t, 4, resp.Entries[1].TaskID)
}

func TestFeed_DropsOldestWhenFull(t *testing.T) {
	f := NewFeed(3)
	for i := 1; i <= 5; i++ {
		f.Record(i, TypeTaskCreated, "created", time.Now())
	}

	entries := f.Recent(0)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{3, 4, 5}, []int{entries[0].TaskID, entries[1].TaskID, entries[2].TaskID})
	assert.Equal(t, 3, f.Len())
}

func TestModule_Health(t *testing.T) {
	m := NewModule(5, &mockLogger{})
	m.Feed().Record(1, TypeTaskDeleted, "deleted", time.Now())

	health := m.Health(context.Background())
	assert.True(t, health.Healthy)
	assert.Equal(t, 1, health.Details["entries"])
	assert.Equal(t, 5, health.Details["limit"])
	assert.Equal(t, "activity", m.Name())
}
