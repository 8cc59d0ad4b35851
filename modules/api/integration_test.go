package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/modules/activity"
	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/modules/task"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startApplication runs the activity, task and api modules on a real mono
// application so requests travel through the service adapters and event bus.
func startApplication(t *testing.T) *fiber.App {
	t.Helper()

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(5*time.Second),
		mono.WithLogLevel(mono.LogLevelError), // Suppress logs in tests
	)
	require.NoError(t, err)
	logger := app.Logger()

	store := task.NewStore(task.WithSeed(task.SeedTasks(baseTime)...))
	apiModule := NewModule(Config{Addr: "127.0.0.1:0"}, logger)

	require.NoError(t, app.Register(activity.NewModule(50, logger)))
	require.NoError(t, app.Register(task.NewModule(store, logger)))
	require.NoError(t, app.Register(apiModule))

	require.NoError(t, app.Start(context.Background()))
	t.Cleanup(func() {
		_ = app.Stop(context.Background())
	})

	require.NotNil(t, apiModule.app)
	return apiModule.app
}

func activityEntries(t *testing.T, app *fiber.App) []activity.Entry {
	t.Helper()
	status, body := doJSON(t, app, http.MethodGet, "/activity", "")
	require.Equal(t, http.StatusOK, status)

	var entries []activity.Entry
	require.NoError(t, json.Unmarshal(body, &entries))
	return entries
}

func TestApplication_Routes(t *testing.T) {
	app := startApplication(t)

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{name: "list", method: http.MethodGet, path: "/tasks", wantStatus: http.StatusOK},
		{name: "get seed", method: http.MethodGet, path: "/tasks/1", wantStatus: http.StatusOK},
		{name: "get missing", method: http.MethodGet, path: "/tasks/99", wantStatus: http.StatusNotFound, wantMessage: msgTaskNotFound},
		{name: "priority", method: http.MethodGet, path: "/tasks/priority/medium", wantStatus: http.StatusOK},
		{name: "priority invalid", method: http.MethodGet, path: "/tasks/priority/urgent", wantStatus: http.StatusBadRequest, wantMessage: msgInvalidPriorityLevel},
		{name: "create invalid title", method: http.MethodPost, path: "/tasks", body: `{"title":"","description":"D"}`, wantStatus: http.StatusBadRequest, wantMessage: msgInvalidTitle},
		{name: "create invalid priority", method: http.MethodPost, path: "/tasks", body: `{"title":"T","description":"D","priority":"urgent"}`, wantStatus: http.StatusBadRequest, wantMessage: msgInvalidPriority},
		{name: "update missing", method: http.MethodPut, path: "/tasks/99", body: `{"title":"T","description":"D","completed":true}`, wantStatus: http.StatusNotFound, wantMessage: msgTaskNotFound},
		{name: "delete missing", method: http.MethodDelete, path: "/tasks/99", wantStatus: http.StatusNotFound, wantMessage: msgTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status, string(body))
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, body))
			}
		})
	}

	assert.Empty(t, activityEntries(t, app), "rejected requests record no activity")
}

func TestApplication_Lifecycle(t *testing.T) {
	app := startApplication(t)

	status, body := doJSON(t, app, http.MethodPost, "/tasks", `{"title":"T","description":"D","priority":"high"}`)
	require.Equal(t, http.StatusCreated, status, string(body))
	created := decodeTask(t, body)
	assert.Equal(t, 2, created.ID)
	assert.Equal(t, domain.PriorityHigh, created.Priority)
	assert.False(t, created.Completed)

	status, body = doJSON(t, app, http.MethodGet, "/tasks/priority/high", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []int{2}, taskIDs(decodeTasks(t, body)))

	status, body = doJSON(t, app, http.MethodPut, "/tasks/2", `{"title":"T2","description":"D2","completed":true}`)
	require.Equal(t, http.StatusOK, status, string(body))
	updated := decodeTask(t, body)
	assert.Equal(t, 2, updated.ID)
	assert.True(t, updated.Completed)
	assert.Equal(t, domain.PriorityMedium, updated.Priority)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	status, body = doJSON(t, app, http.MethodGet, "/tasks?completed=true&sort=desc", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []int{2, 1}, taskIDs(decodeTasks(t, body)))

	status, body = doJSON(t, app, http.MethodDelete, "/tasks/2", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, msgTaskDeleted, decodeMessage(t, body))

	status, _ = doJSON(t, app, http.MethodGet, "/tasks/2", "")
	assert.Equal(t, http.StatusNotFound, status)

	// Events are delivered asynchronously.
	var entries []activity.Entry
	require.Eventually(t, func() bool {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/activity", nil), -1)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		entries = nil
		return json.NewDecoder(resp.Body).Decode(&entries) == nil && len(entries) == 3
	}, 5*time.Second, 50*time.Millisecond)

	types := make([]string, 0, len(entries))
	for _, e := range entries {
		types = append(types, e.Type)
	}
	assert.ElementsMatch(t, []string{activity.TypeTaskCreated, activity.TypeTaskUpdated, activity.TypeTaskDeleted}, types)
	for _, e := range entries {
		assert.Equal(t, 2, e.TaskID)
		assert.NotEmpty(t, e.ID)
	}

	status, body = doJSON(t, app, http.MethodGet, "/activity?limit=1", "")
	require.Equal(t, http.StatusOK, status)
	var latest []activity.Entry
	require.NoError(t, json.Unmarshal(body, &latest))
	require.Len(t, latest, 1)
	assert.Equal(t, entries[2].ID, latest[0].ID)

	status, body = doJSON(t, app, http.MethodPost, "/tasks", `{"title":"T3","description":"D3"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 3, decodeTask(t, body).ID, "deleted ids are never reused")
}
