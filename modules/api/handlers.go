package api

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/modules/task"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)
	app.Get("/activity", m.listActivity)

	tasks := app.Group("/tasks")
	tasks.Get("/", m.listTasks)
	tasks.Get("/priority/:level", m.listTasksByPriority)
	tasks.Get("/:id", m.getTask)
	tasks.Post("/", m.createTask)
	tasks.Put("/:id", m.updateTask)
	tasks.Delete("/:id", m.deleteTask)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"addr":   m.cfg.Addr,
		},
	})
}

// listTasks handles GET /tasks?completed=&sort=.
func (m *APIModule) listTasks(c *fiber.Ctx) error {
	req := task.ListTasksRequest{Sort: c.Query("sort")}
	// A repeated completed parameter is a list, which never equals "true".
	if values := c.Context().QueryArgs().PeekMulti("completed"); len(values) > 0 {
		completed := string(bytes.Join(values, []byte(",")))
		req.Completed = &completed
	}

	tasks, err := m.taskPort.ListTasks(c.Context(), &req)
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(tasks)
}

// getTask handles GET /tasks/:id.
func (m *APIModule) getTask(c *fiber.Ctx) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return m.writeError(c, err)
	}

	t, err := m.taskPort.GetTask(c.Context(), taskID)
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(t)
}

// listTasksByPriority handles GET /tasks/priority/:level.
func (m *APIModule) listTasksByPriority(c *fiber.Ctx) error {
	tasks, err := m.taskPort.ListTasksByPriority(c.Context(), c.Params("level"))
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(tasks)
}

// createTask handles POST /tasks.
func (m *APIModule) createTask(c *fiber.Ctx) error {
	payload, err := decodePayload(c)
	if err != nil {
		return err
	}
	input, err := task.ValidatePayload(payload)
	if err != nil {
		return m.writeError(c, err)
	}

	t, err := m.taskPort.CreateTask(c.Context(), &task.CreateTaskRequest{
		Title:       input.Title,
		Description: input.Description,
		Priority:    string(input.Priority),
	})
	if err != nil {
		return m.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// updateTask handles PUT /tasks/:id. The body is validated before the id is looked up.
func (m *APIModule) updateTask(c *fiber.Ctx) error {
	payload, err := decodePayload(c)
	if err != nil {
		return err
	}
	input, err := task.ValidatePayload(payload)
	if err != nil {
		return m.writeError(c, err)
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return m.writeError(c, err)
	}

	t, err := m.taskPort.UpdateTask(c.Context(), &task.UpdateTaskRequest{
		TaskID:      taskID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Priority:    string(input.Priority),
	})
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(t)
}

// deleteTask handles DELETE /tasks/:id.
func (m *APIModule) deleteTask(c *fiber.Ctx) error {
	taskID, err := parseTaskID(c)
	if err != nil {
		return m.writeError(c, err)
	}

	if err := m.taskPort.DeleteTask(c.Context(), taskID); err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(MessageResponse{Message: msgTaskDeleted})
}

// listActivity handles GET /activity?limit=.
func (m *APIModule) listActivity(c *fiber.Ctx) error {
	entries, err := m.activityPort.ListActivity(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return m.writeError(c, err)
	}
	return c.JSON(entries)
}

// parseTaskID reads the :id parameter the way a leading-integer parse does:
// surrounding text after the digits is ignored, so "1abc" and "1.5" both name
// task 1. Parameters without leading digits cannot match a task.
func parseTaskID(c *fiber.Ctx) (int, error) {
	raw := strings.TrimLeftFunc(c.Params("id"), unicode.IsSpace)

	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, domain.ErrTaskNotFound
	}

	taskID, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, domain.ErrTaskNotFound
	}
	return taskID, nil
}
