package api

import (
	"errors"

	domain "github.com/airtribe-projects/task-manager-api-PrasadBhat4/domain/task"
	"github.com/gofiber/fiber/v2"
)

// errMalformedBody marks a request body that could not be parsed.
// It is answered by the application's error handler.
var errMalformedBody = errors.New("malformed request body")

// Client-facing messages.
const (
	msgTaskNotFound         = "Task not found"
	msgTaskDeleted          = "Task deleted successfully"
	msgInvalidTitle         = "Title is required and must be a non-empty string."
	msgInvalidDescription   = "Description is required and must be a non-empty string."
	msgInvalidCompleted     = "Completed must be a boolean value."
	msgInvalidPriority      = "Priority must be one of: low, medium, high."
	msgInvalidPriorityLevel = "Invalid priority level."
	msgInvalidJSON          = "Invalid JSON payload."
	msgInternal             = "Internal Server Error"
)

var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{domain.ErrTaskNotFound, fiber.StatusNotFound, msgTaskNotFound},
	{domain.ErrInvalidTitle, fiber.StatusBadRequest, msgInvalidTitle},
	{domain.ErrInvalidDescription, fiber.StatusBadRequest, msgInvalidDescription},
	{domain.ErrInvalidCompleted, fiber.StatusBadRequest, msgInvalidCompleted},
	{domain.ErrInvalidPriority, fiber.StatusBadRequest, msgInvalidPriority},
	{domain.ErrInvalidPriorityLevel, fiber.StatusBadRequest, msgInvalidPriorityLevel},
	{errMalformedBody, fiber.StatusBadRequest, msgInvalidJSON},
}

// statusFor maps an error to its HTTP status and message.
func statusFor(err error) (int, string) {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			return r.status, r.message
		}
	}
	return fiber.StatusInternalServerError, msgInternal
}

// writeError sends the JSON error body for err.
func (m *APIModule) writeError(c *fiber.Ctx, err error) error {
	status, message := statusFor(err)
	if status == fiber.StatusInternalServerError {
		m.logger.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(MessageResponse{Message: message})
}

// errorHandler is the application-wide Fiber error handler. It answers
// unparsable bodies, framework errors and anything a handler returned.
func (m *APIModule) errorHandler(c *fiber.Ctx, err error) error {
	if errors.Is(err, errMalformedBody) {
		m.logger.Warn("JSON parse error",
			"error", err,
			"url", c.OriginalURL(),
			"method", c.Method())
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: msgInvalidJSON})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(MessageResponse{Message: fe.Message})
	}

	return m.writeError(c, err)
}
