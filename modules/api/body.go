package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/modules/task"
	"github.com/gofiber/fiber/v2"
)

// decodePayload reads a create or update body. JSON bodies must be an object or
// an array; arrays carry no fields. Form bodies yield string fields. Any other
// content type yields an empty payload.
func decodePayload(c *fiber.Ctx) (task.Payload, error) {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		body := bytes.TrimSpace(c.Body())
		if len(body) == 0 {
			return task.Payload{}, nil
		}

		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", errMalformedBody, err)
		}
		switch fields := v.(type) {
		case map[string]any:
			return task.Payload(fields), nil
		case []any:
			return task.Payload{}, nil
		default:
			return nil, fmt.Errorf("%w: top-level value must be an object or array", errMalformedBody)
		}

	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
		p := task.Payload{}
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			p[string(key)] = string(value)
		})
		return p, nil
	}

	return task.Payload{}, nil
}
