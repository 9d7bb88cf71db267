package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID between the auth gateway, this
	// API, and its clients.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is where the ID sits in Fiber's ctx locals so the
	// request logger and the error envelope can pick it up.
	RequestIDLocalKey = "request_id"
)

// RequestID guarantees every request has an ID: an incoming X-Request-ID is
// reused, otherwise a fresh UUID is minted. The ID is stored in ctx locals
// and echoed on the response header so log lines, error payloads, and client
// reports all correlate.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
