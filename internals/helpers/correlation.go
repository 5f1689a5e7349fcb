package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const LocCorrelationID = "correlation_id"

// CorrelationID returns the per-request id set by the correlation middleware.
// Falls back to a fresh UUID so audit rows are never written without one
// (e.g. calls arriving from internal jobs that skip the HTTP stack).
func CorrelationID(c *fiber.Ctx) uuid.UUID {
	if v, ok := c.Locals(LocCorrelationID).(uuid.UUID); ok {
		return v
	}
	if s, ok := c.Locals(LocCorrelationID).(string); ok {
		if id, err := uuid.Parse(s); err == nil {
			return id
		}
	}
	return uuid.New()
}
