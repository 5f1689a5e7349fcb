package middlewares

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "schoolku_backend/internals/helpers"
)

// CorrelationMiddleware threads one id per inbound request through logs,
// errors and audit rows. Honors an incoming X-Request-ID when it parses as a
// UUID, otherwise mints a new one; always echoes it back on the response.
func CorrelationMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Get("X-Request-ID"))
		if err != nil {
			id = uuid.New()
		}
		c.Set("X-Request-ID", id.String())
		c.Locals(helper.LocCorrelationID, id)

		start := time.Now()
		err = c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s",
			id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	}
}
