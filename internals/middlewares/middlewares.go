package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registers the base middleware chain, order matters:
// recovery first, then correlation so every later log line carries the id.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorrelationMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
