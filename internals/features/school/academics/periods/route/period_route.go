package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodController "schoolku_backend/internals/features/school/academics/periods/controller"
)

func PeriodRoutes(admin fiber.Router, db *gorm.DB) {
	h := periodController.NewPeriodController(db)

	g := admin.Group("/periods")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Put("/:id", h.Update)
}
