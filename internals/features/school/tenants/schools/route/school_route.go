package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "schoolku_backend/internals/features/school/tenants/schools/controller"
)

func SchoolRoutes(admin fiber.Router, db *gorm.DB) {
	h := schoolController.NewSchoolController(db)

	g := admin.Group("/schools")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
