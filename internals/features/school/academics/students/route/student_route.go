package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "schoolku_backend/internals/features/school/academics/students/controller"
)

func StudentRoutes(admin fiber.Router, db *gorm.DB) {
	h := studentController.NewStudentController(db)

	g := admin.Group("/students")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
