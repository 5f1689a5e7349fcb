package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "schoolku_backend/internals/features/school/academics/subjects/controller"
)

func SubjectRoutes(admin fiber.Router, db *gorm.DB) {
	h := subjectController.NewSubjectController(db)

	g := admin.Group("/subjects")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
