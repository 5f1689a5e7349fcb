package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "schoolku_backend/internals/features/school/academics/groups/controller"
)

func ClassGroupRoutes(admin fiber.Router, db *gorm.DB) {
	h := groupController.NewClassGroupController(db)

	g := admin.Group("/groups")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Post("/:id/enrollments", h.EnrollStudents)
	g.Get("/:id/roster", h.Roster)
	g.Delete("/:id/enrollments/:student_id", h.Unenroll)
}
