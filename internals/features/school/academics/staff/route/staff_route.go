package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	staffController "schoolku_backend/internals/features/school/academics/staff/controller"
)

func StaffRoutes(admin fiber.Router, db *gorm.DB) {
	h := staffController.NewStaffController(db)

	g := admin.Group("/staff")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
