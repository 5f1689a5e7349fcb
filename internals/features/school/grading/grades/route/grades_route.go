package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "schoolku_backend/internals/features/school/grading/grades/controller"
)

func GradeRoutes(admin fiber.Router, db *gorm.DB) {
	single := gradeController.NewGradeController(db)
	batch := gradeController.NewGradeBatchController(db)
	audits := gradeController.NewGradeAuditController(db)

	g := admin.Group("/grades")
	g.Post("/", single.Create)
	g.Get("/", single.List)

	g.Post("/batch/preview", batch.Preview)
	g.Post("/batch", batch.Submit)

	g.Get("/audits", audits.List)
}
