package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupRoute "schoolku_backend/internals/features/school/academics/groups/route"
	periodRoute "schoolku_backend/internals/features/school/academics/periods/route"
	staffRoute "schoolku_backend/internals/features/school/academics/staff/route"
	studentRoute "schoolku_backend/internals/features/school/academics/students/route"
	subjectRoute "schoolku_backend/internals/features/school/academics/subjects/route"
	gradeRoute "schoolku_backend/internals/features/school/grading/grades/route"
	schoolRoute "schoolku_backend/internals/features/school/tenants/schools/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + tenant scope)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	schoolRoute.SchoolRoutes(admin, db)
	staffRoute.StaffRoutes(admin, db)
	studentRoute.StudentRoutes(admin, db)
	subjectRoute.SubjectRoutes(admin, db)
	periodRoute.PeriodRoutes(admin, db)
	groupRoute.ClassGroupRoutes(admin, db)
	gradeRoute.GradeRoutes(admin, db)
}
