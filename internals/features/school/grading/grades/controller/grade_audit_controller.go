package controller

import (
	"strconv"
	"strings"

	gradeDTO "schoolku_backend/internals/features/school/grading/grades/dto"
	"schoolku_backend/internals/features/school/grading/grades/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeAuditController exposes the read-only audit trail. There is no write
// surface here on purpose.
type GradeAuditController struct {
	Audit *service.AuditService
}

func NewGradeAuditController(db *gorm.DB) *GradeAuditController {
	return &GradeAuditController{Audit: service.NewAuditService(db)}
}

// GET /api/a/grades/audits
// Filters: period_id, student_id, student_ids (csv), group_id, subject_id,
// actor_staff_id, correlation_id. Any combination, school-scoped always.
func (h *GradeAuditController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 50, 200)

	q := service.AuditQuery{SchoolID: schoolID}
	if v, ok := int64Query(c, "period_id"); ok {
		q.PeriodID = &v
	}
	if v, ok := int64Query(c, "student_id"); ok {
		q.StudentID = &v
	}
	if v, ok := int64Query(c, "group_id"); ok {
		q.GroupID = &v
	}
	if v, ok := int64Query(c, "subject_id"); ok {
		q.SubjectID = &v
	}
	if v, ok := int64Query(c, "actor_staff_id"); ok {
		q.ActorStaffID = &v
	}
	if raw := strings.TrimSpace(c.Query("correlation_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "correlation_id must be a UUID")
		}
		q.CorrelationID = &id
	}
	if raw := strings.TrimSpace(c.Query("student_ids")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil || n <= 0 {
				return helper.Error(c, fiber.StatusBadRequest, "student_ids must be a comma-separated list of ids")
			}
			q.StudentIDs = append(q.StudentIDs, n)
		}
	}

	rows, total, err := h.Audit.List(c.Context(), q, paging.Limit, paging.Offset)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to query audit trail")
	}

	out := make([]gradeDTO.AuditEntryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, gradeDTO.AuditFromModel(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"audits":     out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}

func int64Query(c *fiber.Ctx, key string) (int64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
