package controller

import (
	"errors"
	"log"

	gradeDTO "schoolku_backend/internals/features/school/grading/grades/dto"
	gradeModel "schoolku_backend/internals/features/school/grading/grades/model"
	"schoolku_backend/internals/features/school/grading/grades/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GradeController struct {
	DB        *gorm.DB
	Capture   *service.GradeCaptureService
	Validator *validator.Validate
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{
		DB:        db,
		Capture:   service.NewGradeCaptureService(db),
		Validator: validator.New(),
	}
}

// POST /api/a/grades
// Single capture runs as a batch of one so the roster, policy and conflict
// rules stay in one place.
func (h *GradeController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var p gradeDTO.CreateGradeRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	batch := p.ToBatch()
	req := batch.ToDomain(schoolID, staffID)
	correlationID := helper.CorrelationID(c)

	result, err := h.Capture.Submit(c.Context(), req, correlationID)
	if err != nil {
		if errors.Is(err, service.ErrPeriodClosed) {
			return helper.Error(c, fiber.StatusConflict, "Evaluation period is closed")
		}
		var pe *service.PersistenceError
		if errors.As(err, &pe) {
			log.Printf("[GRADES] capture rolled back correlation_id=%s: %v", pe.CorrelationID, pe.Err)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to capture grade")
	}

	line := result.Lines[0]
	switch line.Outcome {
	case service.OutcomeInserted:
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Grade captured", result)
	case service.OutcomeUpdated:
		return helper.Success(c, "Grade recalibrated", result)
	case service.OutcomeBlockedByPolicy:
		return helper.ErrorWithDetails(c, fiber.StatusConflict, "Grade already captured", result)
	case service.OutcomeBlockedByConflict:
		return helper.ErrorWithDetails(c, fiber.StatusConflict, "Grade captured concurrently, re-fetch and retry", result)
	default:
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, line.Reason, result)
	}
}

// GET /api/a/grades
func (h *GradeController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 50, 200)

	var q gradeDTO.ListGradeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}

	tx := h.DB.WithContext(c.Context()).Model(&gradeModel.GradeRecordModel{}).
		Where("grade_record_school_id = ?", schoolID)
	if q.GroupID != nil {
		tx = tx.Where("grade_record_group_id = ?", *q.GroupID)
	}
	if q.SubjectID != nil {
		tx = tx.Where("grade_record_subject_id = ?", *q.SubjectID)
	}
	if q.PeriodID != nil {
		tx = tx.Where("grade_record_period_id = ?", *q.PeriodID)
	}
	if q.StudentID != nil {
		tx = tx.Where("grade_record_student_id = ?", *q.StudentID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count grades")
	}

	var rows []gradeModel.GradeRecordModel
	if err := tx.Order("grade_record_student_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list grades")
	}

	out := make([]gradeDTO.GradeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, gradeDTO.GradeFromModel(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"grades":     out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}
