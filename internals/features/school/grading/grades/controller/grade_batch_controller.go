package controller

import (
	"errors"
	"log"

	gradeDTO "schoolku_backend/internals/features/school/grading/grades/dto"
	"schoolku_backend/internals/features/school/grading/grades/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GradeBatchController struct {
	Capture   *service.GradeCaptureService
	Validator *validator.Validate
}

func NewGradeBatchController(db *gorm.DB) *GradeBatchController {
	return &GradeBatchController{
		Capture:   service.NewGradeCaptureService(db),
		Validator: validator.New(),
	}
}

// POST /api/a/grades/batch/preview
// Dry run: shows the teacher what would happen, writes nothing.
func (h *GradeBatchController) Preview(c *fiber.Ctx) error {
	req, err := h.parseBatch(c)
	if req == nil {
		return err
	}

	plan, err := h.Capture.Preview(c.Context(), *req)
	if err != nil {
		if errors.Is(err, service.ErrPeriodClosed) {
			return helper.Error(c, fiber.StatusConflict, "Evaluation period is closed")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute preview")
	}
	return helper.Success(c, "Preview computed", gradeDTO.FromPlan(plan))
}

// POST /api/a/grades/batch
func (h *GradeBatchController) Submit(c *fiber.Ctx) error {
	req, err := h.parseBatch(c)
	if req == nil {
		return err
	}

	correlationID := helper.CorrelationID(c)
	result, err := h.Capture.Submit(c.Context(), *req, correlationID)
	if err != nil {
		if errors.Is(err, service.ErrPeriodClosed) {
			return helper.Error(c, fiber.StatusConflict, "Evaluation period is closed")
		}
		var pe *service.PersistenceError
		if errors.As(err, &pe) {
			log.Printf("[GRADES] batch rolled back correlation_id=%s: %v", pe.CorrelationID, pe.Err)
			return helper.Error(c, fiber.StatusInternalServerError,
				"Grade batch failed and was rolled back, resubmit the whole batch")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to submit batch")
	}
	return helper.Success(c, "Batch processed", result)
}

// parseBatch returns nil when the response has already been written.
func (h *GradeBatchController) parseBatch(c *fiber.Ctx) (*service.BatchRequest, error) {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return nil, helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return nil, helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var p gradeDTO.BatchGradeRequest
	if err := c.BodyParser(&p); err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return nil, helper.ValidationError(c, err)
	}

	req := p.ToDomain(schoolID, staffID)
	return &req, nil
}
