package controller

import (
	"errors"
	"strconv"
	"strings"

	periodDTO "schoolku_backend/internals/features/school/academics/periods/dto"
	periodModel "schoolku_backend/internals/features/school/academics/periods/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPeriodController(db *gorm.DB) *PeriodController {
	return &PeriodController{DB: db, Validator: validator.New()}
}

// POST /api/a/periods
func (h *PeriodController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var p periodDTO.CreatePeriodRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}
	if !p.AcademicPeriodEndDate.After(p.AcademicPeriodStartDate) {
		return helper.Error(c, fiber.StatusBadRequest, "end_date must be after start_date")
	}

	m := p.ToModel(schoolID)
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create period")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Period created", periodDTO.FromModel(m))
}

// GET /api/a/periods
func (h *PeriodController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []periodModel.AcademicPeriodModel
	if err := h.DB.WithContext(c.Context()).
		Where("academic_period_school_id = ?", schoolID).
		Order("academic_period_ordinal ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list periods")
	}

	out := make([]periodDTO.PeriodResponse, 0, len(rows))
	for i := range rows {
		out = append(out, periodDTO.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// PUT /api/a/periods/:id — rename or open/close the capture window
func (h *PeriodController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid period id")
	}

	var p periodDTO.UpdatePeriodRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	var m periodModel.AcademicPeriodModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "academic_period_id = ? AND academic_period_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Period not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch period")
	}

	if p.AcademicPeriodName != nil {
		m.AcademicPeriodName = strings.TrimSpace(*p.AcademicPeriodName)
	}
	if p.AcademicPeriodIsOpen != nil {
		m.AcademicPeriodIsOpen = *p.AcademicPeriodIsOpen
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update period")
	}
	return helper.Success(c, "Period updated", periodDTO.FromModel(&m))
}
