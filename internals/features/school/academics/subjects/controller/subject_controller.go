package controller

import (
	"errors"
	"strconv"
	"strings"

	subjectDTO "schoolku_backend/internals/features/school/academics/subjects/dto"
	subjectModel "schoolku_backend/internals/features/school/academics/subjects/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validator: validator.New()}
}

// POST /api/a/subjects
func (h *SubjectController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var p subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	// code unique per school (alive rows)
	var cnt int64
	if err := h.DB.WithContext(c.Context()).Model(&subjectModel.SubjectModel{}).
		Where("subject_school_id = ? AND lower(subject_code) = lower(?)", schoolID, strings.TrimSpace(p.SubjectCode)).
		Count(&cnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check code uniqueness")
	}
	if cnt > 0 {
		return helper.Error(c, fiber.StatusConflict, "Subject code already in use")
	}

	m := p.ToModel(schoolID)
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject created", subjectDTO.FromModel(m))
}

// GET /api/a/subjects
func (h *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).
		Where("subject_school_id = ?", schoolID).
		Order("subject_code ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list subjects")
	}

	out := make([]subjectDTO.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, subjectDTO.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// PUT /api/a/subjects/:id
func (h *SubjectController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var p subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	var m subjectModel.SubjectModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "subject_id = ? AND subject_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	if p.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*p.SubjectName)
	}
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.Success(c, "Subject updated", subjectDTO.FromModel(&m))
}

// DELETE /api/a/subjects/:id (soft delete)
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	if err := h.DB.WithContext(c.Context()).
		Delete(&subjectModel.SubjectModel{}, "subject_id = ? AND subject_school_id = ?", id, schoolID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	return helper.Success(c, "Subject deleted", nil)
}
