package controller

import (
	"errors"
	"strconv"
	"strings"

	studentDTO "schoolku_backend/internals/features/school/academics/students/dto"
	studentModel "schoolku_backend/internals/features/school/academics/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

// POST /api/a/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var p studentDTO.CreateStudentRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	m := p.ToModel(schoolID)
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.Error(c, fiber.StatusConflict, "Student code already in use")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", studentDTO.FromModel(m))
}

// GET /api/a/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var m studentModel.StudentModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "student_id = ? AND student_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.Success(c, "OK", studentDTO.FromModel(&m))
}

// GET /api/a/students
func (h *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	var q studentDTO.ListStudentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}

	tx := h.DB.WithContext(c.Context()).Model(&studentModel.StudentModel{}).
		Where("student_school_id = ?", schoolID)
	if s := strings.TrimSpace(q.Q); s != "" {
		tx = tx.Where("(student_full_name ILIKE ? OR student_code ILIKE ?)", "%"+s+"%", "%"+s+"%")
	}
	if q.IsActive != nil {
		tx = tx.Where("student_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []studentModel.StudentModel
	if err := tx.Order("student_full_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list students")
	}

	out := make([]studentDTO.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, studentDTO.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"students":   out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}

// PUT /api/a/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var p studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	var m studentModel.StudentModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "student_id = ? AND student_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	p.Apply(&m)
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.Success(c, "Student updated", studentDTO.FromModel(&m))
}

// DELETE /api/a/students/:id (soft delete)
func (h *StudentController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	if err := h.DB.WithContext(c.Context()).
		Delete(&studentModel.StudentModel{}, "student_id = ? AND student_school_id = ?", id, schoolID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.Success(c, "Student deleted", nil)
}
