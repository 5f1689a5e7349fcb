package controller

import (
	"errors"
	"strconv"
	"strings"

	staffDTO "schoolku_backend/internals/features/school/academics/staff/dto"
	staffModel "schoolku_backend/internals/features/school/academics/staff/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StaffController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db, Validator: validator.New()}
}

// POST /api/a/staff
func (h *StaffController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var p staffDTO.CreateStaffRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.StaffPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := p.ToModel(schoolID, string(hash))
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if s := strings.ToLower(err.Error()); strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") {
			return helper.Error(c, fiber.StatusConflict, "Email already registered for this school")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create staff")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Staff created", staffDTO.FromModel(m))
}

// GET /api/a/staff
func (h *StaffController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.WithContext(c.Context()).Model(&staffModel.StaffModel{}).
		Where("staff_school_id = ?", schoolID)
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("staff_role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count staff")
	}

	var rows []staffModel.StaffModel
	if err := tx.Order("staff_full_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list staff")
	}

	out := make([]staffDTO.StaffResponse, 0, len(rows))
	for i := range rows {
		out = append(out, staffDTO.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"staff":      out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}

// PUT /api/a/staff/:id
func (h *StaffController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	var p staffDTO.UpdateStaffRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	var m staffModel.StaffModel
	if err := h.DB.WithContext(c.Context()).
		First(&m, "staff_id = ? AND staff_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Staff not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch staff")
	}

	if p.StaffFullName != nil {
		m.StaffFullName = strings.TrimSpace(*p.StaffFullName)
	}
	if p.StaffRole != nil {
		m.StaffRole = *p.StaffRole
	}
	if p.StaffIsActive != nil {
		m.StaffIsActive = *p.StaffIsActive
	}
	if p.StaffPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*p.StaffPassword), bcrypt.DefaultCost)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		m.StaffPasswordHash = string(hash)
	}

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update staff")
	}
	return helper.Success(c, "Staff updated", staffDTO.FromModel(&m))
}

// DELETE /api/a/staff/:id (soft delete)
func (h *StaffController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid staff id")
	}
	if err := h.DB.WithContext(c.Context()).
		Delete(&staffModel.StaffModel{}, "staff_id = ? AND staff_school_id = ?", id, schoolID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete staff")
	}
	return helper.Success(c, "Staff deleted", nil)
}
