package controller

import (
	"errors"
	"strconv"

	schoolDTO "schoolku_backend/internals/features/school/tenants/schools/dto"
	schoolModel "schoolku_backend/internals/features/school/tenants/schools/model"
	helper "schoolku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SchoolController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db, Validator: validator.New()}
}

// POST /api/a/schools
func (h *SchoolController) Create(c *fiber.Ctx) error {
	var p schoolDTO.CreateSchoolRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	m := p.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create school")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "School created", schoolDTO.FromModel(m))
}

// GET /api/a/schools/:id
func (h *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school id")
	}

	var m schoolModel.SchoolModel
	if err := h.DB.WithContext(c.Context()).First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}
	return helper.Success(c, "OK", schoolDTO.FromModel(&m))
}

// GET /api/a/schools
func (h *SchoolController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.WithContext(c.Context()).Model(&schoolModel.SchoolModel{})
	if q := c.Query("q"); q != "" {
		tx = tx.Where("school_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count schools")
	}

	var rows []schoolModel.SchoolModel
	if err := tx.Order("school_id ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list schools")
	}

	out := make([]schoolDTO.SchoolResponse, 0, len(rows))
	for i := range rows {
		out = append(out, schoolDTO.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"schools":    out,
		"pagination": helper.BuildPagination(paging, total, len(out)),
	})
}

// PUT /api/a/schools/:id
func (h *SchoolController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school id")
	}

	var p schoolDTO.UpdateSchoolRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	var m schoolModel.SchoolModel
	if err := h.DB.WithContext(c.Context()).First(&m, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch school")
	}

	p.Apply(&m)
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update school")
	}
	return helper.Success(c, "School updated", schoolDTO.FromModel(&m))
}

// DELETE /api/a/schools/:id (soft delete)
func (h *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid school id")
	}
	if err := h.DB.WithContext(c.Context()).Delete(&schoolModel.SchoolModel{}, "school_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete school")
	}
	return helper.Success(c, "School deleted", nil)
}
