package controller

import (
	"strconv"
	"strings"

	groupDTO "schoolku_backend/internals/features/school/academics/groups/dto"
	groupModel "schoolku_backend/internals/features/school/academics/groups/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClassGroupController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassGroupController(db *gorm.DB) *ClassGroupController {
	return &ClassGroupController{DB: db, Validator: validator.New()}
}

// POST /api/a/groups
func (h *ClassGroupController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var p groupDTO.CreateClassGroupRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	m := p.ToModel(schoolID)
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create group")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Group created", groupDTO.FromModel(m))
}

// GET /api/a/groups
func (h *ClassGroupController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	tx := h.DB.WithContext(c.Context()).
		Where("class_group_school_id = ?", schoolID)
	if lv := strings.TrimSpace(c.Query("grade_level")); lv != "" {
		n, err := strconv.Atoi(lv)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "grade_level must be a number")
		}
		tx = tx.Where("class_group_grade_level = ?", n)
	}

	var rows []groupModel.ClassGroupModel
	if err := tx.Order("class_group_grade_level ASC, class_group_section ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list groups")
	}

	out := make([]groupDTO.ClassGroupResponse, 0, len(rows))
	for i := range rows {
		out = append(out, groupDTO.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// POST /api/a/groups/:id/enrollments
// Bulk-enrolls students into the group for one period. Re-enrolling an
// already enrolled student is reported per id, not silently dropped.
func (h *ClassGroupController) EnrollStudents(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	groupID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || groupID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var p groupDTO.EnrollStudentsRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(p); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.WithContext(c.Context()).Model(&groupModel.ClassGroupModel{}).
		Where("class_group_id = ? AND class_group_school_id = ?", groupID, schoolID).
		Count(&cnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check group")
	}
	if cnt == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Group not found")
	}

	enrolled := make([]int64, 0, len(p.EnrollmentStudentIDs))
	already := make([]int64, 0)

	err = h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, studentID := range p.EnrollmentStudentIDs {
			m := &groupModel.EnrollmentModel{
				EnrollmentSchoolID:  schoolID,
				EnrollmentGroupID:   groupID,
				EnrollmentPeriodID:  p.EnrollmentPeriodID,
				EnrollmentStudentID: studentID,
			}
			if err := tx.Create(m).Error; err != nil {
				s := strings.ToLower(err.Error())
				if strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") {
					already = append(already, studentID)
					continue
				}
				return err
			}
			enrolled = append(enrolled, studentID)
		}
		return nil
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to enroll students")
	}

	return helper.Success(c, "Enrollment processed", fiber.Map{
		"enrolled":         enrolled,
		"already_enrolled": already,
	})
}

// GET /api/a/groups/:id/roster?period_id=
func (h *ClassGroupController) Roster(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	groupID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || groupID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group id")
	}
	periodID, err := strconv.ParseInt(c.Query("period_id"), 10, 64)
	if err != nil || periodID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "period_id is required")
	}

	var ids []int64
	if err := h.DB.WithContext(c.Context()).Model(&groupModel.EnrollmentModel{}).
		Where("enrollment_school_id = ? AND enrollment_group_id = ? AND enrollment_period_id = ?",
			schoolID, groupID, periodID).
		Order("enrollment_student_id ASC").
		Pluck("enrollment_student_id", &ids).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch roster")
	}

	return helper.Success(c, "OK", fiber.Map{
		"group_id":    groupID,
		"period_id":   periodID,
		"student_ids": ids,
	})
}

// DELETE /api/a/groups/:id/enrollments/:student_id?period_id=
func (h *ClassGroupController) Unenroll(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	groupID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || groupID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid group id")
	}
	studentID, err := strconv.ParseInt(c.Params("student_id"), 10, 64)
	if err != nil || studentID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid student id")
	}
	periodID, err := strconv.ParseInt(c.Query("period_id"), 10, 64)
	if err != nil || periodID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "period_id is required")
	}

	res := h.DB.WithContext(c.Context()).
		Delete(&groupModel.EnrollmentModel{},
			"enrollment_school_id = ? AND enrollment_group_id = ? AND enrollment_period_id = ? AND enrollment_student_id = ?",
			schoolID, groupID, periodID, studentID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to unenroll student")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.Success(c, "Student unenrolled", nil)
}
