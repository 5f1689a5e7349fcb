package dto

import (
	"strings"

	"schoolku_backend/internals/features/school/academics/groups/model"
)

type CreateClassGroupRequest struct {
	ClassGroupGradeLevel int    `json:"class_group_grade_level" validate:"required,gte=1,lte=12"`
	ClassGroupSection    string `json:"class_group_section" validate:"required,min=1,max=8"`
	ClassGroupStaffID    *int64 `json:"class_group_staff_id"`
}

type EnrollStudentsRequest struct {
	EnrollmentPeriodID   int64   `json:"enrollment_period_id" validate:"required,gt=0"`
	EnrollmentStudentIDs []int64 `json:"enrollment_student_ids" validate:"required,min=1,dive,gt=0"`
}

func (r *CreateClassGroupRequest) ToModel(schoolID int64) *model.ClassGroupModel {
	return &model.ClassGroupModel{
		ClassGroupSchoolID:   schoolID,
		ClassGroupGradeLevel: r.ClassGroupGradeLevel,
		ClassGroupSection:    strings.ToUpper(strings.TrimSpace(r.ClassGroupSection)),
		ClassGroupStaffID:    r.ClassGroupStaffID,
	}
}

type ClassGroupResponse struct {
	ClassGroupID         int64  `json:"class_group_id"`
	ClassGroupSchoolID   int64  `json:"class_group_school_id"`
	ClassGroupGradeLevel int    `json:"class_group_grade_level"`
	ClassGroupSection    string `json:"class_group_section"`
	ClassGroupStaffID    *int64 `json:"class_group_staff_id"`
}

func FromModel(m *model.ClassGroupModel) ClassGroupResponse {
	return ClassGroupResponse{
		ClassGroupID:         m.ClassGroupID,
		ClassGroupSchoolID:   m.ClassGroupSchoolID,
		ClassGroupGradeLevel: m.ClassGroupGradeLevel,
		ClassGroupSection:    m.ClassGroupSection,
		ClassGroupStaffID:    m.ClassGroupStaffID,
	}
}
