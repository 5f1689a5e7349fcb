package dto

import (
	"strings"

	"schoolku_backend/internals/features/school/academics/staff/model"
)

type CreateStaffRequest struct {
	StaffFullName string `json:"staff_full_name" validate:"required,min=3,max=160"`
	StaffEmail    string `json:"staff_email" validate:"required,email,max=160"`
	StaffPassword string `json:"staff_password" validate:"required,min=8,max=72"`
	StaffRole     string `json:"staff_role" validate:"omitempty,oneof=teacher coordinator admin"`
}

type UpdateStaffRequest struct {
	StaffFullName *string `json:"staff_full_name" validate:"omitempty,min=3,max=160"`
	StaffPassword *string `json:"staff_password" validate:"omitempty,min=8,max=72"`
	StaffRole     *string `json:"staff_role" validate:"omitempty,oneof=teacher coordinator admin"`
	StaffIsActive *bool   `json:"staff_is_active"`
}

func (r *CreateStaffRequest) ToModel(schoolID int64, passwordHash string) *model.StaffModel {
	role := strings.TrimSpace(r.StaffRole)
	if role == "" {
		role = "teacher"
	}
	return &model.StaffModel{
		StaffSchoolID:     schoolID,
		StaffFullName:     strings.TrimSpace(r.StaffFullName),
		StaffEmail:        strings.ToLower(strings.TrimSpace(r.StaffEmail)),
		StaffPasswordHash: passwordHash,
		StaffRole:         role,
		StaffIsActive:     true,
	}
}

type StaffResponse struct {
	StaffID       int64  `json:"staff_id"`
	StaffSchoolID int64  `json:"staff_school_id"`
	StaffFullName string `json:"staff_full_name"`
	StaffEmail    string `json:"staff_email"`
	StaffRole     string `json:"staff_role"`
	StaffIsActive bool   `json:"staff_is_active"`
}

func FromModel(m *model.StaffModel) StaffResponse {
	return StaffResponse{
		StaffID:       m.StaffID,
		StaffSchoolID: m.StaffSchoolID,
		StaffFullName: m.StaffFullName,
		StaffEmail:    m.StaffEmail,
		StaffRole:     m.StaffRole,
		StaffIsActive: m.StaffIsActive,
	}
}
