package dto

import (
	"strings"
	"time"

	"schoolku_backend/internals/features/school/tenants/schools/model"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type CreateSchoolRequest struct {
	SchoolName     string `json:"school_name" validate:"required,min=3,max=160"`
	SchoolCode     string `json:"school_code" validate:"required,min=2,max=32"`
	SchoolTimezone string `json:"school_timezone" validate:"omitempty,max=64"`
}

type UpdateSchoolRequest struct {
	SchoolName     *string `json:"school_name" validate:"omitempty,min=3,max=160"`
	SchoolTimezone *string `json:"school_timezone" validate:"omitempty,max=64"`
	SchoolIsActive *bool   `json:"school_is_active"`
}

func (r *CreateSchoolRequest) Normalize() {
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.SchoolCode = strings.ToUpper(strings.TrimSpace(r.SchoolCode))
}

func (r *CreateSchoolRequest) ToModel() *model.SchoolModel {
	m := &model.SchoolModel{
		SchoolName:     r.SchoolName,
		SchoolCode:     r.SchoolCode,
		SchoolIsActive: true,
	}
	if tz := strings.TrimSpace(r.SchoolTimezone); tz != "" {
		m.SchoolTimezone = tz
	}
	return m
}

func (r *UpdateSchoolRequest) Apply(m *model.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = strings.TrimSpace(*r.SchoolName)
	}
	if r.SchoolTimezone != nil {
		m.SchoolTimezone = strings.TrimSpace(*r.SchoolTimezone)
	}
	if r.SchoolIsActive != nil {
		m.SchoolIsActive = *r.SchoolIsActive
	}
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type SchoolResponse struct {
	SchoolID        int64     `json:"school_id"`
	SchoolName      string    `json:"school_name"`
	SchoolCode      string    `json:"school_code"`
	SchoolTimezone  string    `json:"school_timezone"`
	SchoolIsActive  bool      `json:"school_is_active"`
	SchoolCreatedAt time.Time `json:"school_created_at"`
}

func FromModel(m *model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:        m.SchoolID,
		SchoolName:      m.SchoolName,
		SchoolCode:      m.SchoolCode,
		SchoolTimezone:  m.SchoolTimezone,
		SchoolIsActive:  m.SchoolIsActive,
		SchoolCreatedAt: m.SchoolCreatedAt,
	}
}
