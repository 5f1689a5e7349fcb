package dto

import (
	"strings"
	"time"

	"schoolku_backend/internals/features/school/academics/periods/model"
)

type CreatePeriodRequest struct {
	AcademicPeriodName      string    `json:"academic_period_name" validate:"required,min=2,max=64"`
	AcademicPeriodOrdinal   int       `json:"academic_period_ordinal" validate:"required,gte=1,lte=12"`
	AcademicPeriodStartDate time.Time `json:"academic_period_start_date" validate:"required"`
	AcademicPeriodEndDate   time.Time `json:"academic_period_end_date" validate:"required"`
}

type UpdatePeriodRequest struct {
	AcademicPeriodName   *string `json:"academic_period_name" validate:"omitempty,min=2,max=64"`
	AcademicPeriodIsOpen *bool   `json:"academic_period_is_open"`
}

func (r *CreatePeriodRequest) ToModel(schoolID int64) *model.AcademicPeriodModel {
	return &model.AcademicPeriodModel{
		AcademicPeriodSchoolID:  schoolID,
		AcademicPeriodName:      strings.TrimSpace(r.AcademicPeriodName),
		AcademicPeriodOrdinal:   r.AcademicPeriodOrdinal,
		AcademicPeriodStartDate: r.AcademicPeriodStartDate,
		AcademicPeriodEndDate:   r.AcademicPeriodEndDate,
		AcademicPeriodIsOpen:    true,
	}
}

type PeriodResponse struct {
	AcademicPeriodID        int64     `json:"academic_period_id"`
	AcademicPeriodSchoolID  int64     `json:"academic_period_school_id"`
	AcademicPeriodName      string    `json:"academic_period_name"`
	AcademicPeriodOrdinal   int       `json:"academic_period_ordinal"`
	AcademicPeriodStartDate time.Time `json:"academic_period_start_date"`
	AcademicPeriodEndDate   time.Time `json:"academic_period_end_date"`
	AcademicPeriodIsOpen    bool      `json:"academic_period_is_open"`
}

func FromModel(m *model.AcademicPeriodModel) PeriodResponse {
	return PeriodResponse{
		AcademicPeriodID:        m.AcademicPeriodID,
		AcademicPeriodSchoolID:  m.AcademicPeriodSchoolID,
		AcademicPeriodName:      m.AcademicPeriodName,
		AcademicPeriodOrdinal:   m.AcademicPeriodOrdinal,
		AcademicPeriodStartDate: m.AcademicPeriodStartDate,
		AcademicPeriodEndDate:   m.AcademicPeriodEndDate,
		AcademicPeriodIsOpen:    m.AcademicPeriodIsOpen,
	}
}
