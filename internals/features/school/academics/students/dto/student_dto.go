package dto

import (
	"strings"
	"time"

	"schoolku_backend/internals/features/school/academics/students/model"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type CreateStudentRequest struct {
	StudentCode      string     `json:"student_code" validate:"required,min=2,max=32"`
	StudentFullName  string     `json:"student_full_name" validate:"required,min=3,max=160"`
	StudentBirthDate *time.Time `json:"student_birth_date"`
}

type UpdateStudentRequest struct {
	StudentFullName  *string    `json:"student_full_name" validate:"omitempty,min=3,max=160"`
	StudentBirthDate *time.Time `json:"student_birth_date"`
	StudentIsActive  *bool      `json:"student_is_active"`
}

type ListStudentQuery struct {
	Q        string `query:"q"`
	IsActive *bool  `query:"is_active"`
}

func (r *CreateStudentRequest) ToModel(schoolID int64) *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID:  schoolID,
		StudentCode:      strings.ToUpper(strings.TrimSpace(r.StudentCode)),
		StudentFullName:  strings.TrimSpace(r.StudentFullName),
		StudentBirthDate: r.StudentBirthDate,
		StudentIsActive:  true,
	}
}

func (r *UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentFullName != nil {
		m.StudentFullName = strings.TrimSpace(*r.StudentFullName)
	}
	if r.StudentBirthDate != nil {
		m.StudentBirthDate = r.StudentBirthDate
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type StudentResponse struct {
	StudentID        int64      `json:"student_id"`
	StudentSchoolID  int64      `json:"student_school_id"`
	StudentCode      string     `json:"student_code"`
	StudentFullName  string     `json:"student_full_name"`
	StudentBirthDate *time.Time `json:"student_birth_date"`
	StudentIsActive  bool       `json:"student_is_active"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentSchoolID:  m.StudentSchoolID,
		StudentCode:      m.StudentCode,
		StudentFullName:  m.StudentFullName,
		StudentBirthDate: m.StudentBirthDate,
		StudentIsActive:  m.StudentIsActive,
	}
}
