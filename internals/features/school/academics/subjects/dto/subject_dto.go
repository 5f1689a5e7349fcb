package dto

import (
	"strings"

	"schoolku_backend/internals/features/school/academics/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectCode string `json:"subject_code" validate:"required,min=2,max=32"`
	SubjectName string `json:"subject_name" validate:"required,min=2,max=120"`
}

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subject_name" validate:"omitempty,min=2,max=120"`
}

func (r *CreateSubjectRequest) ToModel(schoolID int64) *model.SubjectModel {
	return &model.SubjectModel{
		SubjectSchoolID: schoolID,
		SubjectCode:     strings.ToUpper(strings.TrimSpace(r.SubjectCode)),
		SubjectName:     strings.TrimSpace(r.SubjectName),
	}
}

type SubjectResponse struct {
	SubjectID       int64  `json:"subject_id"`
	SubjectSchoolID int64  `json:"subject_school_id"`
	SubjectCode     string `json:"subject_code"`
	SubjectName     string `json:"subject_name"`
}

func FromModel(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:       m.SubjectID,
		SubjectSchoolID: m.SubjectSchoolID,
		SubjectCode:     m.SubjectCode,
		SubjectName:     m.SubjectName,
	}
}
