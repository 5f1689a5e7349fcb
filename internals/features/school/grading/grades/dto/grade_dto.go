package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/grading/grades/model"
)

/* =========================================================
   Single capture
   ========================================================= */

// CreateGradeRequest captures one student's grade. Internally it runs the
// same plan/commit path as a batch of one, so policy, roster and conflict
// rules apply identically.
type CreateGradeRequest struct {
	StudentID      int64   `json:"student_id" validate:"required,gt=0"`
	GroupID        int64   `json:"group_id" validate:"required,gt=0"`
	SubjectID      int64   `json:"subject_id" validate:"required,gt=0"`
	PeriodID       int64   `json:"period_id" validate:"required,gt=0"`
	NumericGrade   float64 `json:"numeric_grade" validate:"gte=0,lte=10"`
	EvaluationType string  `json:"evaluation_type" validate:"omitempty,oneof=regular exam task recovery"`
	Notes          *string `json:"notes" validate:"omitempty,max=2000"`

	PermitRecalibration bool   `json:"permit_recalibration"`
	Reason              string `json:"reason" validate:"omitempty,max=2000"`
}

func (r *CreateGradeRequest) ToBatch() BatchGradeRequest {
	return BatchGradeRequest{
		GroupID:             r.GroupID,
		SubjectID:           r.SubjectID,
		PeriodID:            r.PeriodID,
		EvaluationType:      r.EvaluationType,
		PermitRecalibration: r.PermitRecalibration,
		Reason:              r.Reason,
		Items: []BatchGradeItem{{
			StudentID:    r.StudentID,
			NumericGrade: r.NumericGrade,
			Notes:        r.Notes,
		}},
	}
}

type ListGradeQuery struct {
	GroupID   *int64 `query:"group_id"`
	SubjectID *int64 `query:"subject_id"`
	PeriodID  *int64 `query:"period_id"`
	StudentID *int64 `query:"student_id"`
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type GradeResponse struct {
	GradeRecordID     int64     `json:"grade_record_id"`
	StudentID         int64     `json:"student_id"`
	SubjectID         int64     `json:"subject_id"`
	GroupID           int64     `json:"group_id"`
	PeriodID          int64     `json:"period_id"`
	NumericGrade      float64   `json:"numeric_grade"`
	EvaluationType    string    `json:"evaluation_type"`
	Weight            *float64  `json:"weight"`
	Notes             *string   `json:"notes"`
	CapturedByStaffID int64     `json:"captured_by_staff_id"`
	CapturedAt        time.Time `json:"captured_at"`
}

func GradeFromModel(m *model.GradeRecordModel) GradeResponse {
	return GradeResponse{
		GradeRecordID:     m.GradeRecordID,
		StudentID:         m.GradeRecordStudentID,
		SubjectID:         m.GradeRecordSubjectID,
		GroupID:           m.GradeRecordGroupID,
		PeriodID:          m.GradeRecordPeriodID,
		NumericGrade:      m.GradeRecordNumeric,
		EvaluationType:    m.GradeRecordEvaluationType,
		Weight:            m.GradeRecordWeight,
		Notes:             m.GradeRecordNotes,
		CapturedByStaffID: m.GradeRecordCapturedByStaffID,
		CapturedAt:        m.GradeRecordCapturedAt,
	}
}

type AuditEntryResponse struct {
	GradeAuditID       int64     `json:"grade_audit_id"`
	GradeRecordID      int64     `json:"grade_record_id"`
	StudentID          int64     `json:"student_id"`
	SubjectID          int64     `json:"subject_id"`
	GroupID            int64     `json:"group_id"`
	PeriodID           int64     `json:"period_id"`
	PreviousGrade      float64   `json:"previous_grade"`
	NewGrade           float64   `json:"new_grade"`
	PreviousNotes      *string   `json:"previous_notes"`
	NewNotes           *string   `json:"new_notes"`
	Reason             string    `json:"reason"`
	PerformedByStaffID int64     `json:"performed_by_staff_id"`
	PerformedAt        time.Time `json:"performed_at"`
	CorrelationID      uuid.UUID `json:"correlation_id"`
}

func AuditFromModel(m *model.GradeAuditModel) AuditEntryResponse {
	return AuditEntryResponse{
		GradeAuditID:       m.GradeAuditID,
		GradeRecordID:      m.GradeAuditGradeRecordID,
		StudentID:          m.GradeAuditStudentID,
		SubjectID:          m.GradeAuditSubjectID,
		GroupID:            m.GradeAuditGroupID,
		PeriodID:           m.GradeAuditPeriodID,
		PreviousGrade:      m.GradeAuditPreviousGrade,
		NewGrade:           m.GradeAuditNewGrade,
		PreviousNotes:      m.GradeAuditPreviousNotes,
		NewNotes:           m.GradeAuditNewNotes,
		Reason:             m.GradeAuditReason,
		PerformedByStaffID: m.GradeAuditPerformedByStaffID,
		PerformedAt:        m.GradeAuditPerformedAt,
		CorrelationID:      m.GradeAuditCorrelationID,
	}
}
