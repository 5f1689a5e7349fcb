package dto

import (
	"strings"

	"schoolku_backend/internals/features/school/grading/grades/service"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type BatchGradeItem struct {
	StudentID    int64   `json:"student_id" validate:"required,gt=0"`
	NumericGrade float64 `json:"numeric_grade" validate:"gte=0,lte=10"`
	Notes        *string `json:"notes" validate:"omitempty,max=2000"`
}

// BatchGradeRequest is the wire shape of one roster submission. School and
// staff scoping come from the token, never from the body.
type BatchGradeRequest struct {
	GroupID        int64  `json:"group_id" validate:"required,gt=0"`
	SubjectID      int64  `json:"subject_id" validate:"required,gt=0"`
	PeriodID       int64  `json:"period_id" validate:"required,gt=0"`
	EvaluationType string `json:"evaluation_type" validate:"omitempty,oneof=regular exam task recovery"`

	PermitRecalibration bool   `json:"permit_recalibration"`
	Reason              string `json:"reason" validate:"omitempty,max=2000"`

	Items []BatchGradeItem `json:"items" validate:"required,min=1,max=200,dive"`
}

func (r *BatchGradeRequest) ToDomain(schoolID, staffID int64) service.BatchRequest {
	items := make([]service.BatchItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.BatchItem{
			StudentID:    it.StudentID,
			NumericGrade: it.NumericGrade,
			Notes:        it.Notes,
		})
	}
	return service.BatchRequest{
		SchoolID:            schoolID,
		GroupID:             r.GroupID,
		SubjectID:           r.SubjectID,
		PeriodID:            r.PeriodID,
		CapturedByStaffID:   staffID,
		EvaluationType:      strings.TrimSpace(r.EvaluationType),
		PermitRecalibration: r.PermitRecalibration,
		Reason:              strings.TrimSpace(r.Reason),
		Items:               items,
	}
}

/* =========================================================
   RESPONSE DTO (preview)
   ========================================================= */

type PlanLineResponse struct {
	StudentID     int64    `json:"student_id"`
	Action        string   `json:"action"`
	NumericGrade  float64  `json:"numeric_grade"`
	ExistingGrade *float64 `json:"existing_grade,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

type PlanResponse struct {
	GroupID   int64              `json:"group_id"`
	SubjectID int64              `json:"subject_id"`
	PeriodID  int64              `json:"period_id"`
	Lines     []PlanLineResponse `json:"lines"`

	WouldInsert int `json:"would_insert"`
	WouldUpdate int `json:"would_update"`
	Blocked     int `json:"blocked"`
	Errored     int `json:"errored"`
}

func FromPlan(plan service.ResolutionPlan) PlanResponse {
	out := PlanResponse{
		GroupID:   plan.Request.GroupID,
		SubjectID: plan.Request.SubjectID,
		PeriodID:  plan.Request.PeriodID,
		Lines:     make([]PlanLineResponse, 0, len(plan.Lines)),
	}
	for _, line := range plan.Lines {
		lr := PlanLineResponse{
			StudentID:    line.StudentID,
			Action:       string(line.Action),
			NumericGrade: line.Grade,
			Reason:       line.Reason,
		}
		if line.Existing != nil {
			g := line.Existing.NumericGrade
			lr.ExistingGrade = &g
		}
		out.Lines = append(out.Lines, lr)

		switch line.Action {
		case service.ActionInsert:
			out.WouldInsert++
		case service.ActionUpdateAllowed:
			out.WouldUpdate++
		case service.ActionUpdateBlocked:
			out.Blocked++
		case service.ActionError:
			out.Errored++
		}
	}
	return out
}
