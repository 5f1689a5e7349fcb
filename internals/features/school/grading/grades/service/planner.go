package service

import (
	"strings"

	"schoolku_backend/internals/constants"
)

// Planner classifies every line of a batch against a roster snapshot without
// touching the database. Deterministic: same snapshot + same request always
// yields the same plan, which is what makes the preview endpoint safe to
// call repeatedly.
type Planner struct {
	GradeMin     float64
	GradeMax     float64
	ReasonMinLen int
}

func NewPlanner() *Planner {
	return &Planner{
		GradeMin:     constants.GradeMin,
		GradeMax:     constants.GradeMax,
		ReasonMinLen: constants.RecalibrationReasonMinLen,
	}
}

// Plan walks the items in submission order. Lines that would corrupt data
// (out of range, off roster, duplicated in the batch) are classified Error
// and never reach the committer; lines with an existing grade are only
// UpdateAllowed when the request carries an explicit recalibration flag plus
// a substantive reason.
func (p *Planner) Plan(roster map[int64]struct{}, existing map[int64]ExistingGrade, req BatchRequest) ResolutionPlan {
	plan := ResolutionPlan{
		Request: req,
		Lines:   make([]LineDecision, 0, len(req.Items)),
	}

	reasonOK := len(strings.TrimSpace(req.Reason)) >= p.ReasonMinLen
	seen := make(map[int64]struct{}, len(req.Items))

	for _, item := range req.Items {
		line := LineDecision{
			StudentID: item.StudentID,
			Grade:     item.NumericGrade,
			Notes:     item.Notes,
		}

		if _, dup := seen[item.StudentID]; dup {
			line.Action = ActionError
			line.Reason = ReasonDuplicateInBatch
			plan.Lines = append(plan.Lines, line)
			continue
		}
		seen[item.StudentID] = struct{}{}

		if item.NumericGrade < p.GradeMin || item.NumericGrade > p.GradeMax {
			line.Action = ActionError
			line.Reason = ReasonGradeOutOfRange
			plan.Lines = append(plan.Lines, line)
			continue
		}

		if _, ok := roster[item.StudentID]; !ok {
			line.Action = ActionError
			line.Reason = ReasonNotInRoster
			plan.Lines = append(plan.Lines, line)
			continue
		}

		prev, hasGrade := existing[item.StudentID]
		if !hasGrade {
			line.Action = ActionInsert
			plan.Lines = append(plan.Lines, line)
			continue
		}
		line.Existing = &ExistingGrade{
			GradeRecordID: prev.GradeRecordID,
			NumericGrade:  prev.NumericGrade,
			Notes:         prev.Notes,
		}

		switch {
		case !req.PermitRecalibration:
			line.Action = ActionUpdateBlocked
			line.Reason = ReasonAlreadyCaptured
		case !reasonOK:
			line.Action = ActionError
			line.Reason = ReasonReasonRequired
		default:
			line.Action = ActionUpdateAllowed
		}
		plan.Lines = append(plan.Lines, line)
	}

	return plan
}
