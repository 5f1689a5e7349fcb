package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/grading/grades/model"
)

// BatchCommitter executes a resolution plan inside one transaction. It owns
// the transaction boundary exclusively: grade rows are only ever written
// here during a batch operation.
//
// Per-line problems (policy blocks, plan errors, insert races) accumulate
// into the BatchResult and never abort sibling lines. Anything the
// classifier cannot attribute to the tuple uniqueness race rolls the whole
// transaction back and surfaces as *PersistenceError.
type BatchCommitter struct {
	Store      GradeStore
	Classifier ConflictClassifier
}

func NewBatchCommitter(store GradeStore, classifier ConflictClassifier) *BatchCommitter {
	return &BatchCommitter{Store: store, Classifier: classifier}
}

func (bc *BatchCommitter) Commit(ctx context.Context, plan ResolutionPlan, correlationID uuid.UUID) (BatchResult, error) {
	req := plan.Request
	res := newBatchResult(correlationID, len(plan.Lines))

	err := bc.Store.WithinTx(ctx, func(tx GradeTxStore) error {
		for _, line := range plan.Lines {
			switch line.Action {
			case ActionInsert:
				rec := &model.GradeRecordModel{
					GradeRecordSchoolID:          req.SchoolID,
					GradeRecordStudentID:         line.StudentID,
					GradeRecordSubjectID:         req.SubjectID,
					GradeRecordGroupID:           req.GroupID,
					GradeRecordPeriodID:          req.PeriodID,
					GradeRecordNumeric:           line.Grade,
					GradeRecordEvaluationType:    evaluationType(req),
					GradeRecordNotes:             line.Notes,
					GradeRecordCapturedByStaffID: req.CapturedByStaffID,
				}
				if err := tx.Insert(ctx, rec); err != nil {
					if bc.Classifier.IsUniqueViolation(err) {
						// Another writer inserted the tuple after the plan
						// was computed. The caller re-fetches and decides.
						log.Printf("[GRADES] capture conflict correlation_id=%s school=%d group=%d student=%d",
							correlationID, req.SchoolID, req.GroupID, line.StudentID)
						res.add(line.StudentID, OutcomeBlockedByConflict, ReasonConcurrentCapture)
						continue
					}
					return err
				}
				res.add(line.StudentID, OutcomeInserted, "")

			case ActionUpdateAllowed:
				cur, err := tx.FindForUpdate(ctx, req.SchoolID, line.StudentID, req.SubjectID, req.GroupID, req.PeriodID)
				if err != nil {
					return err
				}
				if cur == nil {
					// The row the plan saw is gone. Outside this subsystem's
					// lifecycle; report the line, let the caller resubmit.
					res.add(line.StudentID, OutcomeFailed, "existing grade no longer present")
					continue
				}

				before := *cur
				cur.GradeRecordNumeric = line.Grade
				if line.Notes != nil {
					cur.GradeRecordNotes = line.Notes
				}
				cur.GradeRecordCapturedByStaffID = req.CapturedByStaffID

				if err := tx.Update(ctx, cur); err != nil {
					return err
				}

				audit, err := buildAudit(req, &before, cur, correlationID)
				if err != nil {
					return err
				}
				if err := tx.InsertAudit(ctx, audit); err != nil {
					return err
				}
				res.add(line.StudentID, OutcomeUpdated, "")

			case ActionUpdateBlocked:
				res.add(line.StudentID, OutcomeBlockedByPolicy, line.Reason)

			case ActionError:
				res.add(line.StudentID, OutcomeFailed, line.Reason)
			}
		}
		return nil
	})
	if err != nil {
		return BatchResult{}, &PersistenceError{CorrelationID: correlationID, Err: err}
	}
	return res, nil
}

func evaluationType(req BatchRequest) string {
	if req.EvaluationType != "" {
		return req.EvaluationType
	}
	return "regular"
}

// buildAudit freezes the before/after pair. The audit row rides the same
// transaction as the update: neither ever exists without the other.
func buildAudit(req BatchRequest, before, after *model.GradeRecordModel, correlationID uuid.UUID) (*model.GradeAuditModel, error) {
	snapshot, err := json.Marshal(map[string]interface{}{
		"before": before,
		"after":  after,
	})
	if err != nil {
		return nil, err
	}

	return &model.GradeAuditModel{
		GradeAuditSchoolID:           req.SchoolID,
		GradeAuditGradeRecordID:      after.GradeRecordID,
		GradeAuditStudentID:          after.GradeRecordStudentID,
		GradeAuditSubjectID:          req.SubjectID,
		GradeAuditGroupID:            req.GroupID,
		GradeAuditPeriodID:           req.PeriodID,
		GradeAuditPreviousGrade:      before.GradeRecordNumeric,
		GradeAuditNewGrade:           after.GradeRecordNumeric,
		GradeAuditPreviousNotes:      before.GradeRecordNotes,
		GradeAuditNewNotes:           after.GradeRecordNotes,
		GradeAuditSnapshot:           datatypes.JSON(snapshot),
		GradeAuditReason:             req.Reason,
		GradeAuditPerformedByStaffID: req.CapturedByStaffID,
		GradeAuditCorrelationID:      correlationID,
	}, nil
}
