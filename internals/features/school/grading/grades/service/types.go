package service

import (
	"fmt"

	"github.com/google/uuid"
)

/* =========================================================
   Line states: Plan phase → Commit phase
   ========================================================= */

// LineAction is the planner's classification of one batch line.
type LineAction string

const (
	ActionInsert        LineAction = "insert"
	ActionUpdateAllowed LineAction = "update_allowed"
	ActionUpdateBlocked LineAction = "update_blocked"
	ActionError         LineAction = "error"
)

// LineOutcome is what actually happened at commit time. An Insert or
// UpdateAllowed line can still end up BlockedByConflict when another writer
// won the insert race after the plan was computed; UpdateBlocked and Error
// lines are terminal from the plan itself.
type LineOutcome string

const (
	OutcomeInserted          LineOutcome = "inserted"
	OutcomeUpdated           LineOutcome = "updated"
	OutcomeBlockedByPolicy   LineOutcome = "blocked_by_policy"
	OutcomeBlockedByConflict LineOutcome = "blocked_by_conflict"
	OutcomeFailed            LineOutcome = "failed"
)

// Reasons echoed back per line.
const (
	ReasonAlreadyCaptured   = "grade already captured"
	ReasonReasonRequired    = "recalibration reason required"
	ReasonGradeOutOfRange   = "grade outside the valid range"
	ReasonNotInRoster       = "student not enrolled in target group"
	ReasonDuplicateInBatch  = "duplicate student in batch"
	ReasonConcurrentCapture = "grade captured concurrently by another writer"
)

/* =========================================================
   Batch input
   ========================================================= */

type BatchItem struct {
	StudentID    int64
	NumericGrade float64
	Notes        *string
}

// BatchRequest is one teacher's submission for a whole roster
// (group × subject × period). All scoping ids arrive explicitly; the core
// never reads ambient request state.
type BatchRequest struct {
	SchoolID          int64
	GroupID           int64
	SubjectID         int64
	PeriodID          int64
	CapturedByStaffID int64
	EvaluationType    string

	// Recalibration authorization: overwriting an already-captured grade
	// requires both the flag and a substantive reason.
	PermitRecalibration bool
	Reason              string

	Items []BatchItem
}

// ExistingGrade is the planner's view of an already-captured grade.
type ExistingGrade struct {
	GradeRecordID int64
	NumericGrade  float64
	Notes         *string
}

/* =========================================================
   Plan
   ========================================================= */

type LineDecision struct {
	StudentID int64
	Action    LineAction
	Grade     float64
	Notes     *string
	Existing  *ExistingGrade
	Reason    string
}

// ResolutionPlan is a pure data transformation of the request against a
// roster snapshot: no side effects, safe to recompute, and directly
// servable as a dry-run preview.
type ResolutionPlan struct {
	Request BatchRequest
	Lines   []LineDecision
}

/* =========================================================
   Result
   ========================================================= */

type LineResult struct {
	StudentID int64       `json:"student_id"`
	Outcome   LineOutcome `json:"outcome"`
	Reason    string      `json:"reason,omitempty"`
}

// BatchResult reflects what actually happened at commit time, which can
// differ from the plan when conflicts are detected mid-commit.
type BatchResult struct {
	CorrelationID uuid.UUID    `json:"correlation_id"`
	Lines         []LineResult `json:"lines"`

	Inserted        int `json:"inserted"`
	Updated         int `json:"updated"`
	BlockedExisting int `json:"blocked_existing"`
	Conflicted      int `json:"conflicted"`
	Errored         int `json:"errored"`

	InsertedStudentIDs   []int64 `json:"inserted_student_ids"`
	UpdatedStudentIDs    []int64 `json:"updated_student_ids"`
	BlockedStudentIDs    []int64 `json:"blocked_student_ids"`
	ConflictedStudentIDs []int64 `json:"conflicted_student_ids"`
	ErroredStudentIDs    []int64 `json:"errored_student_ids"`
}

func newBatchResult(correlationID uuid.UUID, capacity int) BatchResult {
	return BatchResult{
		CorrelationID:        correlationID,
		Lines:                make([]LineResult, 0, capacity),
		InsertedStudentIDs:   []int64{},
		UpdatedStudentIDs:    []int64{},
		BlockedStudentIDs:    []int64{},
		ConflictedStudentIDs: []int64{},
		ErroredStudentIDs:    []int64{},
	}
}

func (r *BatchResult) add(studentID int64, outcome LineOutcome, reason string) {
	r.Lines = append(r.Lines, LineResult{StudentID: studentID, Outcome: outcome, Reason: reason})
	switch outcome {
	case OutcomeInserted:
		r.Inserted++
		r.InsertedStudentIDs = append(r.InsertedStudentIDs, studentID)
	case OutcomeUpdated:
		r.Updated++
		r.UpdatedStudentIDs = append(r.UpdatedStudentIDs, studentID)
	case OutcomeBlockedByPolicy:
		r.BlockedExisting++
		r.BlockedStudentIDs = append(r.BlockedStudentIDs, studentID)
	case OutcomeBlockedByConflict:
		r.Conflicted++
		r.ConflictedStudentIDs = append(r.ConflictedStudentIDs, studentID)
	case OutcomeFailed:
		r.Errored++
		r.ErroredStudentIDs = append(r.ErroredStudentIDs, studentID)
	}
}

/* =========================================================
   Errors
   ========================================================= */

// PersistenceError means the transaction was rolled back as a whole and the
// caller must resubmit the batch. Line-level problems never surface as this;
// they are carried inside BatchResult.
type PersistenceError struct {
	CorrelationID uuid.UUID
	Err           error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("grade batch aborted (correlation_id=%s): %v", e.CorrelationID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
