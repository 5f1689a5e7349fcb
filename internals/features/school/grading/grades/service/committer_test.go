package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"schoolku_backend/internals/features/school/grading/grades/model"
)

/* =========================================================
   In-memory store with transactional rollback semantics
   ========================================================= */

type fakeGradeStore struct {
	records map[int64]model.GradeRecordModel // keyed by student id
	audits  []model.GradeAuditModel
	nextID  int64

	insertErrFor map[int64]error // injected failures per student
	auditErr     error
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{
		records:      map[int64]model.GradeRecordModel{},
		insertErrFor: map[int64]error{},
		nextID:       1000,
	}
}

func duplicateTupleErr() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: model.UniqueTupleConstraint}
}

func (f *fakeGradeStore) seed(studentID int64, grade float64, notes *string) {
	f.nextID++
	f.records[studentID] = model.GradeRecordModel{
		GradeRecordID:        f.nextID,
		GradeRecordSchoolID:  1,
		GradeRecordStudentID: studentID,
		GradeRecordSubjectID: 20,
		GradeRecordGroupID:   10,
		GradeRecordPeriodID:  30,
		GradeRecordNumeric:   grade,
		GradeRecordNotes:     notes,
	}
}

func (f *fakeGradeStore) ExistingGrades(ctx context.Context, schoolID, groupID, subjectID, periodID int64) (map[int64]ExistingGrade, error) {
	out := make(map[int64]ExistingGrade, len(f.records))
	for studentID, rec := range f.records {
		out[studentID] = ExistingGrade{
			GradeRecordID: rec.GradeRecordID,
			NumericGrade:  rec.GradeRecordNumeric,
			Notes:         rec.GradeRecordNotes,
		}
	}
	return out, nil
}

func (f *fakeGradeStore) WithinTx(ctx context.Context, fn func(tx GradeTxStore) error) error {
	recordsBak := make(map[int64]model.GradeRecordModel, len(f.records))
	for k, v := range f.records {
		recordsBak[k] = v
	}
	auditsBak := append([]model.GradeAuditModel(nil), f.audits...)
	idBak := f.nextID

	if err := fn(f); err != nil {
		f.records = recordsBak
		f.audits = auditsBak
		f.nextID = idBak
		return err
	}
	return nil
}

func (f *fakeGradeStore) Insert(ctx context.Context, rec *model.GradeRecordModel) error {
	if err, ok := f.insertErrFor[rec.GradeRecordStudentID]; ok {
		return err
	}
	if _, exists := f.records[rec.GradeRecordStudentID]; exists {
		return duplicateTupleErr()
	}
	f.nextID++
	rec.GradeRecordID = f.nextID
	f.records[rec.GradeRecordStudentID] = *rec
	return nil
}

func (f *fakeGradeStore) FindForUpdate(ctx context.Context, schoolID, studentID, subjectID, groupID, periodID int64) (*model.GradeRecordModel, error) {
	rec, ok := f.records[studentID]
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

func (f *fakeGradeStore) Update(ctx context.Context, rec *model.GradeRecordModel) error {
	f.records[rec.GradeRecordStudentID] = *rec
	return nil
}

func (f *fakeGradeStore) InsertAudit(ctx context.Context, row *model.GradeAuditModel) error {
	if f.auditErr != nil {
		return f.auditErr
	}
	f.nextID++
	row.GradeAuditID = f.nextID
	f.audits = append(f.audits, *row)
	return nil
}

/* =========================================================
   Helpers
   ========================================================= */

func commitFor(t *testing.T, store *fakeGradeStore, req BatchRequest) (BatchResult, error) {
	t.Helper()
	planner := NewPlanner()
	roster := rosterOf(101, 102, 103, 104, 105)
	existing, err := store.ExistingGrades(context.Background(), req.SchoolID, req.GroupID, req.SubjectID, req.PeriodID)
	if err != nil {
		t.Fatalf("existing grades: %v", err)
	}
	plan := planner.Plan(roster, existing, req)

	committer := NewBatchCommitter(store, PostgresConflictClassifier{ConstraintName: model.UniqueTupleConstraint})
	return committer.Commit(context.Background(), plan, uuid.New())
}

/* =========================================================
   Tests
   ========================================================= */

func TestCommit_AllInserts(t *testing.T) {
	store := newFakeGradeStore()
	req := baseRequest()
	req.Items = []BatchItem{
		{StudentID: 101, NumericGrade: 8.0},
		{StudentID: 102, NumericGrade: 6.5},
		{StudentID: 103, NumericGrade: 9.0},
	}

	res, err := commitFor(t, store, req)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	if res.Inserted != 3 || res.Updated != 0 || res.BlockedExisting != 0 || res.Conflicted != 0 || res.Errored != 0 {
		t.Errorf("counts = %+v, want 3 inserted only", res)
	}
	if len(store.records) != 3 {
		t.Errorf("store has %d records, want 3", len(store.records))
	}
	// Fresh captures never write audit rows.
	if len(store.audits) != 0 {
		t.Errorf("store has %d audit rows, want 0", len(store.audits))
	}
}

func TestCommit_BlockedLineLeavesGradeUntouched(t *testing.T) {
	store := newFakeGradeStore()
	store.seed(101, 7.0, nil)

	req := baseRequest()
	req.Items = []BatchItem{{StudentID: 101, NumericGrade: 8.5}}

	// Submitting twice without authorization never changes the stored value.
	for i := 0; i < 2; i++ {
		res, err := commitFor(t, store, req)
		if err != nil {
			t.Fatalf("commit %d: %v", i, err)
		}
		if res.BlockedExisting != 1 || res.Inserted != 0 || res.Updated != 0 {
			t.Fatalf("commit %d counts = %+v, want 1 blocked", i, res)
		}
	}
	if got := store.records[101].GradeRecordNumeric; got != 7.0 {
		t.Errorf("stored grade = %v, want 7.0 (unchanged)", got)
	}
	if len(store.audits) != 0 {
		t.Errorf("blocked lines must not write audit rows, got %d", len(store.audits))
	}
}

func TestCommit_RecalibrationWritesAudit(t *testing.T) {
	store := newFakeGradeStore()
	store.seed(101, 7.0, strPtr("first capture"))

	req := baseRequest()
	req.PermitRecalibration = true
	req.Reason = "Exam re-grade approved by coordinator"
	req.Items = []BatchItem{{StudentID: 101, NumericGrade: 8.5, Notes: strPtr("re-graded")}}

	res, err := commitFor(t, store, req)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if res.Updated != 1 {
		t.Fatalf("counts = %+v, want 1 updated", res)
	}
	if got := store.records[101].GradeRecordNumeric; got != 8.5 {
		t.Errorf("stored grade = %v, want 8.5", got)
	}

	if len(store.audits) != 1 {
		t.Fatalf("audit rows = %d, want 1", len(store.audits))
	}
	audit := store.audits[0]
	if audit.GradeAuditPreviousGrade != 7.0 || audit.GradeAuditNewGrade != 8.5 {
		t.Errorf("audit before/after = %v/%v, want 7.0/8.5", audit.GradeAuditPreviousGrade, audit.GradeAuditNewGrade)
	}
	if audit.GradeAuditPreviousNotes == nil || *audit.GradeAuditPreviousNotes != "first capture" {
		t.Errorf("audit previous notes = %v, want 'first capture'", audit.GradeAuditPreviousNotes)
	}
	if audit.GradeAuditReason != req.Reason {
		t.Errorf("audit reason = %q, want %q", audit.GradeAuditReason, req.Reason)
	}
	if audit.GradeAuditCorrelationID == uuid.Nil {
		t.Error("audit row must carry the correlation id")
	}
}

// N recalibrations on the same tuple leave exactly N audit rows.
func TestCommit_AuditRowPerRecalibration(t *testing.T) {
	store := newFakeGradeStore()
	store.seed(101, 5.0, nil)

	grades := []float64{6.0, 7.0, 8.0}
	for _, g := range grades {
		req := baseRequest()
		req.PermitRecalibration = true
		req.Reason = "Captured against the wrong exam sheet"
		req.Items = []BatchItem{{StudentID: 101, NumericGrade: g}}
		if _, err := commitFor(t, store, req); err != nil {
			t.Fatalf("commit %v: %v", g, err)
		}
	}

	if len(store.audits) != len(grades) {
		t.Fatalf("audit rows = %d, want %d", len(store.audits), len(grades))
	}
	// Chain continuity: each row's before equals the previous row's after.
	prev := 5.0
	for i, audit := range store.audits {
		if audit.GradeAuditPreviousGrade != prev {
			t.Errorf("audit %d before = %v, want %v", i, audit.GradeAuditPreviousGrade, prev)
		}
		if audit.GradeAuditNewGrade != grades[i] {
			t.Errorf("audit %d after = %v, want %v", i, audit.GradeAuditNewGrade, grades[i])
		}
		prev = grades[i]
	}
}

// Two writers race on an empty tuple: the plan saw no existing grade, but by
// commit time another actor inserted it. Exactly one winner; the loser gets
// a classified conflict, not a failure, and sibling lines still land.
func TestCommit_InsertRaceBecomesConflict(t *testing.T) {
	store := newFakeGradeStore()

	req := baseRequest()
	req.Items = []BatchItem{
		{StudentID: 101, NumericGrade: 8.0},
		{StudentID: 102, NumericGrade: 6.0},
	}

	planner := NewPlanner()
	existing, _ := store.ExistingGrades(context.Background(), 1, 10, 20, 30)
	plan := planner.Plan(rosterOf(101, 102), existing, req)

	// Concurrent writer wins the race for student 101 after the plan.
	store.seed(101, 9.9, nil)

	committer := NewBatchCommitter(store, PostgresConflictClassifier{ConstraintName: model.UniqueTupleConstraint})
	res, err := committer.Commit(context.Background(), plan, uuid.New())
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	if res.Conflicted != 1 || res.Inserted != 1 {
		t.Fatalf("counts = %+v, want 1 conflicted + 1 inserted", res)
	}
	if res.ConflictedStudentIDs[0] != 101 {
		t.Errorf("conflicted student = %d, want 101", res.ConflictedStudentIDs[0])
	}
	// The concurrent writer's grade survives untouched.
	if got := store.records[101].GradeRecordNumeric; got != 9.9 {
		t.Errorf("winner's grade = %v, want 9.9", got)
	}
	if got := store.records[102].GradeRecordNumeric; got != 6.0 {
		t.Errorf("sibling line grade = %v, want 6.0", got)
	}
}

func TestCommit_UnexpectedErrorRollsBackWholeBatch(t *testing.T) {
	store := newFakeGradeStore()
	store.insertErrFor[103] = errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

	req := baseRequest()
	req.Items = []BatchItem{
		{StudentID: 101, NumericGrade: 8.0},
		{StudentID: 102, NumericGrade: 6.0},
		{StudentID: 103, NumericGrade: 7.0},
	}

	_, err := commitFor(t, store, req)
	if err == nil {
		t.Fatal("expected a persistence error")
	}
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *PersistenceError", err)
	}
	if pe.CorrelationID == uuid.Nil {
		t.Error("persistence error must carry the correlation id")
	}

	// No partial commit: the two successful inserts were rolled back too.
	if len(store.records) != 0 {
		t.Errorf("store has %d records after rollback, want 0", len(store.records))
	}
}

func TestCommit_AuditFailureRollsBackUpdate(t *testing.T) {
	store := newFakeGradeStore()
	store.seed(101, 7.0, nil)
	store.auditErr = errors.New("grade_audits: out of disk space")

	req := baseRequest()
	req.PermitRecalibration = true
	req.Reason = "Exam re-grade approved by coordinator"
	req.Items = []BatchItem{{StudentID: 101, NumericGrade: 8.5}}

	_, err := commitFor(t, store, req)
	if err == nil {
		t.Fatal("expected a persistence error")
	}

	// An update must never land without its audit row.
	if got := store.records[101].GradeRecordNumeric; got != 7.0 {
		t.Errorf("stored grade = %v, want 7.0 (rolled back)", got)
	}
	if len(store.audits) != 0 {
		t.Errorf("audit rows = %d, want 0", len(store.audits))
	}
}

func TestCommit_PlanErrorLinesNeverTouchTheStore(t *testing.T) {
	store := newFakeGradeStore()

	req := baseRequest()
	req.Items = []BatchItem{
		{StudentID: 101, NumericGrade: 11.0}, // out of range
		{StudentID: 999, NumericGrade: 8.0},  // off roster
		{StudentID: 102, NumericGrade: 8.0},  // fine
	}

	res, err := commitFor(t, store, req)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if res.Errored != 2 || res.Inserted != 1 {
		t.Fatalf("counts = %+v, want 2 errored + 1 inserted", res)
	}
	if len(store.records) != 1 {
		t.Errorf("store has %d records, want 1", len(store.records))
	}
	// Submission order is preserved in the result lines.
	wantOrder := []int64{101, 999, 102}
	for i, line := range res.Lines {
		if line.StudentID != wantOrder[i] {
			t.Errorf("line %d student = %d, want %d", i, line.StudentID, wantOrder[i])
		}
	}
}
