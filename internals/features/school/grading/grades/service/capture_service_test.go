package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/grading/grades/model"
)

type fakeRoster struct {
	ids map[int64]struct{}
}

func (f fakeRoster) RosterStudentIDs(ctx context.Context, schoolID, groupID, periodID int64) (map[int64]struct{}, error) {
	return f.ids, nil
}

type fakePeriodGate struct {
	open bool
	err  error
}

func (f fakePeriodGate) IsOpen(ctx context.Context, schoolID, periodID int64) (bool, error) {
	return f.open, f.err
}

func captureServiceWith(store *fakeGradeStore, roster map[int64]struct{}, periodOpen bool) *GradeCaptureService {
	return &GradeCaptureService{
		Roster:    fakeRoster{ids: roster},
		Periods:   fakePeriodGate{open: periodOpen},
		Store:     store,
		Planner:   NewPlanner(),
		Committer: NewBatchCommitter(store, PostgresConflictClassifier{ConstraintName: model.UniqueTupleConstraint}),
	}
}

func TestCapture_ClosedPeriodRejectsPreviewAndSubmit(t *testing.T) {
	store := newFakeGradeStore()
	svc := captureServiceWith(store, rosterOf(101), false)

	req := baseRequest()
	req.Items = []BatchItem{{StudentID: 101, NumericGrade: 8.0}}

	if _, err := svc.Preview(context.Background(), req); !errors.Is(err, ErrPeriodClosed) {
		t.Errorf("Preview error = %v, want ErrPeriodClosed", err)
	}
	if _, err := svc.Submit(context.Background(), req, uuid.New()); !errors.Is(err, ErrPeriodClosed) {
		t.Errorf("Submit error = %v, want ErrPeriodClosed", err)
	}
	if len(store.records) != 0 || len(store.audits) != 0 {
		t.Errorf("closed period must not touch the store, got %d records %d audits",
			len(store.records), len(store.audits))
	}
}

func TestCapture_OpenPeriodPlansAndCommits(t *testing.T) {
	store := newFakeGradeStore()
	svc := captureServiceWith(store, rosterOf(101, 102), true)

	req := baseRequest()
	req.Items = []BatchItem{
		{StudentID: 101, NumericGrade: 8.0},
		{StudentID: 102, NumericGrade: 6.5},
	}

	plan, err := svc.Preview(context.Background(), req)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(plan.Lines) != 2 || plan.Lines[0].Action != ActionInsert || plan.Lines[1].Action != ActionInsert {
		t.Fatalf("plan = %+v, want two inserts", plan.Lines)
	}
	// Preview never writes.
	if len(store.records) != 0 {
		t.Fatalf("preview wrote %d records", len(store.records))
	}

	res, err := svc.Submit(context.Background(), req, uuid.New())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Inserted != 2 {
		t.Errorf("counts = %+v, want 2 inserted", res)
	}
	if len(store.records) != 2 {
		t.Errorf("store has %d records, want 2", len(store.records))
	}
}

func TestCapture_PeriodGateErrorSurfaces(t *testing.T) {
	store := newFakeGradeStore()
	svc := captureServiceWith(store, rosterOf(101), true)
	gateErr := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	svc.Periods = fakePeriodGate{err: gateErr}

	req := baseRequest()
	req.Items = []BatchItem{{StudentID: 101, NumericGrade: 8.0}}

	if _, err := svc.Preview(context.Background(), req); !errors.Is(err, gateErr) {
		t.Errorf("Preview error = %v, want the gate error", err)
	}
}
