package service

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

func baseRequest() BatchRequest {
	return BatchRequest{
		SchoolID:          1,
		GroupID:           10,
		SubjectID:         20,
		PeriodID:          30,
		CapturedByStaffID: 40,
	}
}

func rosterOf(ids ...int64) map[int64]struct{} {
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func TestPlan_Classification(t *testing.T) {
	planner := NewPlanner()
	roster := rosterOf(101, 102, 103)
	existing := map[int64]ExistingGrade{
		102: {GradeRecordID: 555, NumericGrade: 7.0},
	}

	tests := []struct {
		name       string
		permit     bool
		reason     string
		items      []BatchItem
		wantAction []LineAction
		wantReason []string
	}{
		{
			name:       "new grade inserts",
			items:      []BatchItem{{StudentID: 101, NumericGrade: 8.0}},
			wantAction: []LineAction{ActionInsert},
			wantReason: []string{""},
		},
		{
			name:       "existing grade without permit is blocked",
			items:      []BatchItem{{StudentID: 102, NumericGrade: 8.5}},
			wantAction: []LineAction{ActionUpdateBlocked},
			wantReason: []string{ReasonAlreadyCaptured},
		},
		{
			name:       "permit without reason is an error",
			permit:     true,
			reason:     "typo",
			items:      []BatchItem{{StudentID: 102, NumericGrade: 8.5}},
			wantAction: []LineAction{ActionError},
			wantReason: []string{ReasonReasonRequired},
		},
		{
			name:       "authorized recalibration is allowed",
			permit:     true,
			reason:     "Exam re-grade approved by coordinator",
			items:      []BatchItem{{StudentID: 102, NumericGrade: 8.5}},
			wantAction: []LineAction{ActionUpdateAllowed},
			wantReason: []string{""},
		},
		{
			name:       "grade above range is an error",
			items:      []BatchItem{{StudentID: 101, NumericGrade: 10.5}},
			wantAction: []LineAction{ActionError},
			wantReason: []string{ReasonGradeOutOfRange},
		},
		{
			name:       "negative grade is an error",
			items:      []BatchItem{{StudentID: 101, NumericGrade: -0.5}},
			wantAction: []LineAction{ActionError},
			wantReason: []string{ReasonGradeOutOfRange},
		},
		{
			name:       "student off roster is an error",
			items:      []BatchItem{{StudentID: 999, NumericGrade: 6.0}},
			wantAction: []LineAction{ActionError},
			wantReason: []string{ReasonNotInRoster},
		},
		{
			name: "duplicate student errors on the second line only",
			items: []BatchItem{
				{StudentID: 101, NumericGrade: 6.0},
				{StudentID: 101, NumericGrade: 7.0},
			},
			wantAction: []LineAction{ActionInsert, ActionError},
			wantReason: []string{"", ReasonDuplicateInBatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			req.PermitRecalibration = tt.permit
			req.Reason = tt.reason
			req.Items = tt.items

			plan := planner.Plan(roster, existing, req)
			if len(plan.Lines) != len(tt.wantAction) {
				t.Fatalf("got %d lines, want %d", len(plan.Lines), len(tt.wantAction))
			}
			for i, line := range plan.Lines {
				if line.Action != tt.wantAction[i] {
					t.Errorf("line %d action = %s, want %s", i, line.Action, tt.wantAction[i])
				}
				if line.Reason != tt.wantReason[i] {
					t.Errorf("line %d reason = %q, want %q", i, line.Reason, tt.wantReason[i])
				}
			}
		})
	}
}

func TestPlan_CarriesExistingGrade(t *testing.T) {
	planner := NewPlanner()
	existing := map[int64]ExistingGrade{
		102: {GradeRecordID: 555, NumericGrade: 7.0, Notes: strPtr("first try")},
	}

	req := baseRequest()
	req.PermitRecalibration = true
	req.Reason = "Exam re-grade approved by coordinator"
	req.Items = []BatchItem{{StudentID: 102, NumericGrade: 8.5}}

	plan := planner.Plan(rosterOf(102), existing, req)
	line := plan.Lines[0]
	if line.Existing == nil {
		t.Fatal("expected the existing grade to be carried on the line")
	}
	if line.Existing.GradeRecordID != 555 || line.Existing.NumericGrade != 7.0 {
		t.Errorf("existing = %+v, want id 555 grade 7.0", *line.Existing)
	}
}

// A plan must be a pure function of its inputs: same snapshot, same output.
func TestPlan_Deterministic(t *testing.T) {
	planner := NewPlanner()
	roster := rosterOf(101, 102, 103)
	existing := map[int64]ExistingGrade{102: {GradeRecordID: 1, NumericGrade: 5.0}}

	req := baseRequest()
	req.Items = []BatchItem{
		{StudentID: 101, NumericGrade: 9.0},
		{StudentID: 102, NumericGrade: 6.0},
		{StudentID: 103, NumericGrade: 11.0},
		{StudentID: 104, NumericGrade: 7.0},
	}

	first := planner.Plan(roster, existing, req)
	for i := 0; i < 10; i++ {
		again := planner.Plan(roster, existing, req)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("plan %d differs from the first plan", i)
		}
	}
}

// Classroom of 30: 28 new, 2 already graded, no recalibration authorization.
func TestPlan_MixedClassroom(t *testing.T) {
	planner := NewPlanner()

	roster := make(map[int64]struct{})
	existing := make(map[int64]ExistingGrade)
	req := baseRequest()
	for i := int64(1); i <= 30; i++ {
		roster[i] = struct{}{}
		req.Items = append(req.Items, BatchItem{StudentID: i, NumericGrade: 8.0})
	}
	existing[3] = ExistingGrade{GradeRecordID: 91, NumericGrade: 6.5}
	existing[17] = ExistingGrade{GradeRecordID: 92, NumericGrade: 9.0}

	plan := planner.Plan(roster, existing, req)

	counts := map[LineAction]int{}
	for _, line := range plan.Lines {
		counts[line.Action]++
	}
	if counts[ActionInsert] != 28 {
		t.Errorf("inserts = %d, want 28", counts[ActionInsert])
	}
	if counts[ActionUpdateBlocked] != 2 {
		t.Errorf("blocked = %d, want 2", counts[ActionUpdateBlocked])
	}
	if counts[ActionUpdateAllowed] != 0 || counts[ActionError] != 0 {
		t.Errorf("unexpected allowed/error lines: %v", counts)
	}
}
