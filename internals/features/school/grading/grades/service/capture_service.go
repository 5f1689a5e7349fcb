package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rosterService "schoolku_backend/internals/features/school/academics/groups/service"
	periodService "schoolku_backend/internals/features/school/academics/periods/service"
	"schoolku_backend/internals/features/school/grading/grades/model"
)

// ErrPeriodClosed rejects capture against a closed (or nonexistent)
// evaluation period before any line is examined.
var ErrPeriodClosed = errors.New("evaluation period is closed")

// RosterSource supplies the enrolled-student set for one group × period.
type RosterSource interface {
	RosterStudentIDs(ctx context.Context, schoolID, groupID, periodID int64) (map[int64]struct{}, error)
}

// PeriodGate reports whether a period still accepts captures.
type PeriodGate interface {
	IsOpen(ctx context.Context, schoolID, periodID int64) (bool, error)
}

// GradeCaptureService is the core's entry point: Preview computes a plan
// with no side effects, Submit commits one. Controllers hand in every
// scoping id explicitly.
type GradeCaptureService struct {
	Roster    RosterSource
	Periods   PeriodGate
	Store     GradeStore
	Planner   *Planner
	Committer *BatchCommitter
}

func NewGradeCaptureService(db *gorm.DB) *GradeCaptureService {
	store := NewGormGradeStore(db)
	classifier := PostgresConflictClassifier{ConstraintName: model.UniqueTupleConstraint}
	return &GradeCaptureService{
		Roster:    rosterService.NewRosterService(db),
		Periods:   periodService.NewPeriodService(db),
		Store:     store,
		Planner:   NewPlanner(),
		Committer: NewBatchCommitter(store, classifier),
	}
}

func (s *GradeCaptureService) Preview(ctx context.Context, req BatchRequest) (ResolutionPlan, error) {
	return s.plan(ctx, req)
}

func (s *GradeCaptureService) Submit(ctx context.Context, req BatchRequest, correlationID uuid.UUID) (BatchResult, error) {
	plan, err := s.plan(ctx, req)
	if err != nil {
		return BatchResult{}, err
	}
	return s.Committer.Commit(ctx, plan, correlationID)
}

func (s *GradeCaptureService) plan(ctx context.Context, req BatchRequest) (ResolutionPlan, error) {
	open, err := s.Periods.IsOpen(ctx, req.SchoolID, req.PeriodID)
	if err != nil {
		return ResolutionPlan{}, err
	}
	if !open {
		return ResolutionPlan{}, ErrPeriodClosed
	}

	roster, err := s.Roster.RosterStudentIDs(ctx, req.SchoolID, req.GroupID, req.PeriodID)
	if err != nil {
		return ResolutionPlan{}, err
	}
	existing, err := s.Store.ExistingGrades(ctx, req.SchoolID, req.GroupID, req.SubjectID, req.PeriodID)
	if err != nil {
		return ResolutionPlan{}, err
	}
	return s.Planner.Plan(roster, existing, req), nil
}
