package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/features/school/grading/grades/model"
)

// GradeStore is the persistence gateway for grade rows. The committer only
// talks to the store, never to gorm directly, so the commit path can be
// exercised in tests without a database.
type GradeStore interface {
	// ExistingGrades returns the current grade per student for one
	// group × subject × period roster.
	ExistingGrades(ctx context.Context, schoolID, groupID, subjectID, periodID int64) (map[int64]ExistingGrade, error)

	// WithinTx runs fn inside one transaction. fn returning an error rolls
	// the whole transaction back.
	WithinTx(ctx context.Context, fn func(tx GradeTxStore) error) error
}

// GradeTxStore is the write surface available inside a transaction.
type GradeTxStore interface {
	Insert(ctx context.Context, rec *model.GradeRecordModel) error
	// FindForUpdate row-locks the tuple's grade and returns nil when absent.
	FindForUpdate(ctx context.Context, schoolID, studentID, subjectID, groupID, periodID int64) (*model.GradeRecordModel, error)
	Update(ctx context.Context, rec *model.GradeRecordModel) error
	InsertAudit(ctx context.Context, row *model.GradeAuditModel) error
}

/* =========================================================
   GORM implementation
   ========================================================= */

type GormGradeStore struct {
	DB *gorm.DB
}

func NewGormGradeStore(db *gorm.DB) *GormGradeStore {
	return &GormGradeStore{DB: db}
}

func (s *GormGradeStore) ExistingGrades(ctx context.Context, schoolID, groupID, subjectID, periodID int64) (map[int64]ExistingGrade, error) {
	var rows []model.GradeRecordModel
	if err := s.DB.WithContext(ctx).
		Where("grade_record_school_id = ? AND grade_record_group_id = ? AND grade_record_subject_id = ? AND grade_record_period_id = ?",
			schoolID, groupID, subjectID, periodID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[int64]ExistingGrade, len(rows))
	for i := range rows {
		out[rows[i].GradeRecordStudentID] = ExistingGrade{
			GradeRecordID: rows[i].GradeRecordID,
			NumericGrade:  rows[i].GradeRecordNumeric,
			Notes:         rows[i].GradeRecordNotes,
		}
	}
	return out, nil
}

func (s *GormGradeStore) WithinTx(ctx context.Context, fn func(tx GradeTxStore) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormGradeTxStore{db: tx})
	})
}

type gormGradeTxStore struct {
	db *gorm.DB
}

func (s *gormGradeTxStore) Insert(ctx context.Context, rec *model.GradeRecordModel) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *gormGradeTxStore) FindForUpdate(ctx context.Context, schoolID, studentID, subjectID, groupID, periodID int64) (*model.GradeRecordModel, error) {
	var rec model.GradeRecordModel
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("grade_record_school_id = ? AND grade_record_student_id = ? AND grade_record_subject_id = ? AND grade_record_group_id = ? AND grade_record_period_id = ?",
			schoolID, studentID, subjectID, groupID, periodID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *gormGradeTxStore) Update(ctx context.Context, rec *model.GradeRecordModel) error {
	return s.db.WithContext(ctx).Save(rec).Error
}

func (s *gormGradeTxStore) InsertAudit(ctx context.Context, row *model.GradeAuditModel) error {
	return s.db.WithContext(ctx).Create(row).Error
}
