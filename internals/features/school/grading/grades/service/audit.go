package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/grading/grades/model"
)

// AuditQuery supports the "who changed this grade and why" and "what did
// this correlation id touch" investigations. SchoolID is mandatory; all
// other filters combine with AND.
type AuditQuery struct {
	SchoolID      int64
	PeriodID      *int64
	StudentID     *int64
	StudentIDs    []int64
	GroupID       *int64
	SubjectID     *int64
	ActorStaffID  *int64
	CorrelationID *uuid.UUID
}

// AuditService is read-only. There is deliberately no update or delete
// surface for audit rows anywhere in the codebase.
type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

func (s *AuditService) List(ctx context.Context, q AuditQuery, limit, offset int) ([]model.GradeAuditModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.GradeAuditModel{}).
		Where("grade_audit_school_id = ?", q.SchoolID)

	if q.PeriodID != nil {
		tx = tx.Where("grade_audit_period_id = ?", *q.PeriodID)
	}
	if q.StudentID != nil {
		tx = tx.Where("grade_audit_student_id = ?", *q.StudentID)
	}
	if len(q.StudentIDs) > 0 {
		tx = tx.Where("grade_audit_student_id = ANY(?)", pq.Int64Array(q.StudentIDs))
	}
	if q.GroupID != nil {
		tx = tx.Where("grade_audit_group_id = ?", *q.GroupID)
	}
	if q.SubjectID != nil {
		tx = tx.Where("grade_audit_subject_id = ?", *q.SubjectID)
	}
	if q.ActorStaffID != nil {
		tx = tx.Where("grade_audit_performed_by_staff_id = ?", *q.ActorStaffID)
	}
	if q.CorrelationID != nil {
		tx = tx.Where("grade_audit_correlation_id = ?", *q.CorrelationID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.GradeAuditModel
	if err := tx.Order("grade_audit_performed_at DESC, grade_audit_id DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
