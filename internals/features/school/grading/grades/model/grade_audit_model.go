package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GradeAuditModel maps the `grade_audits` table. Rows are append-only: the
// model has no updated_at/deleted_at on purpose, and no update or delete is
// exposed anywhere in the codebase. One row exists per committed
// recalibration, written in the same transaction as the grade update.
type GradeAuditModel struct {
	GradeAuditID            int64 `json:"grade_audit_id" gorm:"column:grade_audit_id;primaryKey;autoIncrement"`
	GradeAuditSchoolID      int64 `json:"grade_audit_school_id" gorm:"column:grade_audit_school_id;not null;index:idx_grade_audits_school_period,priority:1"`
	GradeAuditGradeRecordID int64 `json:"grade_audit_grade_record_id" gorm:"column:grade_audit_grade_record_id;not null;index:idx_grade_audits_record"`
	GradeAuditStudentID     int64 `json:"grade_audit_student_id" gorm:"column:grade_audit_student_id;not null;index:idx_grade_audits_student"`
	GradeAuditSubjectID     int64 `json:"grade_audit_subject_id" gorm:"column:grade_audit_subject_id;not null"`
	GradeAuditGroupID       int64 `json:"grade_audit_group_id" gorm:"column:grade_audit_group_id;not null;index:idx_grade_audits_group"`
	GradeAuditPeriodID      int64 `json:"grade_audit_period_id" gorm:"column:grade_audit_period_id;not null;index:idx_grade_audits_school_period,priority:2"`

	GradeAuditPreviousGrade float64 `json:"grade_audit_previous_grade" gorm:"column:grade_audit_previous_grade;type:numeric(4,1);not null"`
	GradeAuditNewGrade      float64 `json:"grade_audit_new_grade" gorm:"column:grade_audit_new_grade;type:numeric(4,1);not null"`
	GradeAuditPreviousNotes *string `json:"grade_audit_previous_notes" gorm:"column:grade_audit_previous_notes;type:text"`
	GradeAuditNewNotes      *string `json:"grade_audit_new_notes" gorm:"column:grade_audit_new_notes;type:text"`

	// Full before/after row images for forensics (fields beyond grade/notes).
	GradeAuditSnapshot datatypes.JSON `json:"grade_audit_snapshot" gorm:"column:grade_audit_snapshot;type:jsonb"`

	GradeAuditReason             string    `json:"grade_audit_reason" gorm:"column:grade_audit_reason;type:text;not null"`
	GradeAuditPerformedByStaffID int64     `json:"grade_audit_performed_by_staff_id" gorm:"column:grade_audit_performed_by_staff_id;not null;index:idx_grade_audits_actor"`
	GradeAuditPerformedAt        time.Time `json:"grade_audit_performed_at" gorm:"column:grade_audit_performed_at;not null;autoCreateTime"`

	GradeAuditCorrelationID uuid.UUID `json:"grade_audit_correlation_id" gorm:"column:grade_audit_correlation_id;type:uuid;not null;index:idx_grade_audits_correlation"`
}

func (GradeAuditModel) TableName() string {
	return "grade_audits"
}
