package model

import (
	"time"

	"gorm.io/gorm"
)

// GradeRecordModel maps the `grade_records` table: one evaluation result per
// (school, student, subject, group, period).
//
// The tuple uniqueness is enforced by a partial unique index
// `uq_grade_records_tuple` created in the migration step (partial on
// grade_record_deleted_at IS NULL, which gorm tags cannot express). The
// planner performs the same check logically; the index is the backstop
// against concurrent captures.
type GradeRecordModel struct {
	GradeRecordID        int64 `json:"grade_record_id" gorm:"column:grade_record_id;primaryKey;autoIncrement"`
	GradeRecordSchoolID  int64 `json:"grade_record_school_id" gorm:"column:grade_record_school_id;not null;index:idx_grade_records_school"`
	GradeRecordStudentID int64 `json:"grade_record_student_id" gorm:"column:grade_record_student_id;not null;index:idx_grade_records_student"`
	GradeRecordSubjectID int64 `json:"grade_record_subject_id" gorm:"column:grade_record_subject_id;not null"`
	GradeRecordGroupID   int64 `json:"grade_record_group_id" gorm:"column:grade_record_group_id;not null;index:idx_grade_records_group"`
	GradeRecordPeriodID  int64 `json:"grade_record_period_id" gorm:"column:grade_record_period_id;not null"`

	// 0.0–10.0, one decimal place.
	GradeRecordNumeric float64 `json:"grade_record_numeric" gorm:"column:grade_record_numeric;type:numeric(4,1);not null"`

	GradeRecordEvaluationType string   `json:"grade_record_evaluation_type" gorm:"column:grade_record_evaluation_type;type:varchar(32);not null;default:regular"`
	GradeRecordWeight         *float64 `json:"grade_record_weight" gorm:"column:grade_record_weight;type:numeric(5,2)"`
	GradeRecordNotes          *string  `json:"grade_record_notes" gorm:"column:grade_record_notes;type:text"`

	GradeRecordCapturedByStaffID int64     `json:"grade_record_captured_by_staff_id" gorm:"column:grade_record_captured_by_staff_id;not null"`
	GradeRecordCapturedAt        time.Time `json:"grade_record_captured_at" gorm:"column:grade_record_captured_at;not null;autoCreateTime"`

	GradeRecordUpdatedAt time.Time      `json:"grade_record_updated_at" gorm:"column:grade_record_updated_at;not null;autoUpdateTime"`
	GradeRecordDeletedAt gorm.DeletedAt `json:"grade_record_deleted_at" gorm:"column:grade_record_deleted_at;index"`
}

func (GradeRecordModel) TableName() string {
	return "grade_records"
}

// UniqueTupleConstraint is the name of the partial unique index guarding the
// one-grade-per-tuple invariant. The conflict classifier matches against it.
const UniqueTupleConstraint = "uq_grade_records_tuple"
