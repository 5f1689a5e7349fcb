package model

import (
	"time"

	"gorm.io/gorm"
)

// EnrollmentModel maps the `enrollments` table: which students belong to
// which group for a given evaluation period. The grade planner reads this
// set as the roster.
//
// Membership uniqueness lives in the partial index `uq_enrollments_tuple`
// (migrations), not in a gorm tag: rows are soft-deleted on unenroll, and a
// full unique index would let a dead row block re-enrollment forever.
type EnrollmentModel struct {
	EnrollmentID        int64 `json:"enrollment_id" gorm:"column:enrollment_id;primaryKey;autoIncrement"`
	EnrollmentSchoolID  int64 `json:"enrollment_school_id" gorm:"column:enrollment_school_id;not null"`
	EnrollmentGroupID   int64 `json:"enrollment_group_id" gorm:"column:enrollment_group_id;not null;index:idx_enrollments_group"`
	EnrollmentPeriodID  int64 `json:"enrollment_period_id" gorm:"column:enrollment_period_id;not null"`
	EnrollmentStudentID int64 `json:"enrollment_student_id" gorm:"column:enrollment_student_id;not null;index:idx_enrollments_student"`

	EnrollmentCreatedAt time.Time      `json:"enrollment_created_at" gorm:"column:enrollment_created_at;not null;autoCreateTime"`
	EnrollmentDeletedAt gorm.DeletedAt `json:"enrollment_deleted_at" gorm:"column:enrollment_deleted_at;index"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
