package model

import (
	"time"

	"gorm.io/gorm"
)

// StudentModel maps the `students` table. The (school, code) uniqueness is
// the partial index `uq_students_school_code` (migrations), scoped to
// non-deleted rows so a removed student's code can be reissued.
type StudentModel struct {
	StudentID       int64  `json:"student_id" gorm:"column:student_id;primaryKey;autoIncrement"`
	StudentSchoolID int64  `json:"student_school_id" gorm:"column:student_school_id;not null;index:idx_students_school"`
	StudentCode     string `json:"student_code" gorm:"column:student_code;type:varchar(32);not null"`
	StudentFullName string `json:"student_full_name" gorm:"column:student_full_name;type:varchar(160);not null"`

	StudentBirthDate *time.Time `json:"student_birth_date" gorm:"column:student_birth_date;type:date"`
	StudentIsActive  bool       `json:"student_is_active" gorm:"column:student_is_active;not null;default:true"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
