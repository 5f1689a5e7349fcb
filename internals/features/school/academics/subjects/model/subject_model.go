package model

import (
	"time"

	"gorm.io/gorm"
)

// SubjectModel maps the `subjects` table.
type SubjectModel struct {
	SubjectID       int64  `json:"subject_id" gorm:"column:subject_id;primaryKey;autoIncrement"`
	SubjectSchoolID int64  `json:"subject_school_id" gorm:"column:subject_school_id;not null;index:idx_subjects_school;uniqueIndex:uq_subjects_school_code,priority:1"`
	SubjectCode     string `json:"subject_code" gorm:"column:subject_code;type:varchar(32);not null;uniqueIndex:uq_subjects_school_code,priority:2"`
	SubjectName     string `json:"subject_name" gorm:"column:subject_name;type:varchar(120);not null"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
