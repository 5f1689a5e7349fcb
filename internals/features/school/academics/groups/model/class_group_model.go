package model

import (
	"time"

	"gorm.io/gorm"
)

// ClassGroupModel maps the `class_groups` table (e.g. "5A").
type ClassGroupModel struct {
	ClassGroupID         int64  `json:"class_group_id" gorm:"column:class_group_id;primaryKey;autoIncrement"`
	ClassGroupSchoolID   int64  `json:"class_group_school_id" gorm:"column:class_group_school_id;not null;index:idx_class_groups_school"`
	ClassGroupGradeLevel int    `json:"class_group_grade_level" gorm:"column:class_group_grade_level;not null"`
	ClassGroupSection    string `json:"class_group_section" gorm:"column:class_group_section;type:varchar(8);not null"`

	// Homeroom teacher, optional.
	ClassGroupStaffID *int64 `json:"class_group_staff_id" gorm:"column:class_group_staff_id;index:idx_class_groups_staff"`

	ClassGroupCreatedAt time.Time      `json:"class_group_created_at" gorm:"column:class_group_created_at;not null;autoCreateTime"`
	ClassGroupUpdatedAt time.Time      `json:"class_group_updated_at" gorm:"column:class_group_updated_at;not null;autoUpdateTime"`
	ClassGroupDeletedAt gorm.DeletedAt `json:"class_group_deleted_at" gorm:"column:class_group_deleted_at;index"`
}

func (ClassGroupModel) TableName() string {
	return "class_groups"
}
