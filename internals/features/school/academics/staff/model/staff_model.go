package model

import (
	"time"

	"gorm.io/gorm"
)

// StaffModel maps the `staff` table (teachers, coordinators, admins).
// The (school, email) uniqueness is the partial index `uq_staff_school_email`
// (migrations), scoped to non-deleted rows.
type StaffModel struct {
	StaffID       int64  `json:"staff_id" gorm:"column:staff_id;primaryKey;autoIncrement"`
	StaffSchoolID int64  `json:"staff_school_id" gorm:"column:staff_school_id;not null;index:idx_staff_school"`
	StaffFullName string `json:"staff_full_name" gorm:"column:staff_full_name;type:varchar(160);not null"`
	StaffEmail    string `json:"staff_email" gorm:"column:staff_email;type:varchar(160);not null"`

	// bcrypt hash, never serialized
	StaffPasswordHash string `json:"-" gorm:"column:staff_password_hash;type:varchar(100);not null"`

	StaffRole     string `json:"staff_role" gorm:"column:staff_role;type:varchar(32);not null;default:teacher"`
	StaffIsActive bool   `json:"staff_is_active" gorm:"column:staff_is_active;not null;default:true"`

	StaffCreatedAt time.Time      `json:"staff_created_at" gorm:"column:staff_created_at;not null;autoCreateTime"`
	StaffUpdatedAt time.Time      `json:"staff_updated_at" gorm:"column:staff_updated_at;not null;autoUpdateTime"`
	StaffDeletedAt gorm.DeletedAt `json:"staff_deleted_at" gorm:"column:staff_deleted_at;index"`
}

func (StaffModel) TableName() string {
	return "staff"
}
