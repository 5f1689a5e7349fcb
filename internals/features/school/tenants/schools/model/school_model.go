package model

import (
	"time"

	"gorm.io/gorm"
)

// SchoolModel maps the `schools` table (one row per tenant). The code
// uniqueness is the partial index `uq_schools_code` (migrations), scoped to
// non-deleted rows.
type SchoolModel struct {
	SchoolID        int64          `json:"school_id" gorm:"column:school_id;primaryKey;autoIncrement"`
	SchoolName      string         `json:"school_name" gorm:"column:school_name;type:varchar(160);not null"`
	SchoolCode      string         `json:"school_code" gorm:"column:school_code;type:varchar(32);not null"`
	SchoolTimezone  string         `json:"school_timezone" gorm:"column:school_timezone;type:varchar(64);not null;default:America/Mexico_City"`
	SchoolIsActive  bool           `json:"school_is_active" gorm:"column:school_is_active;not null;default:true"`
	SchoolCreatedAt time.Time      `json:"school_created_at" gorm:"column:school_created_at;not null;autoCreateTime"`
	SchoolUpdatedAt time.Time      `json:"school_updated_at" gorm:"column:school_updated_at;not null;autoUpdateTime"`
	SchoolDeletedAt gorm.DeletedAt `json:"school_deleted_at" gorm:"column:school_deleted_at;index"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
