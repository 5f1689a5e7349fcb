package model

import (
	"time"

	"gorm.io/gorm"
)

// AcademicPeriodModel maps the `academic_periods` table (evaluation periods,
// e.g. Q1..Q4 or trimesters).
type AcademicPeriodModel struct {
	AcademicPeriodID       int64  `json:"academic_period_id" gorm:"column:academic_period_id;primaryKey;autoIncrement"`
	AcademicPeriodSchoolID int64  `json:"academic_period_school_id" gorm:"column:academic_period_school_id;not null;index:idx_academic_periods_school"`
	AcademicPeriodName     string `json:"academic_period_name" gorm:"column:academic_period_name;type:varchar(64);not null"`
	AcademicPeriodOrdinal  int    `json:"academic_period_ordinal" gorm:"column:academic_period_ordinal;not null"`

	AcademicPeriodStartDate time.Time `json:"academic_period_start_date" gorm:"column:academic_period_start_date;type:date;not null"`
	AcademicPeriodEndDate   time.Time `json:"academic_period_end_date" gorm:"column:academic_period_end_date;type:date;not null"`

	// Captures are only accepted while the period is open.
	AcademicPeriodIsOpen bool `json:"academic_period_is_open" gorm:"column:academic_period_is_open;not null;default:true"`

	AcademicPeriodCreatedAt time.Time      `json:"academic_period_created_at" gorm:"column:academic_period_created_at;not null;autoCreateTime"`
	AcademicPeriodUpdatedAt time.Time      `json:"academic_period_updated_at" gorm:"column:academic_period_updated_at;not null;autoUpdateTime"`
	AcademicPeriodDeletedAt gorm.DeletedAt `json:"academic_period_deleted_at" gorm:"column:academic_period_deleted_at;index"`
}

func (AcademicPeriodModel) TableName() string {
	return "academic_periods"
}
