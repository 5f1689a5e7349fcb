package service

import (
	"context"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/periods/model"
)

// PeriodService answers period-state questions for other features.
type PeriodService struct {
	DB *gorm.DB
}

func NewPeriodService(db *gorm.DB) *PeriodService {
	return &PeriodService{DB: db}
}

// IsOpen reports whether the period exists for the school and still accepts
// grade captures. A missing period reads as closed.
func (s *PeriodService) IsOpen(ctx context.Context, schoolID, periodID int64) (bool, error) {
	var flags []bool
	err := s.DB.WithContext(ctx).Model(&model.AcademicPeriodModel{}).
		Where("academic_period_school_id = ? AND academic_period_id = ?", schoolID, periodID).
		Limit(1).
		Pluck("academic_period_is_open", &flags).Error
	if err != nil {
		return false, err
	}
	return len(flags) == 1 && flags[0], nil
}
