package service

import (
	"context"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/academics/groups/model"
)

// RosterService answers "which students belong to this group for this
// period". The grade capture planner depends on it to reject out-of-roster
// submissions.
type RosterService struct {
	DB *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{DB: db}
}

func (s *RosterService) RosterStudentIDs(ctx context.Context, schoolID, groupID, periodID int64) (map[int64]struct{}, error) {
	var ids []int64
	if err := s.DB.WithContext(ctx).Model(&model.EnrollmentModel{}).
		Where("enrollment_school_id = ? AND enrollment_group_id = ? AND enrollment_period_id = ?",
			schoolID, groupID, periodID).
		Pluck("enrollment_student_id", &ids).Error; err != nil {
		return nil, err
	}

	roster := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		roster[id] = struct{}{}
	}
	return roster, nil
}
