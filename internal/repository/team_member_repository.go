package repository

import (
	"context"

	"taskflow/internal/model"
)

func (s *GormStorage) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	if err := s.db.WithContext(ctx).Order("id").Find(&members).Error; err != nil {
		return nil, translate(err, "list team members")
	}
	return members, nil
}

func (s *GormStorage) GetTeamMember(ctx context.Context, id int64) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := s.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get team member")
	}
	return &member, nil
}

func (s *GormStorage) CreateTeamMember(ctx context.Context, member *model.TeamMember) error {
	return translate(s.db.WithContext(ctx).Create(member).Error, "create team member")
}

func (s *GormStorage) UpdateTeamMember(ctx context.Context, id int64, patch model.TeamMemberPatch) (*model.TeamMember, error) {
	cols := patch.Columns()
	if len(cols) > 0 {
		result := s.db.WithContext(ctx).Model(&model.TeamMember{}).Where("id = ?", id).Updates(cols)
		if result.Error != nil {
			return nil, translate(result.Error, "update team member")
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetTeamMember(ctx, id)
}

// DeleteTeamMember leaves tasks, time entries and activities that reference
// the member untouched.
func (s *GormStorage) DeleteTeamMember(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&model.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return false, translate(result.Error, "delete team member")
	}
	return result.RowsAffected > 0, nil
}
