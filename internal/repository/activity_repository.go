package repository

import (
	"context"

	"taskflow/internal/model"
)

// ListActivities returns the newest activities first.
func (s *GormStorage) ListActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, translate(err, "list activities")
	}
	return activities, nil
}

func (s *GormStorage) CreateActivity(ctx context.Context, activity *model.Activity) error {
	return translate(s.db.WithContext(ctx).Create(activity).Error, "create activity")
}
