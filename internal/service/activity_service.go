package service

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// DefaultActivityLimit applies when the caller passes a negative limit.
const DefaultActivityLimit = 50

type ActivityService struct {
	store repository.Storage
}

func NewActivityService(store repository.Storage) *ActivityService {
	return &ActivityService{store: store}
}

// ListActivities returns at most limit activities, newest first. A zero
// limit yields an empty list and a negative one falls back to
// DefaultActivityLimit.
func (s *ActivityService) ListActivities(ctx context.Context, limit int) ([]model.Activity, error) {
	if limit < 0 {
		limit = DefaultActivityLimit
	}
	if limit == 0 {
		return []model.Activity{}, nil
	}
	return s.store.ListActivities(ctx, limit)
}
