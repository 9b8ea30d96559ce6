package repository

import (
	"context"

	"taskflow/internal/model"
)

func (s *GormStorage) ListTimeEntries(ctx context.Context, taskID *int64) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	q := s.db.WithContext(ctx)
	if taskID != nil {
		q = q.Where("task_id = ?", *taskID)
	}
	if err := q.Order("id").Find(&entries).Error; err != nil {
		return nil, translate(err, "list time entries")
	}
	return entries, nil
}

func (s *GormStorage) CreateTimeEntry(ctx context.Context, entry *model.TimeEntry) error {
	return translate(s.db.WithContext(ctx).Create(entry).Error, "create time entry")
}
