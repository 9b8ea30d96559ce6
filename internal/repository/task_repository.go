package repository

import (
	"context"

	"gorm.io/gorm"

	"taskflow/internal/model"
)

// ListTasks retrieves every task matching the filter, ordered for the board
func (s *GormStorage) ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	var tasks []model.Task
	q := s.db.WithContext(ctx)
	switch {
	case filter.Status != "":
		q = q.Where("status = ?", filter.Status)
	case filter.AssigneeID != nil:
		q = q.Where("assignee_id = ?", *filter.AssigneeID)
	case filter.CategoryID != nil:
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if err := q.Order("position").Order("id").Find(&tasks).Error; err != nil {
		return nil, translate(err, "list tasks")
	}
	return tasks, nil
}

// GetTask retrieves a task by its ID
func (s *GormStorage) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	if err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get task")
	}
	return &task, nil
}

// CreateTask adds a new task to the database
func (s *GormStorage) CreateTask(ctx context.Context, task *model.Task) error {
	return translate(s.db.WithContext(ctx).Create(task).Error, "create task")
}

// UpdateTask applies a partial update and returns the stored row
func (s *GormStorage) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	cols := patch.Columns()
	if len(cols) > 0 {
		result := s.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(cols)
		if result.Error != nil {
			return nil, translate(result.Error, "update task")
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetTask(ctx, id)
}

// DeleteTask removes a task by its ID. Time entries and activities pointing
// at it are kept.
func (s *GormStorage) DeleteTask(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return false, translate(result.Error, "delete task")
	}
	return result.RowsAffected > 0, nil
}

// AddActualHours increments actual_hours in place. It reports false when the
// task does not exist.
func (s *GormStorage) AddActualHours(ctx context.Context, taskID int64, hours float64) (bool, error) {
	result := s.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Update("actual_hours", gorm.Expr("COALESCE(actual_hours, 0) + ?", hours))
	if result.Error != nil {
		return false, translate(result.Error, "add actual hours")
	}
	return result.RowsAffected > 0, nil
}
