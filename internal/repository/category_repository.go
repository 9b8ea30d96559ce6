package repository

import (
	"context"

	"taskflow/internal/model"
)

func (s *GormStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, translate(err, "list categories")
	}
	return categories, nil
}

func (s *GormStorage) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get category")
	}
	return &category, nil
}

func (s *GormStorage) CreateCategory(ctx context.Context, category *model.Category) error {
	return translate(s.db.WithContext(ctx).Create(category).Error, "create category")
}

func (s *GormStorage) UpdateCategory(ctx context.Context, id int64, patch model.CategoryPatch) (*model.Category, error) {
	cols := patch.Columns()
	if len(cols) > 0 {
		result := s.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Updates(cols)
		if result.Error != nil {
			return nil, translate(result.Error, "update category")
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetCategory(ctx, id)
}

func (s *GormStorage) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id)
	if result.Error != nil {
		return false, translate(result.Error, "delete category")
	}
	return result.RowsAffected > 0, nil
}
