package repository

import (
	"context"
	"errors"
	"fmt"

	"taskflow/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage is the PostgreSQL-backed Storage.
type GormStorage struct {
	db *gorm.DB
}

var _ Storage = (*GormStorage)(nil)

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ClearAllData runs five unconditional deletes in sequence. A failure part
// way through leaves the earlier deletes applied.
func (s *GormStorage) ClearAllData(ctx context.Context) error {
	db := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, table := range []interface{}{
		&model.TimeEntry{},
		&model.Activity{},
		&model.Task{},
		&model.Category{},
		&model.TeamMember{},
	} {
		if err := db.Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	return s.SeedDefaultTeamMembers(ctx)
}

// SeedDefaultTeamMembers inserts the default roster, skipping emails that
// already exist.
func (s *GormStorage) SeedDefaultTeamMembers(ctx context.Context) error {
	for _, member := range model.DefaultTeamMembers() {
		m := member
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&m).Error
		if err != nil {
			return fmt.Errorf("seed team member %s: %w", m.Email, err)
		}
	}
	return nil
}

func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
