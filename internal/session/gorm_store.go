package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is a row of the sessions table.
type Record struct {
	SID    string    `gorm:"column:sid;primaryKey"`
	Sess   string    `gorm:"column:sess;type:jsonb;not null"`
	Expire time.Time `gorm:"column:expire;not null;index:IDX_session_expire"`
}

func (Record) TableName() string { return "sessions" }

// GormStore keeps sessions in PostgreSQL.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Get(ctx context.Context, sid string) (*Data, error) {
	var rec Record
	err := s.db.WithContext(ctx).
		Where("sid = ? AND expire > ?", sid, s.now()).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(rec.Sess), &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &data, nil
}

func (s *GormStore) Set(ctx context.Context, sid string, data Data, ttl time.Duration) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	rec := Record{SID: sid, Sess: string(body), Expire: s.now().Add(ttl)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sid"}},
		DoUpdates: clause.AssignmentColumns([]string{"sess", "expire"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *GormStore) Destroy(ctx context.Context, sid string) error {
	if err := s.db.WithContext(ctx).Delete(&Record{}, "sid = ?", sid).Error; err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// Prune deletes expired sessions and returns how many were removed.
func (s *GormStore) Prune(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expire <= ?", s.now()).Delete(&Record{})
	if result.Error != nil {
		return 0, fmt.Errorf("prune sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
