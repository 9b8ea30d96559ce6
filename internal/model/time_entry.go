package model

import "time"

type TimeEntry struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	TaskID      int64     `gorm:"not null;index" json:"taskId"`
	MemberID    int64     `gorm:"not null;index" json:"memberId"`
	Hours       float64   `gorm:"not null" json:"hours"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
}
