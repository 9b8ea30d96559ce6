package model

import "time"

// Activity types recorded by the task service. Type is free text, and
// imported histories also carry "completed" and "assigned".
const (
	ActivityCreated = "created"
	ActivityUpdated = "updated"
)

// Activity is an append-only audit record of a task lifecycle event.
type Activity struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Type        string    `gorm:"not null" json:"type"`
	TaskID      *int64    `json:"taskId"`
	MemberID    *int64    `json:"memberId"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}
