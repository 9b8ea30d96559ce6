package model

import (
	"slices"
	"time"
)

// Task statuses. Any transition between them is allowed.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var (
	TaskStatuses   = []string{StatusTodo, StatusInProgress, StatusCompleted}
	TaskPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
)

type Task struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"not null" json:"title"`
	Description    *string    `json:"description"`
	Status         string     `gorm:"not null;default:todo;index" json:"status"`
	Priority       string     `gorm:"not null;default:medium" json:"priority"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *float64   `json:"estimatedHours"`
	ActualHours    float64    `gorm:"not null;default:0" json:"actualHours"`
	AssigneeID     *int64     `gorm:"index" json:"assigneeId"`
	CategoryID     *int64     `gorm:"index" json:"categoryId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Position       int        `gorm:"not null;default:0" json:"position"`
}

// IsOverdue reports whether the task is past its due date and still open.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusCompleted
}

// TaskWithDetails is a task joined at read time with its assignee and
// category. A dangling id leaves the relation nil.
type TaskWithDetails struct {
	Task
	Assignee *TeamMember `json:"assignee,omitempty"`
	Category *Category   `json:"category,omitempty"`
}

// TaskFilter selects tasks by a single criterion. Status wins over
// AssigneeID, which wins over CategoryID.
type TaskFilter struct {
	Status     string
	AssigneeID *int64
	CategoryID *int64
}

// Nullable task columns that a patch can clear.
const (
	FieldDescription    = "description"
	FieldDueDate        = "due_date"
	FieldEstimatedHours = "estimated_hours"
	FieldAssigneeID     = "assignee_id"
	FieldCategoryID     = "category_id"
)

// TaskPatch is a partial task update. Nil pointers are left untouched;
// columns named in Clear are set to NULL.
type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *string
	Priority       *string
	DueDate        *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	AssigneeID     *int64
	CategoryID     *int64
	Position       *int
	Clear          []string
	UpdatedAt      time.Time
}

// Clears reports whether the patch nulls out the given column.
func (p TaskPatch) Clears(field string) bool {
	return slices.Contains(p.Clear, field)
}

// Apply merges the patch into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.EstimatedHours != nil {
		t.EstimatedHours = p.EstimatedHours
	}
	if p.ActualHours != nil {
		t.ActualHours = *p.ActualHours
	}
	if p.AssigneeID != nil {
		t.AssigneeID = p.AssigneeID
	}
	if p.CategoryID != nil {
		t.CategoryID = p.CategoryID
	}
	if p.Position != nil {
		t.Position = *p.Position
	}
	for _, f := range p.Clear {
		switch f {
		case FieldDescription:
			t.Description = nil
		case FieldDueDate:
			t.DueDate = nil
		case FieldEstimatedHours:
			t.EstimatedHours = nil
		case FieldAssigneeID:
			t.AssigneeID = nil
		case FieldCategoryID:
			t.CategoryID = nil
		}
	}
	if !p.UpdatedAt.IsZero() {
		t.UpdatedAt = p.UpdatedAt
	}
}

// Columns returns the patch as a column/value map for an UPDATE statement.
func (p TaskPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols[FieldDescription] = *p.Description
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.Priority != nil {
		cols["priority"] = *p.Priority
	}
	if p.DueDate != nil {
		cols[FieldDueDate] = *p.DueDate
	}
	if p.EstimatedHours != nil {
		cols[FieldEstimatedHours] = *p.EstimatedHours
	}
	if p.ActualHours != nil {
		cols["actual_hours"] = *p.ActualHours
	}
	if p.AssigneeID != nil {
		cols[FieldAssigneeID] = *p.AssigneeID
	}
	if p.CategoryID != nil {
		cols[FieldCategoryID] = *p.CategoryID
	}
	if p.Position != nil {
		cols["position"] = *p.Position
	}
	for _, f := range p.Clear {
		cols[f] = nil
	}
	if !p.UpdatedAt.IsZero() {
		cols["updated_at"] = p.UpdatedAt
	}
	return cols
}
