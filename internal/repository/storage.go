package repository

import (
	"context"

	"taskflow/internal/model"
)

// Storage is the capability set shared by the relational and in-memory
// stores. Reads that miss return ErrNotFound; deletes report whether a row
// was removed.
type Storage interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpsertUser(ctx context.Context, user *model.User) error

	ListTeamMembers(ctx context.Context) ([]model.TeamMember, error)
	GetTeamMember(ctx context.Context, id int64) (*model.TeamMember, error)
	CreateTeamMember(ctx context.Context, member *model.TeamMember) error
	UpdateTeamMember(ctx context.Context, id int64, patch model.TeamMemberPatch) (*model.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id int64) (bool, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, id int64, patch model.CategoryPatch) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) (bool, error)

	ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	CreateTask(ctx context.Context, task *model.Task) error
	UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
	AddActualHours(ctx context.Context, taskID int64, hours float64) (bool, error)

	ListTimeEntries(ctx context.Context, taskID *int64) ([]model.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, entry *model.TimeEntry) error

	ListActivities(ctx context.Context, limit int) ([]model.Activity, error)
	CreateActivity(ctx context.Context, activity *model.Activity) error

	// ClearAllData removes every team member, category, task, time entry
	// and activity, then restores the default team members. The deletes
	// are not wrapped in a transaction.
	ClearAllData(ctx context.Context) error
	SeedDefaultTeamMembers(ctx context.Context) error

	Ping(ctx context.Context) error
}
