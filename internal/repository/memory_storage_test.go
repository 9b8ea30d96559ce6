package repository_test

import (
	"context"
	"testing"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestMemoryStorage_SeedsDefaultMembers(t *testing.T) {
	store := repository.NewMemoryStorage()

	members, err := store.ListTeamMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 4)
	assert.Equal(t, "zacchaeus@company.com", members[0].Email)
	assert.Equal(t, int64(1), members[0].ID)
}

func TestMemoryStorage_TeamMemberEmailUnique(t *testing.T) {
	store := repository.NewMemoryStorage()
	ctx := context.Background()

	err := store.CreateTeamMember(ctx, &model.TeamMember{Name: "Dup", Email: "glory@company.com", Role: "QA"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	email := "joseph@company.com"
	_, err = store.UpdateTeamMember(ctx, 1, model.TeamMemberPatch{Email: &email})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestMemoryStorage_ListTasksFilterPrecedence(t *testing.T) {
	store := repository.NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, store.CreateTask(ctx, &model.Task{Title: "a", Status: model.StatusTodo, Priority: model.PriorityLow, AssigneeID: int64Ptr(1), Position: 2}))
	require.NoError(t, store.CreateTask(ctx, &model.Task{Title: "b", Status: model.StatusCompleted, Priority: model.PriorityLow, AssigneeID: int64Ptr(1), Position: 1}))
	require.NoError(t, store.CreateTask(ctx, &model.Task{Title: "c", Status: model.StatusTodo, Priority: model.PriorityLow, CategoryID: int64Ptr(5), Position: 1}))

	all, err := store.ListTasks(ctx, model.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{all[0].Title, all[1].Title, all[2].Title})

	byStatus, err := store.ListTasks(ctx, model.TaskFilter{Status: model.StatusTodo, AssigneeID: int64Ptr(1)})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	byAssignee, err := store.ListTasks(ctx, model.TaskFilter{AssigneeID: int64Ptr(1), CategoryID: int64Ptr(5)})
	require.NoError(t, err)
	assert.Len(t, byAssignee, 2)

	byCategory, err := store.ListTasks(ctx, model.TaskFilter{CategoryID: int64Ptr(5)})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "c", byCategory[0].Title)
}

func TestMemoryStorage_UpdateTaskClearsNullableFields(t *testing.T) {
	store := repository.NewMemoryStorage()
	ctx := context.Background()

	desc := "details"
	task := &model.Task{Title: "t", Status: model.StatusTodo, Priority: model.PriorityMedium, Description: &desc, AssigneeID: int64Ptr(2)}
	require.NoError(t, store.CreateTask(ctx, task))

	updated, err := store.UpdateTask(ctx, task.ID, model.TaskPatch{
		Clear: []string{model.FieldDescription, model.FieldAssigneeID},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.AssigneeID)

	_, err = store.UpdateTask(ctx, 999, model.TaskPatch{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryStorage_AddActualHours(t *testing.T) {
	store := repository.NewMemoryStorage()
	ctx := context.Background()

	task := &model.Task{Title: "t", Status: model.StatusTodo, Priority: model.PriorityMedium}
	require.NoError(t, store.CreateTask(ctx, task))

	ok, err := store.AddActualHours(ctx, task.ID, 1.5)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = store.AddActualHours(ctx, task.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, got.ActualHours, 1e-9)

	ok, err = store.AddActualHours(ctx, 404, 1)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStorage_ActivitiesNewestFirstWithLimit(t *testing.T) {
	store := repository.NewMemoryStorage()
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.CreateActivity(ctx, &model.Activity{
			Type:        model.ActivityCreated,
			Description: "a",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	activities, err := store.ListActivities(ctx, 3)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, int64(5), activities[0].ID)
	assert.Equal(t, int64(3), activities[2].ID)
}

func TestMemoryStorage_ClearAllDataRestoresDefaults(t *testing.T) {
	store := repository.NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, store.CreateTeamMember(ctx, &model.TeamMember{Name: "Extra", Email: "extra@company.com", Role: "QA"}))
	require.NoError(t, store.CreateCategory(ctx, &model.Category{Name: "Ops"}))
	task := &model.Task{Title: "t", Status: model.StatusTodo, Priority: model.PriorityMedium}
	require.NoError(t, store.CreateTask(ctx, task))
	require.NoError(t, store.CreateTimeEntry(ctx, &model.TimeEntry{TaskID: task.ID, MemberID: 1, Hours: 1}))

	require.NoError(t, store.ClearAllData(ctx))

	members, _ := store.ListTeamMembers(ctx)
	categories, _ := store.ListCategories(ctx)
	tasks, _ := store.ListTasks(ctx, model.TaskFilter{})
	entries, _ := store.ListTimeEntries(ctx, nil)
	assert.Len(t, members, 4)
	assert.Empty(t, categories)
	assert.Empty(t, tasks)
	assert.Empty(t, entries)
}

func TestMemoryStorage_CategoryDefaultColorAndOrphans(t *testing.T) {
	store := repository.NewMemoryStorage()
	ctx := context.Background()

	category := &model.Category{Name: "Design"}
	require.NoError(t, store.CreateCategory(ctx, category))
	assert.Equal(t, model.DefaultCategoryColor, category.Color)

	task := &model.Task{Title: "t", Status: model.StatusTodo, Priority: model.PriorityMedium, CategoryID: &category.ID}
	require.NoError(t, store.CreateTask(ctx, task))

	deleted, err := store.DeleteCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := store.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, category.ID, *got.CategoryID)
}
