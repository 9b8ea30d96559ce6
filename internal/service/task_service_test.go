package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskflow/internal/logger"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishActivity(ctx context.Context, activity *model.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *mockPublisher) Close() error { return nil }

func newTaskService(t *testing.T) (*service.TaskService, *repository.MemoryStorage, *fakeClock) {
	t.Helper()
	store := repository.NewMemoryStorage()
	clock := &fakeClock{t: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)}
	svc := service.NewTaskService(store, nil, logger.NewNop()).WithClock(clock.Now)
	return svc, store, clock
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestCreateTask_Defaults(t *testing.T) {
	svc, store, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, service.CreateTaskInput{Title: "Write release notes"})
	require.NoError(t, err)

	assert.Equal(t, model.StatusTodo, task.Status)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, float64(0), task.ActualHours)
	assert.Equal(t, 0, task.Position)
	assert.Nil(t, task.Assignee)

	activities, err := store.ListActivities(ctx, 10)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, model.ActivityCreated, activities[0].Type)
	assert.Equal(t, `Task "Write release notes" was created`, activities[0].Description)
	assert.Equal(t, task.ID, *activities[0].TaskID)
	assert.Nil(t, activities[0].MemberID)
}

func TestCreateTask_Validation(t *testing.T) {
	svc, _, _ := newTaskService(t)

	_, err := svc.CreateTask(context.Background(), service.CreateTaskInput{Title: "  ", Priority: "critical"})

	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := []string{}
	for _, fe := range verr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"title", "priority"}, fields)
}

func TestCreateTask_EnrichedWithAssigneeAndCategory(t *testing.T) {
	svc, store, _ := newTaskService(t)
	ctx := context.Background()

	category := &model.Category{Name: "Design"}
	require.NoError(t, store.CreateCategory(ctx, category))

	task, err := svc.CreateTask(ctx, service.CreateTaskInput{
		Title:      "Mockups",
		AssigneeID: int64Ptr(2),
		CategoryID: &category.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, task.Assignee)
	assert.Equal(t, "Glory Arogundade", task.Assignee.Name)
	require.NotNil(t, task.Category)
	assert.Equal(t, "Design", task.Category.Name)

	activities, _ := store.ListActivities(ctx, 1)
	require.Len(t, activities, 1)
	assert.Equal(t, int64(2), *activities[0].MemberID)
}

func TestUpdateTask_StatusChangeAppendsOneActivity(t *testing.T) {
	svc, store, clock := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, service.CreateTaskInput{Title: "t"})
	require.NoError(t, err)
	createdAt := task.UpdatedAt

	clock.Advance(time.Minute)
	updated, err := svc.UpdateTask(ctx, task.ID, model.TaskPatch{Status: strPtr(model.StatusInProgress)})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)
	assert.True(t, updated.UpdatedAt.After(createdAt))

	activities, _ := store.ListActivities(ctx, 10)
	require.Len(t, activities, 2)
	assert.Equal(t, model.ActivityUpdated, activities[0].Type)
	assert.Equal(t, "Task status changed to in_progress", activities[0].Description)
}

func TestUpdateTask_NoActivityWithoutStatusChange(t *testing.T) {
	svc, store, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, service.CreateTaskInput{Title: "t"})
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, task.ID, model.TaskPatch{Title: strPtr("renamed")})
	require.NoError(t, err)
	_, err = svc.UpdateTask(ctx, task.ID, model.TaskPatch{Status: strPtr(model.StatusTodo)})
	require.NoError(t, err)

	activities, _ := store.ListActivities(ctx, 10)
	assert.Len(t, activities, 1)
}

func TestUpdateTask_NotFound(t *testing.T) {
	svc, _, _ := newTaskService(t)

	_, err := svc.UpdateTask(context.Background(), 404, model.TaskPatch{Title: strPtr("x")})

	var nf *service.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Task not found", nf.Error())
}

func TestUpdateTask_ClearsNullableFields(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, service.CreateTaskInput{Title: "t", Description: strPtr("d"), AssigneeID: int64Ptr(1)})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, task.ID, model.TaskPatch{Clear: []string{model.FieldDescription, model.FieldAssigneeID}})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.AssigneeID)
	assert.Nil(t, updated.Assignee)
}

func TestDeleteTask(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, service.CreateTaskInput{Title: "t"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID))

	var nf *service.NotFoundError
	assert.True(t, errors.As(svc.DeleteTask(ctx, task.ID), &nf))
}

func TestLogTime_AccumulatesActualHours(t *testing.T) {
	svc, _, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, service.CreateTaskInput{Title: "t"})
	require.NoError(t, err)

	_, err = svc.LogTime(ctx, service.LogTimeInput{TaskID: task.ID, MemberID: 1, Hours: 5})
	require.NoError(t, err)
	_, err = svc.LogTime(ctx, service.LogTimeInput{TaskID: task.ID, MemberID: 1, Hours: 3})
	require.NoError(t, err)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, got.ActualHours, 1e-9)

	entries, err := svc.ListTimeEntries(ctx, &task.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLogTime_MissingTaskStillStoresEntry(t *testing.T) {
	svc, _, clock := newTaskService(t)
	ctx := context.Background()

	entry, err := svc.LogTime(ctx, service.LogTimeInput{TaskID: 999, MemberID: 1, Hours: 2})
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, clock.Now(), entry.Date)

	entries, err := svc.ListTimeEntries(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGetTask_OrphanedAssigneeIsAbsent(t *testing.T) {
	svc, store, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, service.CreateTaskInput{Title: "t", AssigneeID: int64Ptr(3)})
	require.NoError(t, err)
	deleted, err := store.DeleteTeamMember(ctx, 3)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Assignee)
	assert.Equal(t, int64(3), *got.AssigneeID)

	list, err := svc.ListTasks(ctx, model.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Assignee)
}

func TestCreateTask_PublishFailureDoesNotFailRequest(t *testing.T) {
	store := repository.NewMemoryStorage()
	pub := &mockPublisher{}
	pub.On("PublishActivity", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(errors.New("broker down"))
	svc := service.NewTaskService(store, pub, logger.NewNop())

	task, err := svc.CreateTask(context.Background(), service.CreateTaskInput{Title: "t"})

	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	pub.AssertNumberOfCalls(t, "PublishActivity", 1)
}
