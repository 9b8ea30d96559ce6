package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskflow/internal/events"
	"taskflow/internal/logger"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// CreateTaskInput holds the fields accepted when creating a task. Zero
// values for Status and Priority take the defaults.
type CreateTaskInput struct {
	Title          string
	Description    *string
	Status         string
	Priority       string
	DueDate        *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	AssigneeID     *int64
	CategoryID     *int64
	Position       *int
}

// LogTimeInput is a time entry to record against a task.
type LogTimeInput struct {
	TaskID      int64
	MemberID    int64
	Hours       float64
	Description *string
	Date        *time.Time
}

// TaskService owns the task lifecycle: validation, defaults, persistence,
// activity logging and read-side enrichment.
type TaskService struct {
	store     repository.Storage
	publisher events.Publisher
	log       *logger.Logger
	now       Clock
}

func NewTaskService(store repository.Storage, publisher events.Publisher, log *logger.Logger) *TaskService {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &TaskService{
		store:     store,
		publisher: publisher,
		log:       log.WithComponent("task_service"),
		now:       systemClock,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *TaskService) WithClock(now Clock) *TaskService {
	s.now = now
	return s
}

func (s *TaskService) ListTasks(ctx context.Context, filter model.TaskFilter) ([]model.TaskWithDetails, error) {
	tasks, err := s.store.ListTasks(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, tasks)
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*model.TaskWithDetails, error) {
	task, err := s.store.GetTask(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Task")
	}
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, task), nil
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.TaskWithDetails, error) {
	task := model.Task{
		Title:          in.Title,
		Description:    in.Description,
		Status:         in.Status,
		Priority:       in.Priority,
		DueDate:        in.DueDate,
		EstimatedHours: in.EstimatedHours,
		AssigneeID:     in.AssigneeID,
		CategoryID:     in.CategoryID,
	}
	if task.Status == "" {
		task.Status = model.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if in.ActualHours != nil {
		task.ActualHours = *in.ActualHours
	}
	if in.Position != nil {
		task.Position = *in.Position
	}

	v := &ValidationError{}
	checkTitle(v, task.Title)
	checkStatus(v, task.Status)
	checkPriority(v, task.Priority)
	if err := v.orNil(); err != nil {
		return nil, err
	}

	now := s.now()
	task.CreatedAt = now
	task.UpdatedAt = now
	if err := s.store.CreateTask(ctx, &task); err != nil {
		return nil, err
	}

	if err := s.recordActivity(ctx, &model.Activity{
		Type:        model.ActivityCreated,
		TaskID:      &task.ID,
		MemberID:    task.AssigneeID,
		Description: fmt.Sprintf("Task \"%s\" was created", task.Title),
		CreatedAt:   now,
	}); err != nil {
		return nil, err
	}

	return s.enrich(ctx, &task), nil
}

// UpdateTask merges patch into the stored task and stamps updatedAt. A
// status change appends one "updated" activity.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (*model.TaskWithDetails, error) {
	v := &ValidationError{}
	if patch.Title != nil {
		checkTitle(v, *patch.Title)
	}
	if patch.Status != nil {
		checkStatus(v, *patch.Status)
	}
	if patch.Priority != nil {
		checkPriority(v, *patch.Priority)
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetTask(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Task")
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	patch.UpdatedAt = now
	updated, err := s.store.UpdateTask(ctx, id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Task")
	}
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status != existing.Status {
		if err := s.recordActivity(ctx, &model.Activity{
			Type:        model.ActivityUpdated,
			TaskID:      &updated.ID,
			MemberID:    updated.AssigneeID,
			Description: fmt.Sprintf("Task status changed to %s", *patch.Status),
			CreatedAt:   now,
		}); err != nil {
			return nil, err
		}
	}

	return s.enrich(ctx, updated), nil
}

// DeleteTask removes the task. Time entries and activities that reference
// it are left in place.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("Task")
	}
	return nil
}

// LogTime stores the entry unconditionally and adds its hours to the task
// when the task exists.
func (s *TaskService) LogTime(ctx context.Context, in LogTimeInput) (*model.TimeEntry, error) {
	entry := model.TimeEntry{
		TaskID:      in.TaskID,
		MemberID:    in.MemberID,
		Hours:       in.Hours,
		Description: in.Description,
		Date:        s.now(),
	}
	if in.Date != nil {
		entry.Date = *in.Date
	}
	if err := s.store.CreateTimeEntry(ctx, &entry); err != nil {
		return nil, err
	}

	found, err := s.store.AddActualHours(ctx, in.TaskID, in.Hours)
	if err != nil {
		return nil, err
	}
	if !found {
		s.log.Warnw("Time logged against unknown task", "task_id", in.TaskID, "entry_id", entry.ID)
	}
	return &entry, nil
}

func (s *TaskService) ListTimeEntries(ctx context.Context, taskID *int64) ([]model.TimeEntry, error) {
	return s.store.ListTimeEntries(ctx, taskID)
}

func (s *TaskService) recordActivity(ctx context.Context, activity *model.Activity) error {
	if err := s.store.CreateActivity(ctx, activity); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	if err := s.publisher.PublishActivity(ctx, activity); err != nil {
		s.log.Warnw("Failed to publish activity", "activity_id", activity.ID, "error", err)
	}
	return nil
}

func (s *TaskService) enrich(ctx context.Context, task *model.Task) *model.TaskWithDetails {
	details := &model.TaskWithDetails{Task: *task}
	if task.AssigneeID != nil {
		if member, err := s.store.GetTeamMember(ctx, *task.AssigneeID); err == nil {
			details.Assignee = member
		}
	}
	if task.CategoryID != nil {
		if category, err := s.store.GetCategory(ctx, *task.CategoryID); err == nil {
			details.Category = category
		}
	}
	return details
}

func (s *TaskService) enrichAll(ctx context.Context, tasks []model.Task) ([]model.TaskWithDetails, error) {
	members, err := s.store.ListTeamMembers(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	memberByID := make(map[int64]*model.TeamMember, len(members))
	for i := range members {
		memberByID[members[i].ID] = &members[i]
	}
	categoryByID := make(map[int64]*model.Category, len(categories))
	for i := range categories {
		categoryByID[categories[i].ID] = &categories[i]
	}

	out := make([]model.TaskWithDetails, 0, len(tasks))
	for _, t := range tasks {
		details := model.TaskWithDetails{Task: t}
		if t.AssigneeID != nil {
			details.Assignee = memberByID[*t.AssigneeID]
		}
		if t.CategoryID != nil {
			details.Category = categoryByID[*t.CategoryID]
		}
		out = append(out, details)
	}
	return out, nil
}
