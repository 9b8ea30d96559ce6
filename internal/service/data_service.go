package service

import (
	"context"
	"fmt"
	"time"

	"taskflow/internal/logger"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// DataService holds the administrative bulk operations.
type DataService struct {
	store repository.Storage
	tasks *TaskService
	log   *logger.Logger
	now   Clock
}

func NewDataService(store repository.Storage, tasks *TaskService, log *logger.Logger) *DataService {
	return &DataService{
		store: store,
		tasks: tasks,
		log:   log.WithComponent("data_service"),
		now:   systemClock,
	}
}

// ClearAllData wipes every domain table except users and re-seeds the
// default team members. The steps are not atomic.
func (s *DataService) ClearAllData(ctx context.Context) error {
	if err := s.store.ClearAllData(ctx); err != nil {
		return err
	}
	s.log.Infow("All data cleared and default team members restored")
	return nil
}

type sampleTask struct {
	title       string
	description string
	status      string
	priority    string
	dueIn       time.Duration
	estimated   float64
	member      int
	category    int
	position    int
}

var sampleCategories = []model.Category{
	{Name: "Marketing", Color: "#3b82f6"},
	{Name: "Development", Color: "#10b981"},
	{Name: "Design", Color: "#8b5cf6"},
	{Name: "Analytics", Color: "#f59e0b"},
}

const day = 24 * time.Hour

var sampleTasks = []sampleTask{
	{"Redesign landing page", "Update the main landing page with new branding and improved UX", model.StatusInProgress, model.PriorityHigh, 7 * day, 20, 1, 2, 0},
	{"Implement user authentication", "Add login and registration functionality with secure sessions", model.StatusTodo, model.PriorityUrgent, 3 * day, 16, 2, 1, 0},
	{"Social media campaign launch", "Coordinate the launch of Q1 social media campaign across all platforms", model.StatusCompleted, model.PriorityMedium, -2 * day, 12, 0, 0, 0},
	{"Set up analytics dashboard", "Configure analytics and create a custom dashboard for tracking KPIs", model.StatusTodo, model.PriorityMedium, 14 * day, 8, 3, 3, 1},
}

// SeedSample adds demo categories and tasks on top of the default team.
// Tasks go through TaskService so each gets its "created" activity.
func (s *DataService) SeedSample(ctx context.Context) error {
	if err := s.store.SeedDefaultTeamMembers(ctx); err != nil {
		return err
	}
	members, err := s.store.ListTeamMembers(ctx)
	if err != nil {
		return err
	}

	categoryIDs := make([]int64, 0, len(sampleCategories))
	for _, c := range sampleCategories {
		category := c
		if err := s.store.CreateCategory(ctx, &category); err != nil {
			return fmt.Errorf("seed category %s: %w", category.Name, err)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	now := s.now()
	for _, st := range sampleTasks {
		description := st.description
		due := now.Add(st.dueIn)
		estimated := st.estimated
		actual := float64(int(st.estimated * 0.3))
		if st.status == model.StatusCompleted {
			actual = st.estimated
		}
		in := CreateTaskInput{
			Title:          st.title,
			Description:    &description,
			Status:         st.status,
			Priority:       st.priority,
			DueDate:        &due,
			EstimatedHours: &estimated,
			ActualHours:    &actual,
			CategoryID:     &categoryIDs[st.category],
			Position:       &st.position,
		}
		if st.member < len(members) {
			in.AssigneeID = &members[st.member].ID
		}
		if _, err := s.tasks.CreateTask(ctx, in); err != nil {
			return fmt.Errorf("seed task %q: %w", st.title, err)
		}
	}

	s.log.Infow("Sample data seeded", "categories", len(categoryIDs), "tasks", len(sampleTasks))
	return nil
}
