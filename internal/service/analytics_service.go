package service

import (
	"context"
	"math"
	"sort"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

const (
	trendWeeks         = 12
	timeTrackingWindow = 30 * 24 * time.Hour
)

type StatusStat struct {
	Status       string `json:"status"`
	Count        int    `json:"count"`
	OverdueCount int    `json:"overdue_count"`
}

type MemberPerformance struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	OverdueTasks   int     `json:"overdue_tasks"`
	CompletionRate float64 `json:"completion_rate"`
}

type CategoryStat struct {
	ID                 int64   `json:"id"`
	CategoryName       string  `json:"category_name"`
	Color              string  `json:"color"`
	TaskCount          int     `json:"task_count"`
	CompletedCount     int     `json:"completed_count"`
	AvgCompletionHours float64 `json:"avg_completion_hours"`
}

type TimeTrackingRow struct {
	MemberID   int64     `json:"member_id"`
	TeamMember string    `json:"team_member"`
	WeekStart  time.Time `json:"week_start"`
	TotalHours float64   `json:"total_hours"`
}

type ProductivityWeek struct {
	WeekStart      time.Time `json:"week_start"`
	TasksCreated   int       `json:"tasks_created"`
	TasksCompleted int       `json:"tasks_completed"`
}

type MemberWorkload struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	PendingTasks      int    `json:"pending_tasks"`
	ActiveTasks       int    `json:"active_tasks"`
	HighPriorityTasks int    `json:"high_priority_tasks"`
	OverdueTasks      int    `json:"overdue_tasks"`
}

type DashboardStats struct {
	TotalTasks int `json:"totalTasks"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
	Todo       int `json:"todo"`
}

// AnalyticsService computes read-only report projections.
type AnalyticsService struct {
	store repository.Storage
	now   Clock
}

func NewAnalyticsService(store repository.Storage) *AnalyticsService {
	return &AnalyticsService{store: store, now: systemClock}
}

func (s *AnalyticsService) WithClock(now Clock) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) allTasks(ctx context.Context) ([]model.Task, error) {
	return s.store.ListTasks(ctx, model.TaskFilter{})
}

func (s *AnalyticsService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	tasks, err := s.allTasks(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	stats := &DashboardStats{TotalTasks: len(tasks)}
	for i := range tasks {
		switch tasks[i].Status {
		case model.StatusTodo:
			stats.Todo++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusCompleted:
			stats.Completed++
		}
		if tasks[i].IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats, nil
}

// StatusDistribution always reports all three statuses, in lifecycle order.
func (s *AnalyticsService) StatusDistribution(ctx context.Context) ([]StatusStat, error) {
	tasks, err := s.allTasks(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	index := make(map[string]int, len(model.TaskStatuses))
	out := make([]StatusStat, len(model.TaskStatuses))
	for i, status := range model.TaskStatuses {
		index[status] = i
		out[i].Status = status
	}
	for i := range tasks {
		pos, ok := index[tasks[i].Status]
		if !ok {
			continue
		}
		out[pos].Count++
		if tasks[i].IsOverdue(now) {
			out[pos].OverdueCount++
		}
	}
	return out, nil
}

func (s *AnalyticsService) TeamPerformance(ctx context.Context) ([]MemberPerformance, error) {
	members, err := s.store.ListTeamMembers(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.allTasks(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	out := make([]MemberPerformance, len(members))
	index := make(map[int64]int, len(members))
	for i, m := range members {
		index[m.ID] = i
		out[i] = MemberPerformance{ID: m.ID, Name: m.Name, Role: m.Role}
	}
	for i := range tasks {
		t := &tasks[i]
		if t.AssigneeID == nil {
			continue
		}
		pos, ok := index[*t.AssigneeID]
		if !ok {
			continue
		}
		out[pos].TotalTasks++
		if t.Status == model.StatusCompleted {
			out[pos].CompletedTasks++
		}
		if t.IsOverdue(now) {
			out[pos].OverdueTasks++
		}
	}
	for i := range out {
		out[i].CompletionRate = completionRate(out[i].CompletedTasks, out[i].TotalTasks)
	}
	return out, nil
}

func (s *AnalyticsService) CategoryDistribution(ctx context.Context) ([]CategoryStat, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.allTasks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CategoryStat, len(categories))
	index := make(map[int64]int, len(categories))
	completedHours := make([]float64, len(categories))
	for i, c := range categories {
		index[c.ID] = i
		out[i] = CategoryStat{ID: c.ID, CategoryName: c.Name, Color: c.Color}
	}
	for i := range tasks {
		t := &tasks[i]
		if t.CategoryID == nil {
			continue
		}
		pos, ok := index[*t.CategoryID]
		if !ok {
			continue
		}
		out[pos].TaskCount++
		if t.Status == model.StatusCompleted {
			out[pos].CompletedCount++
			completedHours[pos] += t.UpdatedAt.Sub(t.CreatedAt).Hours()
		}
	}
	for i := range out {
		if out[i].CompletedCount > 0 {
			out[i].AvgCompletionHours = round2(completedHours[i] / float64(out[i].CompletedCount))
		}
	}
	return out, nil
}

// TimeTracking sums logged hours per member per week over the trailing 30
// days. Entries whose member no longer exists are dropped.
func (s *AnalyticsService) TimeTracking(ctx context.Context) ([]TimeTrackingRow, error) {
	members, err := s.store.ListTeamMembers(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.ListTimeEntries(ctx, nil)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	type key struct {
		member int64
		week   time.Time
	}
	cutoff := s.now().Add(-timeTrackingWindow)
	totals := make(map[key]float64)
	for _, e := range entries {
		if e.Date.Before(cutoff) {
			continue
		}
		if _, ok := names[e.MemberID]; !ok {
			continue
		}
		totals[key{member: e.MemberID, week: WeekStart(e.Date)}] += e.Hours
	}

	out := make([]TimeTrackingRow, 0, len(totals))
	for k, hours := range totals {
		out = append(out, TimeTrackingRow{
			MemberID:   k.member,
			TeamMember: names[k.member],
			WeekStart:  k.week,
			TotalHours: round2(hours),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].WeekStart.Equal(out[j].WeekStart) {
			return out[i].WeekStart.Before(out[j].WeekStart)
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out, nil
}

// ProductivityTrends returns twelve weekly buckets, oldest first, ending
// with the current week.
func (s *AnalyticsService) ProductivityTrends(ctx context.Context) ([]ProductivityWeek, error) {
	tasks, err := s.allTasks(ctx)
	if err != nil {
		return nil, err
	}

	current := WeekStart(s.now())
	first := current.AddDate(0, 0, -7*(trendWeeks-1))
	out := make([]ProductivityWeek, trendWeeks)
	for i := range out {
		out[i].WeekStart = first.AddDate(0, 0, 7*i)
	}
	bucket := func(t time.Time) (int, bool) {
		ws := WeekStart(t)
		if ws.Before(first) || ws.After(current) {
			return 0, false
		}
		return int(ws.Sub(first).Hours() / (24 * 7)), true
	}

	for i := range tasks {
		t := &tasks[i]
		if pos, ok := bucket(t.CreatedAt); ok {
			out[pos].TasksCreated++
		}
		if t.Status == model.StatusCompleted {
			if pos, ok := bucket(t.UpdatedAt); ok {
				out[pos].TasksCompleted++
			}
		}
	}
	return out, nil
}

func (s *AnalyticsService) WorkloadDistribution(ctx context.Context) ([]MemberWorkload, error) {
	members, err := s.store.ListTeamMembers(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.allTasks(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	out := make([]MemberWorkload, len(members))
	index := make(map[int64]int, len(members))
	for i, m := range members {
		index[m.ID] = i
		out[i] = MemberWorkload{ID: m.ID, Name: m.Name, Role: m.Role}
	}
	for i := range tasks {
		t := &tasks[i]
		if t.AssigneeID == nil {
			continue
		}
		pos, ok := index[*t.AssigneeID]
		if !ok {
			continue
		}
		switch t.Status {
		case model.StatusTodo:
			out[pos].PendingTasks++
		case model.StatusInProgress:
			out[pos].ActiveTasks++
		}
		if t.Status != model.StatusCompleted && (t.Priority == model.PriorityHigh || t.Priority == model.PriorityUrgent) {
			out[pos].HighPriorityTasks++
		}
		if t.IsOverdue(now) {
			out[pos].OverdueTasks++
		}
	}
	return out, nil
}

// WeekStart returns Monday 00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)
}

func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(completed) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
