package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskflow/internal/model"
)

// MemoryStorage keeps every table in process maps. It is used by tests and
// by local runs with STORAGE_DRIVER=memory.
type MemoryStorage struct {
	mu sync.RWMutex

	users       map[string]model.User
	teamMembers map[int64]model.TeamMember
	categories  map[int64]model.Category
	tasks       map[int64]model.Task
	timeEntries map[int64]model.TimeEntry
	activities  map[int64]model.Activity

	nextID map[string]int64
	now    func() time.Time
}

var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage returns an empty store seeded with the default team
// members.
func NewMemoryStorage() *MemoryStorage {
	s := &MemoryStorage{
		users:       make(map[string]model.User),
		teamMembers: make(map[int64]model.TeamMember),
		categories:  make(map[int64]model.Category),
		tasks:       make(map[int64]model.Task),
		timeEntries: make(map[int64]model.TimeEntry),
		activities:  make(map[int64]model.Activity),
		nextID:      make(map[string]int64),
		now:         time.Now,
	}
	s.seedMembersLocked()
	return s
}

// SetClock overrides the time source used for timestamps.
func (s *MemoryStorage) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *MemoryStorage) id(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

func (s *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Users

func (s *MemoryStorage) GetUser(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStorage) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) UpsertUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username {
			return ErrDuplicate
		}
		if user.Email != nil && u.Email != nil && *u.Email == *user.Email {
			return ErrDuplicate
		}
	}
	now := s.now()
	if existing, ok := s.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

// Team members

func (s *MemoryStorage) ListTeamMembers(_ context.Context) ([]model.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]model.TeamMember, 0, len(s.teamMembers))
	for _, m := range s.teamMembers {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (s *MemoryStorage) GetTeamMember(_ context.Context, id int64) (*model.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.teamMembers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemoryStorage) emailTakenLocked(email string, except int64) bool {
	for id, m := range s.teamMembers {
		if id != except && m.Email == email {
			return true
		}
	}
	return false
}

func (s *MemoryStorage) CreateTeamMember(_ context.Context, member *model.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emailTakenLocked(member.Email, 0) {
		return ErrDuplicate
	}
	member.ID = s.id("team_members")
	s.teamMembers[member.ID] = *member
	return nil
}

func (s *MemoryStorage) UpdateTeamMember(_ context.Context, id int64, patch model.TeamMemberPatch) (*model.TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.teamMembers[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil && s.emailTakenLocked(*patch.Email, id) {
		return nil, ErrDuplicate
	}
	patch.Apply(&m)
	s.teamMembers[id] = m
	return &m, nil
}

func (s *MemoryStorage) DeleteTeamMember(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teamMembers[id]; !ok {
		return false, nil
	}
	delete(s.teamMembers, id)
	return true, nil
}

// Categories

func (s *MemoryStorage) ListCategories(_ context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *MemoryStorage) GetCategory(_ context.Context, id int64) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStorage) CreateCategory(_ context.Context, category *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if category.Color == "" {
		category.Color = model.DefaultCategoryColor
	}
	category.ID = s.id("categories")
	s.categories[category.ID] = *category
	return nil
}

func (s *MemoryStorage) UpdateCategory(_ context.Context, id int64, patch model.CategoryPatch) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&c)
	s.categories[id] = c
	return &c, nil
}

func (s *MemoryStorage) DeleteCategory(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}

// Tasks

func (s *MemoryStorage) ListTasks(_ context.Context, filter model.TaskFilter) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		switch {
		case filter.Status != "":
			if t.Status != filter.Status {
				continue
			}
		case filter.AssigneeID != nil:
			if t.AssigneeID == nil || *t.AssigneeID != *filter.AssigneeID {
				continue
			}
		case filter.CategoryID != nil:
			if t.CategoryID == nil || *t.CategoryID != *filter.CategoryID {
				continue
			}
		}
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Position != tasks[j].Position {
			return tasks[i].Position < tasks[j].Position
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

func (s *MemoryStorage) GetTask(_ context.Context, id int64) (*model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStorage) CreateTask(_ context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}
	task.ID = s.id("tasks")
	s.tasks[task.ID] = *task
	return nil
}

func (s *MemoryStorage) UpdateTask(_ context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&t)
	s.tasks[id] = t
	return &t, nil
}

func (s *MemoryStorage) DeleteTask(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	delete(s.tasks, id)
	return true, nil
}

func (s *MemoryStorage) AddActualHours(_ context.Context, taskID int64, hours float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return false, nil
	}
	t.ActualHours += hours
	s.tasks[taskID] = t
	return true, nil
}

// Time entries

func (s *MemoryStorage) ListTimeEntries(_ context.Context, taskID *int64) ([]model.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]model.TimeEntry, 0, len(s.timeEntries))
	for _, e := range s.timeEntries {
		if taskID != nil && e.TaskID != *taskID {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

func (s *MemoryStorage) CreateTimeEntry(_ context.Context, entry *model.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}
	entry.ID = s.id("time_entries")
	s.timeEntries[entry.ID] = *entry
	return nil
}

// Activities

func (s *MemoryStorage) ListActivities(_ context.Context, limit int) ([]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	activities := make([]model.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		activities = append(activities, a)
	}
	sort.Slice(activities, func(i, j int) bool {
		if !activities[i].CreatedAt.Equal(activities[j].CreatedAt) {
			return activities[i].CreatedAt.After(activities[j].CreatedAt)
		}
		return activities[i].ID > activities[j].ID
	})
	if limit >= 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (s *MemoryStorage) CreateActivity(_ context.Context, activity *model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = s.now()
	}
	activity.ID = s.id("activities")
	s.activities[activity.ID] = *activity
	return nil
}

// Data management

func (s *MemoryStorage) ClearAllData(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeEntries = make(map[int64]model.TimeEntry)
	s.activities = make(map[int64]model.Activity)
	s.tasks = make(map[int64]model.Task)
	s.categories = make(map[int64]model.Category)
	s.teamMembers = make(map[int64]model.TeamMember)
	s.seedMembersLocked()
	return nil
}

func (s *MemoryStorage) SeedDefaultTeamMembers(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedMembersLocked()
	return nil
}

func (s *MemoryStorage) seedMembersLocked() {
	for _, m := range model.DefaultTeamMembers() {
		if s.emailTakenLocked(m.Email, 0) {
			continue
		}
		m.ID = s.id("team_members")
		s.teamMembers[m.ID] = m
	}
}
