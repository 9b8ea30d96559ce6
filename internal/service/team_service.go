package service

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// TeamService manages team members and categories.
type TeamService struct {
	store repository.Storage
}

func NewTeamService(store repository.Storage) *TeamService {
	return &TeamService{store: store}
}

func (s *TeamService) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	return s.store.ListTeamMembers(ctx)
}

func (s *TeamService) CreateTeamMember(ctx context.Context, member model.TeamMember) (*model.TeamMember, error) {
	v := &ValidationError{}
	checkMember(v, &member.Name, &member.Email, &member.Role)
	if err := v.orNil(); err != nil {
		return nil, err
	}
	if err := s.store.CreateTeamMember(ctx, &member); err != nil {
		return nil, duplicateEmail(err)
	}
	return &member, nil
}

func (s *TeamService) UpdateTeamMember(ctx context.Context, id int64, patch model.TeamMemberPatch) (*model.TeamMember, error) {
	v := &ValidationError{}
	checkMember(v, patch.Name, patch.Email, patch.Role)
	if err := v.orNil(); err != nil {
		return nil, err
	}
	member, err := s.store.UpdateTeamMember(ctx, id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Team member")
	}
	if err != nil {
		return nil, duplicateEmail(err)
	}
	return member, nil
}

// DeleteTeamMember leaves tasks assigned to the member pointing at the
// missing id.
func (s *TeamService) DeleteTeamMember(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteTeamMember(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("Team member")
	}
	return nil
}

func (s *TeamService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *TeamService) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	v := &ValidationError{}
	if strings.TrimSpace(category.Name) == "" {
		v.add("name", "Name is required")
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}
	if category.Color == "" {
		category.Color = model.DefaultCategoryColor
	}
	if err := s.store.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *TeamService) UpdateCategory(ctx context.Context, id int64, patch model.CategoryPatch) (*model.Category, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, &ValidationError{Errors: []FieldError{{Field: "name", Message: "Name is required"}}}
	}
	category, err := s.store.UpdateCategory(ctx, id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Category")
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *TeamService) DeleteCategory(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFound("Category")
	}
	return nil
}

func checkMember(v *ValidationError, name, email, role *string) {
	if name != nil && strings.TrimSpace(*name) == "" {
		v.add("name", "Name is required")
	}
	if email != nil {
		checkVar(v, "email", *email, "email", "Invalid email")
	}
	if role != nil && strings.TrimSpace(*role) == "" {
		v.add("role", "Role is required")
	}
}

func duplicateEmail(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return &ValidationError{Errors: []FieldError{{Field: "email", Message: "Email already in use"}}}
	}
	return err
}
