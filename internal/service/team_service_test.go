package service_test

import (
	"context"
	"errors"
	"testing"

	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_MemberLifecycle(t *testing.T) {
	svc := service.NewTeamService(repository.NewMemoryStorage())
	ctx := context.Background()

	member, err := svc.CreateTeamMember(ctx, model.TeamMember{Name: "Ada", Email: "ada@company.com", Role: "Developer"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), member.ID)

	role := "Architect"
	updated, err := svc.UpdateTeamMember(ctx, member.ID, model.TeamMemberPatch{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "Architect", updated.Role)
	assert.Equal(t, "Ada", updated.Name)

	require.NoError(t, svc.DeleteTeamMember(ctx, member.ID))

	var nf *service.NotFoundError
	require.True(t, errors.As(svc.DeleteTeamMember(ctx, member.ID), &nf))
	assert.Equal(t, "Team member not found", nf.Error())
}

func TestTeamService_DuplicateEmailIsValidationError(t *testing.T) {
	svc := service.NewTeamService(repository.NewMemoryStorage())

	_, err := svc.CreateTeamMember(context.Background(), model.TeamMember{Name: "Dup", Email: "joseph@company.com", Role: "QA"})

	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Errors[0].Field)
}

func TestTeamService_InvalidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{name: "no at sign", email: "not-an-email"},
		{name: "display name form", email: "Bob <bob@company.com>"},
		{name: "empty", email: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := repository.NewMemoryStorage()
			svc := service.NewTeamService(store)
			ctx := context.Background()

			_, err := svc.CreateTeamMember(ctx, model.TeamMember{Name: "Bob", Email: tt.email, Role: "QA"})

			var verr *service.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "email", verr.Errors[0].Field)

			members, err := store.ListTeamMembers(ctx)
			require.NoError(t, err)
			assert.Len(t, members, 4)
		})
	}
}

func TestTeamService_CategoryLifecycle(t *testing.T) {
	svc := service.NewTeamService(repository.NewMemoryStorage())
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, model.Category{Name: "Ops"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategoryColor, category.Color)

	color := "#10b981"
	updated, err := svc.UpdateCategory(ctx, category.ID, model.CategoryPatch{Color: &color})
	require.NoError(t, err)
	assert.Equal(t, color, updated.Color)

	_, err = svc.UpdateCategory(ctx, 999, model.CategoryPatch{Color: &color})
	var nf *service.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Category not found", nf.Error())

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))
	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}
