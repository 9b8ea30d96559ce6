package service_test

import (
	"context"
	"errors"
	"testing"

	"taskflow/internal/auth"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserStore) UpsertUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserStore)
	user := &model.User{ID: "u-1", Username: "alice", PasswordHash: hashed(t, "password123"), Role: model.RoleAdmin}
	users.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil)

	got, err := service.NewAuthService(users).Login(context.Background(), "alice", "password123")

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	users.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserStore)
	user := &model.User{ID: "u-1", Username: "alice", PasswordHash: hashed(t, "password123")}
	users.On("GetUserByUsername", mock.Anything, "alice").Return(user, nil)

	_, err := service.NewAuthService(users).Login(context.Background(), "alice", "nope")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := new(MockUserStore)
	users.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, err := service.NewAuthService(users).Login(context.Background(), "ghost", "x")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	users := new(MockUserStore)

	_, err := service.NewAuthService(users).Login(context.Background(), "", "")

	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 2)
	users.AssertNotCalled(t, "GetUserByUsername", mock.Anything, mock.Anything)
}

func TestCurrentUser(t *testing.T) {
	users := new(MockUserStore)
	email := "bob@company.com"
	users.On("GetUser", mock.Anything, "u-2").Return(&model.User{ID: "u-2", Username: "bob", Email: &email, Role: model.RoleMember}, nil)
	users.On("GetUser", mock.Anything, "gone").Return(nil, repository.ErrNotFound)
	users.On("GetUser", mock.Anything, model.GuestUserID).Return(nil, repository.ErrNotFound)
	svc := service.NewAuthService(users)

	got, err := svc.CurrentUser(context.Background(), "u-2")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, &email, got.Email)

	_, err = svc.CurrentUser(context.Background(), model.GuestUserID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	_, err = svc.CurrentUser(context.Background(), "gone")
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	_, err = svc.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestEnsureUser_CreatesAndUpdates(t *testing.T) {
	store := repository.NewMemoryStorage()
	svc := service.NewAuthService(store)
	ctx := context.Background()

	created, err := svc.EnsureUser(ctx, service.UpsertUserInput{Username: "admin", Password: "first", Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := svc.EnsureUser(ctx, service.UpsertUserInput{Username: "admin", Password: "second", Role: model.RoleSuperAdmin})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	_, err = svc.Login(ctx, "admin", "first")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	user, err := svc.Login(ctx, "admin", "second")
	require.NoError(t, err)
	assert.Equal(t, model.RoleSuperAdmin, user.Role)
}

func TestEnsureUser_RejectsUnknownRole(t *testing.T) {
	svc := service.NewAuthService(repository.NewMemoryStorage())

	_, err := svc.EnsureUser(context.Background(), service.UpsertUserInput{Username: "x", Password: "y", Role: "owner"})

	var verr *service.ValidationError
	assert.True(t, errors.As(err, &verr))
}
