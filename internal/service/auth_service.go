package service

import (
	"context"
	"errors"
	"strings"

	"taskflow/internal/auth"
	"taskflow/internal/model"
	"taskflow/internal/repository"

	"github.com/google/uuid"
)

// UserStore is the slice of Storage the auth service needs.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpsertUser(ctx context.Context, user *model.User) error
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login verifies credentials. Unknown users and wrong passwords both yield
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	v := &ValidationError{}
	if username == "" {
		v.add("username", "Username is required")
	}
	if password == "" {
		v.add("password", "Password is required")
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser resolves the session's user id to its public projection. Ids
// with no stored user, the guest sentinel included, are unauthenticated.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*model.PublicUser, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.GetUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

// UpsertUserInput describes an account created from the CLI or bootstrap.
type UpsertUserInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Role      string
}

// EnsureUser creates the user or resets the password and role of an
// existing one with the same username.
func (s *AuthService) EnsureUser(ctx context.Context, in UpsertUserInput) (*model.User, error) {
	v := &ValidationError{}
	if strings.TrimSpace(in.Username) == "" {
		v.add("username", "Username is required")
	}
	if in.Password == "" {
		v.add("password", "Password is required")
	}
	switch in.Role {
	case model.RoleGuest, model.RoleMember, model.RoleAdmin, model.RoleSuperAdmin:
	default:
		v.add("role", "Role must be one of guest, member, admin, super_admin")
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{ID: uuid.NewString()}
	existing, err := s.users.GetUserByUsername(ctx, in.Username)
	switch {
	case err == nil:
		user = existing
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	user.Username = in.Username
	user.PasswordHash = hash
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Role = in.Role
	if in.Email != "" {
		email := in.Email
		user.Email = &email
	}
	if err := s.users.UpsertUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
