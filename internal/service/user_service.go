package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tutorhub/internal/cache"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

const userCacheTTL = 5 * time.Minute

func userCacheKey(sub string) string {
	return fmt.Sprintf("user:%s", sub)
}

// PublicProfile is the view of a user exposed without authentication.
// Tutor fields are present only when the subject holds the TUTOR role.
type PublicProfile struct {
	Sub             string                   `json:"sub"`
	Name            string                   `json:"name"`
	Email           string                   `json:"email"`
	Roles           []string                 `json:"roles"`
	Specializations model.SpecializationList `json:"specializations,omitempty"`
	Credentials     []string                 `json:"credentials,omitempty"`
	TokensPerHour   *int                     `json:"tokensPerHour,omitempty"`
}

// RoleRemovalResult describes the outcome of dropping a role from a user.
type RoleRemovalResult struct {
	Message        string   `json:"message"`
	UserDeleted    bool     `json:"userDeleted"`
	RemainingRoles []string `json:"remainingRoles,omitempty"`
}

// RolesInfo is the role summary for the authenticated user.
type RolesInfo struct {
	Sub      string   `json:"sub"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
	HasRoles bool     `json:"hasRoles"`
}

// UserService exposes user CRUD and role management.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserBySub(ctx context.Context, sub string) (*model.User, error)
	GetPublicProfile(ctx context.Context, sub string) (*PublicProfile, error)
	DeleteUser(ctx context.Context, sub string) error
	UpdateRoles(ctx context.Context, sub string, roles []string) (*model.User, error)
	AddRole(ctx context.Context, sub, role string) (*model.User, error)
	GetRoles(ctx context.Context, sub string) (*RolesInfo, error)
	GetTutorRate(ctx context.Context, sub string) (*int, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// GetUserBySub retrieves a user with read-through caching.
func (s *userService) GetUserBySub(ctx context.Context, sub string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(sub)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindBySub(ctx, sub)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(sub), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) GetPublicProfile(ctx context.Context, sub string) (*PublicProfile, error) {
	user, err := s.GetUserBySub(ctx, sub)
	if err != nil {
		return nil, err
	}

	profile := &PublicProfile{
		Sub:   user.Sub,
		Name:  user.Name,
		Email: user.Email,
		Roles: user.Roles,
	}
	if user.HasRole(model.RoleTutor) {
		profile.Specializations = user.Specializations
		profile.Credentials = user.Credentials
		profile.TokensPerHour = user.TokensPerHour
	}
	return profile, nil
}

func (s *userService) DeleteUser(ctx context.Context, sub string) error {
	if _, err := s.GetUserBySub(ctx, sub); err != nil {
		return err
	}
	if err := s.repo.DeleteBySub(ctx, sub); err != nil {
		return fmt.Errorf("delete user %s: %w", sub, err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(sub))
	return nil
}

// UpdateRoles replaces the user's role set.
func (s *userService) UpdateRoles(ctx context.Context, sub string, roles []string) (*model.User, error) {
	if len(roles) == 0 {
		return nil, apperrors.ErrNoRoles
	}
	user, err := s.findFresh(ctx, sub)
	if err != nil {
		return nil, err
	}

	user.Roles = roles
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user %s: %w", sub, err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(sub))
	return user, nil
}

// AddRole appends a role the user does not yet hold.
func (s *userService) AddRole(ctx context.Context, sub, role string) (*model.User, error) {
	user, err := s.findFresh(ctx, sub)
	if err != nil {
		return nil, err
	}
	if user.HasRole(role) {
		return nil, apperrors.ErrRoleAlreadyAssigned
	}

	user.Roles = append(user.Roles, role)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user %s: %w", sub, err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(sub))
	return user, nil
}

func (s *userService) GetRoles(ctx context.Context, sub string) (*RolesInfo, error) {
	user, err := s.GetUserBySub(ctx, sub)
	if err != nil {
		return nil, err
	}
	roles := user.Roles
	if roles == nil {
		roles = model.StringList{}
	}
	return &RolesInfo{
		Sub:      user.Sub,
		Email:    user.Email,
		Name:     user.Name,
		Roles:    roles,
		HasRoles: len(roles) > 0,
	}, nil
}

// GetTutorRate exposes a tutor's hourly rate without authentication.
func (s *userService) GetTutorRate(ctx context.Context, sub string) (*int, error) {
	user, err := s.GetUserBySub(ctx, sub)
	if err != nil {
		return nil, err
	}
	if !user.HasRole(model.RoleTutor) {
		return nil, apperrors.ErrNotTutor
	}
	return user.TokensPerHour, nil
}

// findFresh bypasses the cache for read-modify-write sequences.
func (s *userService) findFresh(ctx context.Context, sub string) (*model.User, error) {
	user, err := s.repo.FindBySub(ctx, sub)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
