package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tutorhub/internal/cache"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
)

// StudentProfile is the student view of a user.
type StudentProfile struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	IDType         string `json:"idType,omitempty"`
	IDNumber       string `json:"idNumber,omitempty"`
	EducationLevel string `json:"educationLevel,omitempty"`
}

// StudentProfileUpdate carries the editable student fields; nil means "leave unchanged".
type StudentProfileUpdate struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	PhoneNumber    *string `json:"phoneNumber"`
	IDType         *string `json:"idType"`
	IDNumber       *string `json:"idNumber"`
	EducationLevel *string `json:"educationLevel"`
}

// TutorProfile is the tutor view of a user.
type TutorProfile struct {
	Name            string                   `json:"name"`
	Email           string                   `json:"email"`
	PhoneNumber     string                   `json:"phoneNumber"`
	IDType          string                   `json:"idType,omitempty"`
	IDNumber        string                   `json:"idNumber,omitempty"`
	Bio             string                   `json:"bio,omitempty"`
	Specializations model.SpecializationList `json:"specializations"`
	Credentials     []string                 `json:"credentials"`
	IsVerified      bool                     `json:"isVerified"`
	TokensPerHour   *int                     `json:"tokensPerHour,omitempty"`
}

// TutorProfileUpdate carries the editable tutor fields; nil means "leave
// unchanged". Incoming specializations go through the ledger: verified
// entries on the profile survive any manual edit.
type TutorProfileUpdate struct {
	Name            *string                  `json:"name"`
	Email           *string                  `json:"email" validate:"omitempty,email"`
	PhoneNumber     *string                  `json:"phoneNumber"`
	IDType          *string                  `json:"idType"`
	IDNumber        *string                  `json:"idNumber"`
	Bio             *string                  `json:"bio"`
	Specializations model.SpecializationList `json:"specializations"`
	TokensPerHour   *int                     `json:"tokensPerHour" validate:"omitempty,gte=0"`
}

// ProfileService exposes role-guarded profile operations.
type ProfileService interface {
	GetStudentProfile(ctx context.Context, sub string) (*StudentProfile, error)
	UpdateStudentProfile(ctx context.Context, sub string, update StudentProfileUpdate) (*StudentProfile, error)
	RemoveStudentRole(ctx context.Context, sub string) (*RoleRemovalResult, error)
	GetTutorProfile(ctx context.Context, sub string) (*TutorProfile, error)
	UpdateTutorProfile(ctx context.Context, sub string, update TutorProfileUpdate) (*TutorProfile, error)
	RemoveTutorRole(ctx context.Context, sub string) (*RoleRemovalResult, error)
	GetProfileStatus(ctx context.Context, sub, role string) (*model.ProfileStatus, error)
	GetTokensPerHour(ctx context.Context, sub string) (*int, error)
	UpdateTokensPerHour(ctx context.Context, sub string, rate int) (*TutorProfile, error)
}

type profileService struct {
	repo   repository.UserRepository
	ledger *SpecializationLedger
	cache  *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.UserRepository, cache *cache.Client) ProfileService {
	return &profileService{
		repo:   repo,
		ledger: NewSpecializationLedger(),
		cache:  cache,
	}
}

func (s *profileService) load(ctx context.Context, sub string) (*model.User, error) {
	user, err := s.repo.FindBySub(ctx, sub)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", sub, err)
	}
	return user, nil
}

func (s *profileService) loadStudent(ctx context.Context, sub string) (*model.User, error) {
	user, err := s.load(ctx, sub)
	if err != nil {
		return nil, err
	}
	if !user.HasRole(model.RoleStudent) {
		return nil, apperrors.ErrNotStudent
	}
	return user, nil
}

func (s *profileService) loadTutor(ctx context.Context, sub string) (*model.User, error) {
	user, err := s.load(ctx, sub)
	if err != nil {
		return nil, err
	}
	if !user.HasRole(model.RoleTutor) {
		return nil, apperrors.ErrNotTutor
	}
	return user, nil
}

func (s *profileService) save(ctx context.Context, user *model.User) error {
	if err := s.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("save user %s: %w", user.Sub, err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(user.Sub))
	return nil
}

func (s *profileService) GetStudentProfile(ctx context.Context, sub string) (*StudentProfile, error) {
	user, err := s.loadStudent(ctx, sub)
	if err != nil {
		return nil, err
	}
	return studentProfileOf(user), nil
}

func (s *profileService) UpdateStudentProfile(ctx context.Context, sub string, update StudentProfileUpdate) (*StudentProfile, error) {
	user, err := s.loadStudent(ctx, sub)
	if err != nil {
		return nil, err
	}

	applyIfSet(&user.Name, update.Name)
	applyIfSet(&user.Email, update.Email)
	applyIfSet(&user.PhoneNumber, update.PhoneNumber)
	applyIfSet(&user.IDType, update.IDType)
	applyIfSet(&user.IDNumber, update.IDNumber)
	applyIfSet(&user.EducationLevel, update.EducationLevel)

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return studentProfileOf(user), nil
}

// RemoveStudentRole drops the STUDENT role and clears student-only fields.
// A user left with no roles is deleted entirely.
func (s *profileService) RemoveStudentRole(ctx context.Context, sub string) (*RoleRemovalResult, error) {
	user, err := s.loadStudent(ctx, sub)
	if err != nil {
		return nil, err
	}
	user.EducationLevel = ""
	return s.removeRole(ctx, user, model.RoleStudent, "student profile removed")
}

func (s *profileService) GetTutorProfile(ctx context.Context, sub string) (*TutorProfile, error) {
	user, err := s.loadTutor(ctx, sub)
	if err != nil {
		return nil, err
	}
	return tutorProfileOf(user), nil
}

func (s *profileService) UpdateTutorProfile(ctx context.Context, sub string, update TutorProfileUpdate) (*TutorProfile, error) {
	user, err := s.loadTutor(ctx, sub)
	if err != nil {
		return nil, err
	}

	applyIfSet(&user.Name, update.Name)
	applyIfSet(&user.Email, update.Email)
	applyIfSet(&user.PhoneNumber, update.PhoneNumber)
	applyIfSet(&user.IDType, update.IDType)
	applyIfSet(&user.IDNumber, update.IDNumber)
	applyIfSet(&user.Bio, update.Bio)
	if update.TokensPerHour != nil {
		user.TokensPerHour = update.TokensPerHour
	}
	if update.Specializations != nil {
		user.Specializations = s.ledger.ReconcileManualUpdate(user.Specializations, update.Specializations)
	}

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return tutorProfileOf(user), nil
}

// RemoveTutorRole drops the TUTOR role and clears every tutor-only field,
// verification included. A user left with no roles is deleted entirely.
func (s *profileService) RemoveTutorRole(ctx context.Context, sub string) (*RoleRemovalResult, error) {
	user, err := s.loadTutor(ctx, sub)
	if err != nil {
		return nil, err
	}
	user.Bio = ""
	user.Specializations = nil
	user.Credentials = nil
	user.IsVerified = false
	user.TokensPerHour = nil
	return s.removeRole(ctx, user, model.RoleTutor, "tutor profile removed")
}

func (s *profileService) removeRole(ctx context.Context, user *model.User, role, message string) (*RoleRemovalResult, error) {
	remaining := make(model.StringList, 0, len(user.Roles))
	for _, r := range user.Roles {
		if !strings.EqualFold(r, role) {
			remaining = append(remaining, r)
		}
	}
	user.Roles = remaining

	if len(remaining) == 0 {
		if err := s.repo.DeleteBySub(ctx, user.Sub); err != nil {
			return nil, fmt.Errorf("delete user %s: %w", user.Sub, err)
		}
		_ = s.cache.Delete(ctx, userCacheKey(user.Sub))
		return &RoleRemovalResult{
			Message:     message + "; user deleted",
			UserDeleted: true,
		}, nil
	}

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return &RoleRemovalResult{
		Message:        message,
		RemainingRoles: remaining,
	}, nil
}

func (s *profileService) GetProfileStatus(ctx context.Context, sub, role string) (*model.ProfileStatus, error) {
	user, err := s.load(ctx, sub)
	if err != nil {
		return nil, err
	}
	return EvaluateProfileStatus(user, role)
}

func (s *profileService) GetTokensPerHour(ctx context.Context, sub string) (*int, error) {
	user, err := s.loadTutor(ctx, sub)
	if err != nil {
		return nil, err
	}
	return user.TokensPerHour, nil
}

func (s *profileService) UpdateTokensPerHour(ctx context.Context, sub string, rate int) (*TutorProfile, error) {
	user, err := s.loadTutor(ctx, sub)
	if err != nil {
		return nil, err
	}
	user.TokensPerHour = &rate
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return tutorProfileOf(user), nil
}

func studentProfileOf(user *model.User) *StudentProfile {
	return &StudentProfile{
		Name:           user.Name,
		Email:          user.Email,
		PhoneNumber:    user.PhoneNumber,
		IDType:         user.IDType,
		IDNumber:       user.IDNumber,
		EducationLevel: user.EducationLevel,
	}
}

func tutorProfileOf(user *model.User) *TutorProfile {
	credentials := user.Credentials
	if credentials == nil {
		credentials = model.StringList{}
	}
	specializations := user.Specializations
	if specializations == nil {
		specializations = model.SpecializationList{}
	}
	return &TutorProfile{
		Name:            user.Name,
		Email:           user.Email,
		PhoneNumber:     user.PhoneNumber,
		IDType:          user.IDType,
		IDNumber:        user.IDNumber,
		Bio:             user.Bio,
		Specializations: specializations,
		Credentials:     credentials,
		IsVerified:      user.IsVerified,
		TokensPerHour:   user.TokensPerHour,
	}
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
