package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

func strPtr(s string) *string { return &s }

func TestProfileService_UpdateStudentProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	user := &model.User{
		Sub:            "student-1",
		Name:           "Alice",
		Email:          "alice@example.com",
		Roles:          model.StringList{model.RoleStudent},
		EducationLevel: "High school",
	}
	mockRepo.On("FindBySub", mock.Anything, "student-1").Return(user, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()

	service := NewProfileService(mockRepo, nil)
	profile, err := service.UpdateStudentProfile(context.Background(), "student-1", StudentProfileUpdate{
		EducationLevel: strPtr("Undergraduate"),
		PhoneNumber:    strPtr("+15550000001"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Undergraduate", profile.EducationLevel)
	assert.Equal(t, "+15550000001", profile.PhoneNumber)
	// Unset fields stay untouched.
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "alice@example.com", profile.Email)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateStudentProfile_Guards(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "user not found",
			setupMock: func(m *MockUserRepository) {
				m.On("FindBySub", mock.Anything, "student-1").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name: "not a student",
			setupMock: func(m *MockUserRepository) {
				m.On("FindBySub", mock.Anything, "student-1").Return(&model.User{
					Sub:   "student-1",
					Roles: model.StringList{model.RoleTutor},
				}, nil)
			},
			expectedError: apperrors.ErrNotStudent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewProfileService(mockRepo, nil)
			profile, err := service.UpdateStudentProfile(context.Background(), "student-1", StudentProfileUpdate{})

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, profile)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProfileService_UpdateTutorProfile_PreservesVerifiedSpecializations(t *testing.T) {
	docURL := "https://files.example.com/bucket/tutor-1/credentials/math.pdf"
	mockRepo := new(MockUserRepository)
	user := &model.User{
		Sub:   "tutor-1",
		Name:  "Carla",
		Email: "carla@example.com",
		Roles: model.StringList{model.RoleTutor},
		Specializations: model.SpecializationList{
			{Name: "Mathematics", Verified: true, Source: model.SourceAIValidation, DocumentURL: docURL},
			{Name: "History", Verified: false, Source: model.SourceManual},
		},
	}
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()

	service := NewProfileService(mockRepo, nil)
	// The edit omits Mathematics and tries to self-declare a verified entry.
	profile, err := service.UpdateTutorProfile(context.Background(), "tutor-1", TutorProfileUpdate{
		Bio: strPtr("Mathematics tutor."),
		Specializations: model.SpecializationList{
			{Name: "Chemistry", Verified: true},
			{Name: "Biology"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Mathematics tutor.", profile.Bio)

	names := make([]string, 0, len(profile.Specializations))
	for _, spec := range profile.Specializations {
		names = append(names, spec.Name)
	}
	// Verified survives, the manual-only History is dropped, the self-declared
	// verified Chemistry is ignored, Biology is added as manual.
	assert.Equal(t, []string{"Mathematics", "Biology"}, names)
	assert.True(t, profile.Specializations[0].Verified)
	assert.False(t, profile.Specializations[1].Verified)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_RemoveTutorRole(t *testing.T) {
	t.Run("other role remains", func(t *testing.T) {
		rate := 20
		mockRepo := new(MockUserRepository)
		user := &model.User{
			Sub:           "eva-1",
			Roles:         model.StringList{model.RoleStudent, model.RoleTutor},
			Bio:           "Languages tutor.",
			Credentials:   model.StringList{"https://files.example.com/bucket/eva-1/credentials/a.pdf"},
			IsVerified:    true,
			TokensPerHour: &rate,
		}
		mockRepo.On("FindBySub", mock.Anything, "eva-1").Return(user, nil)

		var saved *model.User
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
		}).Return(nil).Once()

		service := NewProfileService(mockRepo, nil)
		result, err := service.RemoveTutorRole(context.Background(), "eva-1")

		assert.NoError(t, err)
		assert.False(t, result.UserDeleted)
		assert.Equal(t, []string{model.RoleStudent}, result.RemainingRoles)

		// All tutor-only data is gone.
		assert.Empty(t, saved.Bio)
		assert.Empty(t, saved.Credentials)
		assert.Empty(t, saved.Specializations)
		assert.False(t, saved.IsVerified)
		assert.Nil(t, saved.TokensPerHour)
		mockRepo.AssertExpectations(t)
	})

	t.Run("last role deletes the user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		user := &model.User{
			Sub:   "tutor-1",
			Roles: model.StringList{model.RoleTutor},
		}
		mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)
		mockRepo.On("DeleteBySub", mock.Anything, "tutor-1").Return(nil).Once()

		service := NewProfileService(mockRepo, nil)
		result, err := service.RemoveTutorRole(context.Background(), "tutor-1")

		assert.NoError(t, err)
		assert.True(t, result.UserDeleted)
		assert.Empty(t, result.RemainingRoles)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestProfileService_UpdateTokensPerHour(t *testing.T) {
	mockRepo := new(MockUserRepository)
	user := &model.User{
		Sub:   "tutor-1",
		Roles: model.StringList{model.RoleTutor},
	}
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()

	service := NewProfileService(mockRepo, nil)
	profile, err := service.UpdateTokensPerHour(context.Background(), "tutor-1", 25)

	assert.NoError(t, err)
	assert.NotNil(t, profile.TokensPerHour)
	assert.Equal(t, 25, *profile.TokensPerHour)
	mockRepo.AssertExpectations(t)
}
