package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindBySub(ctx context.Context, sub string) (*model.User, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsBySub(ctx context.Context, sub string) (bool, error) {
	args := m.Called(ctx, sub)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) DeleteBySub(ctx context.Context, sub string) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockCredentialEventRepository is a mock implementation of CredentialEventRepository.
type MockCredentialEventRepository struct {
	mock.Mock
}

func (m *MockCredentialEventRepository) Create(ctx context.Context, event *model.CredentialEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockCredentialEventRepository) CreateBatch(ctx context.Context, events []model.CredentialEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockCredentialEventRepository) ListBySub(ctx context.Context, sub string) ([]model.CredentialEvent, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CredentialEvent), args.Error(1)
}

// MockDocumentStore is a mock implementation of storage.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Store(ctx context.Context, ownerKey, filename string, data []byte) (string, error) {
	args := m.Called(ctx, ownerKey, filename, data)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStore) DeleteByURL(ctx context.Context, url string) (bool, error) {
	args := m.Called(ctx, url)
	return args.Bool(0), args.Error(1)
}

// MockDocumentClassifier is a mock implementation of classifier.DocumentClassifier.
type MockDocumentClassifier struct {
	mock.Mock
}

func (m *MockDocumentClassifier) Classify(ctx context.Context, fileURL string) (*model.ValidationVerdict, error) {
	args := m.Called(ctx, fileURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ValidationVerdict), args.Error(1)
}

// newMockEventRepo returns an event repository that silently accepts any audit
// write; events are logged on a background worker, so expectations on them
// would race the test.
func newMockEventRepo() *MockCredentialEventRepository {
	m := new(MockCredentialEventRepository)
	m.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("CreateBatch", mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}

func newTestTutor(sub string) *model.User {
	return &model.User{
		Sub:   sub,
		Name:  "Tutor One",
		Email: "tutor@example.com",
		Roles: model.StringList{model.RoleTutor},
	}
}

func TestCredentialService_Ingest_Guards(t *testing.T) {
	tests := []struct {
		name          string
		files         []UploadedFile
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:          "empty batch",
			files:         nil,
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrNoFiles,
		},
		{
			name:  "user not found",
			files: []UploadedFile{{Name: "diploma.pdf", Data: []byte("x")}},
			setupMock: func(m *MockUserRepository) {
				m.On("FindBySub", mock.Anything, "tutor-1").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:  "not a tutor",
			files: []UploadedFile{{Name: "diploma.pdf", Data: []byte("x")}},
			setupMock: func(m *MockUserRepository) {
				m.On("FindBySub", mock.Anything, "tutor-1").Return(&model.User{
					Sub:   "tutor-1",
					Roles: model.StringList{model.RoleStudent},
				}, nil)
			},
			expectedError: apperrors.ErrNotTutor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewCredentialService(mockRepo, newMockEventRepo(), new(MockDocumentStore), new(MockDocumentClassifier), nil, 2)
			report, err := service.Ingest(context.Background(), "tutor-1", tt.files)

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, report)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCredentialService_Ingest_AcceptedAndRejected(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockStore := new(MockDocumentStore)
	mockClassifier := new(MockDocumentClassifier)

	user := newTestTutor("tutor-1")
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)

	diplomaURL := "https://files.example.com/bucket/tutor-1/credentials/diploma.pdf"
	selfieURL := "https://files.example.com/bucket/tutor-1/credentials/selfie.png"
	mockStore.On("Store", mock.Anything, "tutor-1", "diploma.pdf", mock.Anything).Return(diplomaURL, nil)
	mockStore.On("Store", mock.Anything, "tutor-1", "selfie.png", mock.Anything).Return(selfieURL, nil)

	mockClassifier.On("Classify", mock.Anything, diplomaURL).Return(&model.ValidationVerdict{
		IsAcademicDocument:     true,
		InferredSpecialization: "Mathematics",
		Confidence:             95,
	}, nil)
	mockClassifier.On("Classify", mock.Anything, selfieURL).Return(&model.ValidationVerdict{
		IsAcademicDocument: false,
		RejectionReason:    "not an academic document",
	}, nil)

	var saved *model.User
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*model.User)
	}).Return(nil).Once()

	service := NewCredentialService(mockRepo, newMockEventRepo(), mockStore, mockClassifier, nil, 2)
	report, err := service.Ingest(context.Background(), "tutor-1", []UploadedFile{
		{Name: "diploma.pdf", Data: []byte("pdf-bytes")},
		{Name: "selfie.png", Data: []byte("png-bytes")},
	})

	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 2, report.Uploaded)
	assert.Equal(t, 1, report.Validated)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, []string{diplomaURL}, report.SavedCredentials)
	assert.True(t, report.TutorVerified)

	// Outcomes keep batch order.
	assert.Equal(t, "diploma.pdf", report.Details[0].FileName)
	assert.Equal(t, model.FileStatusAccepted, report.Details[0].Status)
	assert.True(t, report.Details[0].Saved)
	assert.Equal(t, "Mathematics", report.Details[0].AddedSpecialization)
	assert.Equal(t, "selfie.png", report.Details[1].FileName)
	assert.Equal(t, model.FileStatusRejected, report.Details[1].Status)
	assert.Equal(t, "not an academic document", report.Details[1].Reason)
	assert.False(t, report.Details[1].Saved)

	// Aggregate persisted once with credentials, specialization and flag in step.
	assert.NotNil(t, saved)
	assert.True(t, saved.Credentials.Contains(diplomaURL))
	assert.False(t, saved.Credentials.Contains(selfieURL))
	assert.True(t, saved.IsVerified)
	assert.Len(t, saved.Specializations, 1)
	assert.Equal(t, "Mathematics", saved.Specializations[0].Name)
	assert.True(t, saved.Specializations[0].Verified)
	assert.Equal(t, model.SourceAIValidation, saved.Specializations[0].Source)
	assert.Equal(t, diplomaURL, saved.Specializations[0].DocumentURL)

	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
	mockClassifier.AssertExpectations(t)
}

func TestCredentialService_Ingest_FailuresAreIsolated(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockStore := new(MockDocumentStore)
	mockClassifier := new(MockDocumentClassifier)

	user := newTestTutor("tutor-1")
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)

	goodURL := "https://files.example.com/bucket/tutor-1/credentials/cert.pdf"
	mockStore.On("Store", mock.Anything, "tutor-1", "broken.pdf", mock.Anything).Return("", errors.New("connection reset"))
	mockStore.On("Store", mock.Anything, "tutor-1", "cert.pdf", mock.Anything).Return(goodURL, nil)
	mockClassifier.On("Classify", mock.Anything, goodURL).Return(&model.ValidationVerdict{IsAcademicDocument: true}, nil)

	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()

	service := NewCredentialService(mockRepo, newMockEventRepo(), mockStore, mockClassifier, nil, 2)
	report, err := service.Ingest(context.Background(), "tutor-1", []UploadedFile{
		{Name: "broken.pdf", Data: []byte("x")},
		{Name: "cert.pdf", Data: []byte("y")},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 1, report.Uploaded)
	assert.Equal(t, 1, report.Validated)
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, model.FileStatusError, report.Details[0].Status)
	assert.Equal(t, "connection reset", report.Details[0].Error)
	assert.False(t, report.Details[0].Uploaded)
	assert.Equal(t, model.FileStatusAccepted, report.Details[1].Status)
	assert.Equal(t, []string{goodURL}, report.SavedCredentials)

	mockRepo.AssertExpectations(t)
}

func TestCredentialService_Ingest_InvalidUploadRejectedLocally(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockStore := new(MockDocumentStore)
	mockClassifier := new(MockDocumentClassifier)

	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(newTestTutor("tutor-1"), nil)

	service := NewCredentialService(mockRepo, newMockEventRepo(), mockStore, mockClassifier, nil, 2)
	report, err := service.Ingest(context.Background(), "tutor-1", []UploadedFile{
		{Name: "notes.txt", Data: []byte("plain text")},
		{Name: "empty.pdf", Data: nil},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, report.Uploaded)
	assert.Equal(t, 0, report.Validated)
	assert.Equal(t, 2, report.Rejected)
	assert.Equal(t, model.FileStatusError, report.Details[0].Status)
	assert.Equal(t, model.FileStatusError, report.Details[1].Status)
	assert.Equal(t, ErrEmptyFile.Error(), report.Details[1].Error)
	assert.False(t, report.TutorVerified)

	// Nothing reached storage or the classifier, nothing was persisted.
	mockStore.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockClassifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCredentialService_Ingest_DuplicateSpecializationName(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockStore := new(MockDocumentStore)
	mockClassifier := new(MockDocumentClassifier)

	firstDocURL := "https://files.example.com/bucket/tutor-1/credentials/first.pdf"
	user := newTestTutor("tutor-1")
	user.IsVerified = true
	user.Credentials = model.StringList{firstDocURL}
	user.Specializations = model.SpecializationList{
		{Name: "Mathematics", Verified: true, Source: model.SourceAIValidation, DocumentURL: firstDocURL},
	}
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)

	secondDocURL := "https://files.example.com/bucket/tutor-1/credentials/second.pdf"
	mockStore.On("Store", mock.Anything, "tutor-1", "second.pdf", mock.Anything).Return(secondDocURL, nil)
	mockClassifier.On("Classify", mock.Anything, secondDocURL).Return(&model.ValidationVerdict{
		IsAcademicDocument:     true,
		InferredSpecialization: "mathematics", // same subject, different case
	}, nil)

	var saved *model.User
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*model.User)
	}).Return(nil).Once()

	service := NewCredentialService(mockRepo, newMockEventRepo(), mockStore, mockClassifier, nil, 2)
	report, err := service.Ingest(context.Background(), "tutor-1", []UploadedFile{
		{Name: "second.pdf", Data: []byte("pdf")},
	})

	assert.NoError(t, err)
	assert.Equal(t, model.FileStatusAccepted, report.Details[0].Status)
	assert.Empty(t, report.Details[0].AddedSpecialization)

	// The credential is kept, the specialization list is not duplicated.
	assert.Len(t, saved.Specializations, 1)
	assert.Equal(t, firstDocURL, saved.Specializations[0].DocumentURL)
	assert.True(t, saved.Credentials.Contains(secondDocURL))
	mockRepo.AssertExpectations(t)
}

func TestCredentialService_Ingest_DeadlineKeepsAcceptedFiles(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockStore := new(MockDocumentStore)
	mockClassifier := new(MockDocumentClassifier)

	user := newTestTutor("tutor-1")
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	firstURL := "https://files.example.com/bucket/tutor-1/credentials/first.pdf"
	mockStore.On("Store", mock.Anything, "tutor-1", "first.pdf", mock.Anything).Return(firstURL, nil)
	// The caller's deadline expires right after the first file is accepted.
	mockClassifier.On("Classify", mock.Anything, firstURL).Run(func(mock.Arguments) {
		cancel()
	}).Return(&model.ValidationVerdict{IsAcademicDocument: true}, nil)

	var saved *model.User
	var saveCtxErr error
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		saveCtxErr = args.Get(0).(context.Context).Err()
		saved = args.Get(1).(*model.User)
	}).Return(nil).Once()

	// A single worker processes the batch in order, so the second file sees
	// the cancelled context before any of its work starts.
	service := NewCredentialService(mockRepo, newMockEventRepo(), mockStore, mockClassifier, nil, 1)
	report, err := service.Ingest(ctx, "tutor-1", []UploadedFile{
		{Name: "first.pdf", Data: []byte("pdf")},
		{Name: "second.pdf", Data: []byte("pdf")},
	})

	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, model.FileStatusAccepted, report.Details[0].Status)
	assert.Equal(t, model.FileStatusError, report.Details[1].Status)
	assert.Equal(t, "timeout", report.Details[1].Error)
	assert.Equal(t, []string{firstURL}, report.SavedCredentials)

	// The merge is persisted on a detached context so the accepted file
	// survives the expired deadline.
	assert.NoError(t, saveCtxErr)
	assert.NotNil(t, saved)
	assert.True(t, saved.Credentials.Contains(firstURL))
	assert.True(t, saved.IsVerified)

	mockRepo.AssertExpectations(t)
	mockStore.AssertNotCalled(t, "Store", mock.Anything, "tutor-1", "second.pdf", mock.Anything)
}

func TestCredentialService_Close_FlushesBufferedEvents(t *testing.T) {
	mockEventRepo := new(MockCredentialEventRepository)
	var flushed []model.CredentialEvent
	mockEventRepo.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		flushed = append(flushed, args.Get(1).([]model.CredentialEvent)...)
	}).Return(nil)

	service := NewCredentialService(new(MockUserRepository), mockEventRepo, new(MockDocumentStore), new(MockDocumentClassifier), nil, 2).(*credentialService)
	service.logEvent(context.Background(), "tutor-1", model.CredentialActionIngest, "https://files.example.com/x.pdf", "accepted", "")

	// Close blocks until the worker has drained the channel.
	service.Close()
	assert.Len(t, flushed, 1)
	assert.Equal(t, "tutor-1", flushed[0].Sub)
	assert.Equal(t, "accepted", flushed[0].Status)

	// A second Close is a no-op.
	service.Close()
}

func TestCredentialService_Remove(t *testing.T) {
	u1 := "https://files.example.com/bucket/tutor-1/credentials/a.pdf"
	u2 := "https://files.example.com/bucket/tutor-1/credentials/b.pdf"
	u3 := "https://files.example.com/bucket/tutor-1/credentials/c.pdf"
	u4 := "https://files.example.com/bucket/tutor-1/credentials/unknown.pdf"

	mockRepo := new(MockUserRepository)
	mockStore := new(MockDocumentStore)

	user := newTestTutor("tutor-1")
	user.IsVerified = true
	user.Credentials = model.StringList{u1, u2, u3}
	user.Specializations = model.SpecializationList{
		{Name: "Mathematics", Verified: true, Source: model.SourceAIValidation, DocumentURL: u1},
		{Name: "Chemistry", Verified: false, Source: model.SourceManual},
	}
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)

	var saved *model.User
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*model.User)
	}).Return(nil).Once()
	mockStore.On("DeleteByURL", mock.Anything, u1).Return(true, nil)

	service := NewCredentialService(mockRepo, newMockEventRepo(), mockStore, new(MockDocumentClassifier), nil, 2)
	// u1 listed twice: the first occurrence removes it, the second has
	// nothing left to match and is reported as not found.
	report, err := service.Remove(context.Background(), "tutor-1", []string{u1, u1, u4})

	assert.NoError(t, err)
	assert.Equal(t, 1, report.RemovedCount)
	assert.Equal(t, []string{u1}, report.RemovedURLs)
	assert.Equal(t, []string{u1, u4}, report.NotFound)
	assert.Equal(t, []string{"Mathematics"}, report.RemovedSpecializations)
	assert.Equal(t, []string{u2, u3}, report.RemainingCredentials)
	assert.Equal(t, 1, report.DeletedFromStorage)
	assert.Empty(t, report.StorageDeleteFailed)
	assert.True(t, report.TutorVerified)

	// The unverified manual entry survives the cascade.
	assert.Len(t, saved.Specializations, 1)
	assert.Equal(t, "Chemistry", saved.Specializations[0].Name)
	assert.True(t, saved.IsVerified)

	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestCredentialService_Remove_LastCredentialUnverifies(t *testing.T) {
	u1 := "https://files.example.com/bucket/tutor-1/credentials/only.pdf"

	mockRepo := new(MockUserRepository)
	mockStore := new(MockDocumentStore)

	user := newTestTutor("tutor-1")
	user.IsVerified = true
	user.Credentials = model.StringList{u1}
	user.Specializations = model.SpecializationList{
		{Name: "Physics", Verified: true, Source: model.SourceAIValidation, DocumentURL: u1},
	}
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)

	var saved *model.User
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*model.User)
	}).Return(nil).Once()
	mockStore.On("DeleteByURL", mock.Anything, u1).Return(true, nil)

	service := NewCredentialService(mockRepo, newMockEventRepo(), mockStore, new(MockDocumentClassifier), nil, 2)
	report, err := service.Remove(context.Background(), "tutor-1", []string{u1})

	assert.NoError(t, err)
	assert.False(t, report.TutorVerified)
	assert.Empty(t, report.RemainingCredentials)
	assert.False(t, saved.IsVerified)
	assert.Empty(t, saved.Credentials)
	assert.Empty(t, saved.Specializations)
	mockRepo.AssertExpectations(t)
}

func TestCredentialService_Remove_StorageFailureDoesNotFailCall(t *testing.T) {
	u1 := "https://files.example.com/bucket/tutor-1/credentials/a.pdf"

	mockRepo := new(MockUserRepository)
	mockStore := new(MockDocumentStore)

	user := newTestTutor("tutor-1")
	user.IsVerified = true
	user.Credentials = model.StringList{u1}
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(user, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Once()
	mockStore.On("DeleteByURL", mock.Anything, u1).Return(false, errors.New("bucket unreachable"))

	service := NewCredentialService(mockRepo, newMockEventRepo(), mockStore, new(MockDocumentClassifier), nil, 2)
	report, err := service.Remove(context.Background(), "tutor-1", []string{u1})

	// The aggregate update already happened; blob deletion is best effort.
	assert.NoError(t, err)
	assert.Equal(t, 1, report.RemovedCount)
	assert.Equal(t, 0, report.DeletedFromStorage)
	assert.Equal(t, []string{u1}, report.StorageDeleteFailed)
	mockRepo.AssertExpectations(t)
}

func TestCredentialService_Remove_NoCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindBySub", mock.Anything, "tutor-1").Return(newTestTutor("tutor-1"), nil)

	service := NewCredentialService(mockRepo, newMockEventRepo(), new(MockDocumentStore), new(MockDocumentClassifier), nil, 2)
	report, err := service.Remove(context.Background(), "tutor-1", []string{"https://files.example.com/x.pdf"})

	assert.NoError(t, err)
	assert.Equal(t, 0, report.RemovedCount)
	assert.Equal(t, []string{"https://files.example.com/x.pdf"}, report.NotFound)
	assert.Empty(t, report.RemovedURLs)
	assert.Empty(t, report.RemainingCredentials)
	assert.False(t, report.TutorVerified)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
