package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"tutorhub/internal/cache"
	"tutorhub/internal/classifier"
	apperrors "tutorhub/internal/errors"
	"tutorhub/internal/model"
	"tutorhub/internal/repository"
	"tutorhub/internal/storage"
)

const defaultIngestWorkers = 4

// UploadedFile is one file inside an ingestion batch.
type UploadedFile struct {
	Name string
	Data []byte
}

// CredentialService drives credential ingestion and removal for tutors.
//
// Both operations read the user aggregate fresh, mutate the credential list,
// the specialization list and the verified flag together in memory, and write
// the aggregate back exactly once. Per-file failures are reported, not raised.
type CredentialService interface {
	Ingest(ctx context.Context, sub string, files []UploadedFile) (*model.BatchReport, error)
	Remove(ctx context.Context, sub string, urls []string) (*model.RemovalReport, error)
	// Close stops the audit worker after flushing any buffered events.
	Close()
}

type credentialService struct {
	userRepo  repository.UserRepository
	eventRepo repository.CredentialEventRepository
	store     storage.DocumentStore
	classify  classifier.DocumentClassifier
	ledger    *SpecializationLedger
	validator *UploadValidator
	cache     *cache.Client
	workers   int
	// Channel for async audit logging
	eventChannel chan model.CredentialEvent
	workerDone   chan struct{}
	closeOnce    sync.Once
}

// NewCredentialService creates a new credential service. workers bounds the
// concurrent per-file work inside one ingestion batch.
func NewCredentialService(
	userRepo repository.UserRepository,
	eventRepo repository.CredentialEventRepository,
	store storage.DocumentStore,
	classify classifier.DocumentClassifier,
	cache *cache.Client,
	workers int,
) CredentialService {
	if workers <= 0 {
		workers = defaultIngestWorkers
	}
	service := &credentialService{
		userRepo:     userRepo,
		eventRepo:    eventRepo,
		store:        store,
		classify:     classify,
		ledger:       NewSpecializationLedger(),
		validator:    NewUploadValidator(),
		cache:        cache,
		workers:      workers,
		eventChannel: make(chan model.CredentialEvent, 100),
		workerDone:   make(chan struct{}),
	}

	// Start async audit worker
	go service.eventWorker(context.Background())

	return service
}

// Close closes the event channel and waits for the worker to flush the
// remaining batch. Safe to call more than once.
func (s *credentialService) Close() {
	s.closeOnce.Do(func() {
		close(s.eventChannel)
		<-s.workerDone
	})
}

// eventWorker writes audit events in batches.
func (s *credentialService) eventWorker(ctx context.Context) {
	defer close(s.workerDone)
	batch := make([]model.CredentialEvent, 0, 10)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-s.eventChannel:
			if !ok {
				if len(batch) > 0 {
					_ = s.eventRepo.CreateBatch(ctx, batch)
				}
				return
			}
			batch = append(batch, event)
			if len(batch) >= 10 {
				_ = s.eventRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				_ = s.eventRepo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ctx.Done():
			return
		}
	}
}

// logEvent records an audit event asynchronously.
func (s *credentialService) logEvent(ctx context.Context, sub string, action model.CredentialAction, documentURL, status, detail string) {
	event := model.CredentialEvent{
		Sub:         sub,
		Action:      action,
		DocumentURL: documentURL,
		Status:      status,
		Detail:      detail,
	}

	select {
	case s.eventChannel <- event:
	default:
		// Channel full, write synchronously as fallback
		_ = s.eventRepo.Create(ctx, &event)
	}
}

// tutor loads the user aggregate and enforces the TUTOR role guard.
func (s *credentialService) tutor(ctx context.Context, sub string) (*model.User, error) {
	user, err := s.userRepo.FindBySub(ctx, sub)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", sub, err)
	}
	if !user.HasRole(model.RoleTutor) {
		return nil, apperrors.ErrNotTutor
	}
	return user, nil
}

// Ingest stores, classifies and reconciles one upload batch. Files are
// processed independently: a failure on one never affects the others. The
// aggregate is saved once, after every file has finished.
func (s *credentialService) Ingest(ctx context.Context, sub string, files []UploadedFile) (*model.BatchReport, error) {
	if len(files) == 0 {
		return nil, apperrors.ErrNoFiles
	}

	user, err := s.tutor(ctx, sub)
	if err != nil {
		return nil, err
	}

	outcomes := make([]model.FileOutcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, file := range files {
		g.Go(func() error {
			outcomes[i] = s.processFile(gctx, user.Sub, file)
			return nil
		})
	}
	// Workers never return errors; per-file failures live in the outcomes.
	_ = g.Wait()

	// Apply accepted files in input order under single-writer discipline.
	specs := user.Specializations
	var validURLs []string
	for i := range outcomes {
		outcome := &outcomes[i]
		if outcome.Status != model.FileStatusAccepted {
			continue
		}
		validURLs = append(validURLs, outcome.UploadedURL)
		if outcome.Validation != nil && outcome.Validation.InferredSpecialization != "" {
			next := s.ledger.AddVerified(specs, outcome.Validation.InferredSpecialization, outcome.UploadedURL)
			if len(next) > len(specs) {
				outcome.AddedSpecialization = outcome.Validation.InferredSpecialization
			}
			specs = next
		}
	}

	if len(validURLs) > 0 {
		credentials := user.Credentials
		for _, u := range validURLs {
			if !credentials.Contains(u) {
				credentials = append(credentials, u)
			}
		}
		user.Credentials = credentials
		user.Specializations = specs
		// Verification is monotonic: set here, unset only by removal.
		user.IsVerified = true
		// The caller's deadline may have expired mid-batch. Files already
		// accepted stay accepted, so the final merge persists regardless.
		saveCtx := context.WithoutCancel(ctx)
		if err := s.userRepo.Save(saveCtx, user); err != nil {
			return nil, fmt.Errorf("%w: persist user %s: %v", apperrors.ErrUpstream, sub, err)
		}
		_ = s.cache.Delete(saveCtx, userCacheKey(sub))
	}

	report := &model.BatchReport{
		TotalFiles:       len(files),
		Details:          outcomes,
		SavedCredentials: append([]string{}, validURLs...),
		TutorVerified:    user.IsVerified,
	}
	for _, outcome := range outcomes {
		if outcome.Uploaded {
			report.Uploaded++
		}
		if outcome.Status == model.FileStatusAccepted {
			report.Validated++
		} else {
			report.Rejected++
		}
		s.logEvent(ctx, sub, model.CredentialActionIngest, outcome.UploadedURL, string(outcome.Status), firstNonEmpty(outcome.Error, outcome.Reason))
	}
	return report, nil
}

// processFile runs the store-then-classify steps for a single file and
// reports the outcome. It never returns an error: unclassifiable means not
// trusted, so every failure ends in a rejected or error status.
func (s *credentialService) processFile(ctx context.Context, sub string, file UploadedFile) model.FileOutcome {
	outcome := model.FileOutcome{FileName: file.Name}

	if ctx.Err() != nil {
		outcome.Status = model.FileStatusError
		outcome.Error = "timeout"
		return outcome
	}

	if err := s.validator.Validate(file.Name, file.Data); err != nil {
		outcome.Status = model.FileStatusError
		outcome.Error = err.Error()
		return outcome
	}

	fileURL, err := s.store.Store(ctx, sub, file.Name, file.Data)
	if err != nil {
		outcome.Status = model.FileStatusError
		outcome.Error = failureMessage(err)
		return outcome
	}
	outcome.Uploaded = true
	outcome.UploadedURL = fileURL

	verdict, err := s.classify.Classify(ctx, fileURL)
	if err != nil {
		outcome.Status = model.FileStatusError
		outcome.Error = failureMessage(err)
		return outcome
	}
	outcome.Validation = verdict

	if verdict.IsAcademicDocument {
		outcome.Status = model.FileStatusAccepted
		outcome.Saved = true
	} else {
		outcome.Status = model.FileStatusRejected
		outcome.Reason = verdict.RejectionReason
	}
	return outcome
}

// Remove deletes credential URLs from the aggregate, cascades the removal to
// dependent verified specializations, recomputes the verified flag and
// persists once. Blob deletion runs only after persistence succeeds and is
// best effort: the persisted aggregate is the source of truth.
func (s *credentialService) Remove(ctx context.Context, sub string, urls []string) (*model.RemovalReport, error) {
	user, err := s.tutor(ctx, sub)
	if err != nil {
		return nil, err
	}

	// Idempotent fast path: nothing to remove from.
	if len(user.Credentials) == 0 {
		return &model.RemovalReport{
			RemovedURLs:            []string{},
			NotFound:               append([]string{}, urls...),
			RemovedSpecializations: []string{},
			RemainingCredentials:   []string{},
			StorageDeleteFailed:    []string{},
			TutorVerified:          false,
		}, nil
	}

	var removedURLs, notFound []string
	remaining := make(model.StringList, 0, len(user.Credentials))
	removedSet := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		// A repeated URL removes once; the second occurrence has nothing
		// left to match and is reported as not found.
		if _, dup := removedSet[u]; !dup && user.Credentials.Contains(u) {
			removedSet[u] = struct{}{}
			removedURLs = append(removedURLs, u)
			continue
		}
		notFound = append(notFound, u)
	}
	for _, c := range user.Credentials {
		if _, gone := removedSet[c]; !gone {
			remaining = append(remaining, c)
		}
	}

	specs, removedNames := s.ledger.CascadeRemoval(user.Specializations, removedSet)

	user.Credentials = remaining
	user.Specializations = specs
	if len(remaining) == 0 {
		user.IsVerified = false
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: persist user %s: %v", apperrors.ErrUpstream, sub, err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(sub))

	report := &model.RemovalReport{
		RemovedCount:           len(removedURLs),
		RemovedURLs:            emptyIfNil(removedURLs),
		NotFound:               emptyIfNil(notFound),
		RemovedSpecializations: emptyIfNil(removedNames),
		RemainingCredentials:   append([]string{}, remaining...),
		StorageDeleteFailed:    []string{},
		TutorVerified:          user.IsVerified,
	}

	for _, u := range removedURLs {
		ok, err := s.store.DeleteByURL(ctx, u)
		if err != nil || !ok {
			report.StorageDeleteFailed = append(report.StorageDeleteFailed, u)
			s.logEvent(ctx, sub, model.CredentialActionRemove, u, "delete_failed", failureMessage(err))
			continue
		}
		report.DeletedFromStorage++
		s.logEvent(ctx, sub, model.CredentialActionRemove, u, "removed", "")
	}

	return report, nil
}

// failureMessage collapses context expiry into a stable label for reports.
func failureMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "timeout"
	}
	return err.Error()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
