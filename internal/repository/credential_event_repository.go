package repository

import (
	"context"

	"gorm.io/gorm"

	"tutorhub/internal/model"
)

// CredentialEventRepository defines audit log persistence operations.
type CredentialEventRepository interface {
	Create(ctx context.Context, event *model.CredentialEvent) error
	CreateBatch(ctx context.Context, events []model.CredentialEvent) error
	ListBySub(ctx context.Context, sub string) ([]model.CredentialEvent, error)
}

type credentialEventRepository struct {
	db *gorm.DB
}

// NewCredentialEventRepository creates a new credential event repository.
func NewCredentialEventRepository(db *gorm.DB) CredentialEventRepository {
	return &credentialEventRepository{db: db}
}

func (r *credentialEventRepository) Create(ctx context.Context, event *model.CredentialEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *credentialEventRepository) CreateBatch(ctx context.Context, events []model.CredentialEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}

func (r *credentialEventRepository) ListBySub(ctx context.Context, sub string) ([]model.CredentialEvent, error) {
	var events []model.CredentialEvent
	if err := r.db.WithContext(ctx).Where("sub = ?", sub).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
