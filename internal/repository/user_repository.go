package repository

import (
	"context"

	"gorm.io/gorm"

	"tutorhub/internal/model"
)

// UserRepository defines persistence operations over the user aggregate.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	FindBySub(ctx context.Context, sub string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsBySub(ctx context.Context, sub string) (bool, error)
	DeleteBySub(ctx context.Context, sub string) error
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Save writes the whole aggregate back in one statement. Credential and
// specialization updates always go through here together so the two lists and
// the verified flag can never be persisted out of step.
func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindBySub(ctx context.Context, sub string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("sub = ?", sub).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsBySub(ctx context.Context, sub string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("sub = ?", sub).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) DeleteBySub(ctx context.Context, sub string) error {
	return r.db.WithContext(ctx).Where("sub = ?", sub).Delete(&model.User{}).Error
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
