package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID retrieves a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, userID string) (*auth.User, error) {
	var model UserModel
	err := execWithRetry(ctx, "user.FindByID", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", userID).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("user", userID)
		}
		return nil, err
	}
	return auth.NewUser(model.ID, model.Name, auth.Role(model.Role))
}

// FindAll retrieves all users
func (r *GormUserRepository) FindAll(ctx context.Context) ([]*auth.User, error) {
	var models []UserModel
	err := execWithRetry(ctx, "user.FindAll", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Order("id").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}

	users := make([]*auth.User, 0, len(models))
	for _, model := range models {
		user, err := auth.NewUser(model.ID, model.Name, auth.Role(model.Role))
		if err != nil {
			return nil, fmt.Errorf("failed to convert user %s: %w", model.ID, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// Save persists a user (create or update)
func (r *GormUserRepository) Save(ctx context.Context, user *auth.User) error {
	model := &UserModel{
		ID:   user.ID(),
		Name: user.Name(),
		Role: string(user.Role()),
	}
	return execWithRetry(ctx, "user.Save", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Save(model).Error
	})
}
