package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// GormBerthRepository implements BerthRepository using GORM
type GormBerthRepository struct {
	db *gorm.DB
}

// NewGormBerthRepository creates a new GORM berth repository
func NewGormBerthRepository(db *gorm.DB) *GormBerthRepository {
	return &GormBerthRepository{db: db}
}

// FindByID retrieves a berth by ID
func (r *GormBerthRepository) FindByID(ctx context.Context, berthID string) (*berth.Berth, error) {
	var model BerthModel
	err := execWithRetry(ctx, "berth.FindByID", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", berthID).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("berth", berthID)
		}
		return nil, err
	}

	return r.modelToEntity(&model)
}

// FindAll retrieves all berths in the catalog, ordered by ID
func (r *GormBerthRepository) FindAll(ctx context.Context) ([]*berth.Berth, error) {
	var models []BerthModel
	err := execWithRetry(ctx, "berth.FindAll", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Order("id").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return r.modelsToEntities(models)
}

// FindSuitable retrieves available berths whose capacity fits the given
// dimensions. Ordered by berth ID so repeated calls with unchanged state
// return the same candidate sequence.
func (r *GormBerthRepository) FindSuitable(ctx context.Context, shipLength, shipDraft float64) ([]*berth.Berth, error) {
	var models []BerthModel
	err := execWithRetry(ctx, "berth.FindSuitable", func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("available = ? AND max_length >= ? AND max_draft >= ?", 1, shipLength, shipDraft).
			Order("id").
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return r.modelsToEntities(models)
}

// Save persists a berth (create or update)
func (r *GormBerthRepository) Save(ctx context.Context, b *berth.Berth) error {
	model := r.entityToModel(b)
	return execWithRetry(ctx, "berth.Save", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Save(model).Error
	})
}

func (r *GormBerthRepository) modelsToEntities(models []BerthModel) ([]*berth.Berth, error) {
	berths := make([]*berth.Berth, 0, len(models))
	for i := range models {
		b, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert berth %s: %w", models[i].ID, err)
		}
		berths = append(berths, b)
	}
	return berths, nil
}

func (r *GormBerthRepository) modelToEntity(model *BerthModel) (*berth.Berth, error) {
	return berth.NewBerth(model.ID, model.Name, model.MaxLength, model.MaxDraft, model.Available == 1)
}

func (r *GormBerthRepository) entityToModel(b *berth.Berth) *BerthModel {
	available := 0
	if b.Available() {
		available = 1
	}
	return &BerthModel{
		ID:        b.ID(),
		Name:      b.Name(),
		MaxLength: b.MaxLength(),
		MaxDraft:  b.MaxDraft(),
		Available: available,
	}
}
