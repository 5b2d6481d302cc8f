package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// GormShipRepository implements ShipRepository using GORM
type GormShipRepository struct {
	db *gorm.DB
}

// NewGormShipRepository creates a new GORM ship repository
func NewGormShipRepository(db *gorm.DB) *GormShipRepository {
	return &GormShipRepository{db: db}
}

// FindByID retrieves a ship by ID
func (r *GormShipRepository) FindByID(ctx context.Context, shipID string) (*fleet.Ship, error) {
	var model ShipModel
	err := execWithRetry(ctx, "ship.FindByID", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", shipID).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("ship", shipID)
		}
		return nil, err
	}

	return r.modelToEntity(&model)
}

// FindAll retrieves all registered ships
func (r *GormShipRepository) FindAll(ctx context.Context) ([]*fleet.Ship, error) {
	var models []ShipModel
	err := execWithRetry(ctx, "ship.FindAll", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Order("id").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return r.modelsToEntities(models)
}

// FindByOwner retrieves all ships registered to an owner
func (r *GormShipRepository) FindByOwner(ctx context.Context, ownerID string) ([]*fleet.Ship, error) {
	var models []ShipModel
	err := execWithRetry(ctx, "ship.FindByOwner", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return r.modelsToEntities(models)
}

// Save persists a ship (create or update)
func (r *GormShipRepository) Save(ctx context.Context, ship *fleet.Ship) error {
	model := r.entityToModel(ship)
	return execWithRetry(ctx, "ship.Save", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Save(model).Error
	})
}

// Delete removes a ship from the registry
func (r *GormShipRepository) Delete(ctx context.Context, shipID string) error {
	return execWithRetry(ctx, "ship.Delete", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Delete(&ShipModel{}, "id = ?", shipID).Error
	})
}

func (r *GormShipRepository) modelsToEntities(models []ShipModel) ([]*fleet.Ship, error) {
	ships := make([]*fleet.Ship, 0, len(models))
	for i := range models {
		ship, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert ship %s: %w", models[i].ID, err)
		}
		ships = append(ships, ship)
	}
	return ships, nil
}

func (r *GormShipRepository) modelToEntity(model *ShipModel) (*fleet.Ship, error) {
	return fleet.NewShip(
		model.ID,
		model.Name,
		fleet.ShipType(model.ShipType),
		model.Length,
		model.Draft,
		model.Tonnage,
		model.Capacity,
		model.OwnerID,
	)
}

func (r *GormShipRepository) entityToModel(ship *fleet.Ship) *ShipModel {
	return &ShipModel{
		ID:       ship.ID(),
		Name:     ship.Name(),
		ShipType: string(ship.Type()),
		Length:   ship.Length(),
		Draft:    ship.Draft(),
		Tonnage:  ship.Tonnage(),
		Capacity: ship.Capacity(),
		OwnerID:  ship.OwnerID(),
	}
}
