package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// GormDockingRequestRepository implements DockingRequestRepository using GORM
type GormDockingRequestRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormDockingRequestRepository creates a new GORM docking request repository.
// The clock parameter is optional - if nil, defaults to RealClock
func NewGormDockingRequestRepository(db *gorm.DB, clock shared.Clock) *GormDockingRequestRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormDockingRequestRepository{db: db, clock: clock}
}

// FindByID retrieves a docking request by ID
func (r *GormDockingRequestRepository) FindByID(ctx context.Context, requestID string) (*request.DockingRequest, error) {
	var model DockingRequestModel
	err := execWithRetry(ctx, "request.FindByID", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", requestID).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("docking request", requestID)
		}
		return nil, err
	}
	return r.modelToEntity(&model)
}

// FindByOwner retrieves all requests submitted by an owner
func (r *GormDockingRequestRepository) FindByOwner(ctx context.Context, ownerID string) ([]*request.DockingRequest, error) {
	var models []DockingRequestModel
	err := execWithRetry(ctx, "request.FindByOwner", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("submitted_at").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return r.modelsToEntities(models)
}

// FindByShip retrieves all requests for a ship
func (r *GormDockingRequestRepository) FindByShip(ctx context.Context, shipID string) ([]*request.DockingRequest, error) {
	var models []DockingRequestModel
	err := execWithRetry(ctx, "request.FindByShip", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("ship_id = ?", shipID).Order("submitted_at").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return r.modelsToEntities(models)
}

// FindByStatus retrieves all requests in a lifecycle status
func (r *GormDockingRequestRepository) FindByStatus(ctx context.Context, status request.Status) ([]*request.DockingRequest, error) {
	var models []DockingRequestModel
	err := execWithRetry(ctx, "request.FindByStatus", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("status = ?", string(status)).Order("submitted_at").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return r.modelsToEntities(models)
}

// Add inserts a new docking request row
func (r *GormDockingRequestRepository) Add(ctx context.Context, dr *request.DockingRequest) error {
	model := r.entityToModel(dr)
	return execWithRetry(ctx, "request.Add", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(model).Error
	})
}

// Save updates an existing docking request row
func (r *GormDockingRequestRepository) Save(ctx context.Context, dr *request.DockingRequest) error {
	model := r.entityToModel(dr)
	return execWithRetry(ctx, "request.Save", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Save(model).Error
	})
}

func (r *GormDockingRequestRepository) modelsToEntities(models []DockingRequestModel) ([]*request.DockingRequest, error) {
	requests := make([]*request.DockingRequest, 0, len(models))
	for i := range models {
		dr, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert docking request %s: %w", models[i].ID, err)
		}
		requests = append(requests, dr)
	}
	return requests, nil
}

func (r *GormDockingRequestRepository) modelToEntity(model *DockingRequestModel) (*request.DockingRequest, error) {
	window, err := berth.NewWindow(model.ETA, model.ETD)
	if err != nil {
		return nil, err
	}

	dr, err := request.NewDockingRequest(
		model.ID,
		model.ShipID,
		model.OwnerID,
		window,
		model.CargoType,
		model.SpecialRequirements,
		r.clock,
	)
	if err != nil {
		return nil, err
	}

	dr.RecoverStatus(request.Status(model.Status), model.RejectionReason, model.SubmittedAt, model.ProcessedAt)
	return dr, nil
}

func (r *GormDockingRequestRepository) entityToModel(dr *request.DockingRequest) *DockingRequestModel {
	return &DockingRequestModel{
		ID:                  dr.ID(),
		ShipID:              dr.ShipID(),
		OwnerID:             dr.OwnerID(),
		ETA:                 dr.Window().ETA(),
		ETD:                 dr.Window().ETD(),
		CargoType:           dr.CargoType(),
		SpecialRequirements: dr.SpecialRequirements(),
		Status:              string(dr.Status()),
		RejectionReason:     dr.RejectionReason(),
		SubmittedAt:         dr.SubmittedAt(),
		ProcessedAt:         dr.ProcessedAt(),
	}
}
