package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// activeStatuses are the assignment statuses that occupy a berth window
var activeStatuses = []string{
	string(berth.AssignmentStatusScheduled),
	string(berth.AssignmentStatusDocked),
}

// GormAssignmentRepository implements AssignmentRepository using GORM
type GormAssignmentRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
// The clock parameter is optional - if nil, defaults to RealClock
func NewGormAssignmentRepository(db *gorm.DB, clock shared.Clock) *GormAssignmentRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormAssignmentRepository{db: db, clock: clock}
}

// FindByID retrieves an assignment by ID
func (r *GormAssignmentRepository) FindByID(ctx context.Context, assignmentID string) (*berth.Assignment, error) {
	var model AssignmentModel
	err := execWithRetry(ctx, "assignment.FindByID", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", assignmentID).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("assignment", assignmentID)
		}
		return nil, err
	}
	return r.modelToEntity(&model)
}

// FindOverlapping retrieves active assignments on the berth whose half-open
// [ETA, ETD) window overlaps [eta, etd). Windows that only touch at a
// boundary are excluded by the strict inequalities.
func (r *GormAssignmentRepository) FindOverlapping(ctx context.Context, berthID string, eta, etd time.Time) ([]*berth.Assignment, error) {
	var models []AssignmentModel
	err := execWithRetry(ctx, "assignment.FindOverlapping", func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("berth_id = ? AND status IN ? AND eta < ? AND etd > ?", berthID, activeStatuses, etd, eta).
			Order("eta").
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return r.modelsToEntities(models)
}

// FindActiveByBerthAndShip retrieves the active assignment tying the ship
// to the berth
func (r *GormAssignmentRepository) FindActiveByBerthAndShip(ctx context.Context, berthID, shipID string) (*berth.Assignment, error) {
	var model AssignmentModel
	err := execWithRetry(ctx, "assignment.FindActiveByBerthAndShip", func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("berth_id = ? AND ship_id = ? AND status IN ?", berthID, shipID, activeStatuses).
			First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("active assignment", berthID+"/"+shipID)
		}
		return nil, err
	}
	return r.modelToEntity(&model)
}

// FindActiveByShip retrieves all active assignments for a ship
func (r *GormAssignmentRepository) FindActiveByShip(ctx context.Context, shipID string) ([]*berth.Assignment, error) {
	var models []AssignmentModel
	err := execWithRetry(ctx, "assignment.FindActiveByShip", func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Where("ship_id = ? AND status IN ?", shipID, activeStatuses).
			Order("eta").
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return r.modelsToEntities(models)
}

// Add inserts a new assignment row
func (r *GormAssignmentRepository) Add(ctx context.Context, a *berth.Assignment) error {
	model := r.entityToModel(a)
	return execWithRetry(ctx, "assignment.Add", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(model).Error
	})
}

// Save updates an existing assignment row (status changes only; history
// rows are never deleted)
func (r *GormAssignmentRepository) Save(ctx context.Context, a *berth.Assignment) error {
	model := r.entityToModel(a)
	return execWithRetry(ctx, "assignment.Save", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Save(model).Error
	})
}

func (r *GormAssignmentRepository) modelsToEntities(models []AssignmentModel) ([]*berth.Assignment, error) {
	assignments := make([]*berth.Assignment, 0, len(models))
	for i := range models {
		a, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert assignment %s: %w", models[i].ID, err)
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

func (r *GormAssignmentRepository) modelToEntity(model *AssignmentModel) (*berth.Assignment, error) {
	window, err := berth.NewWindow(model.ETA, model.ETD)
	if err != nil {
		return nil, err
	}

	a, err := berth.NewAssignment(model.ID, model.BerthID, model.ShipID, window, r.clock)
	if err != nil {
		return nil, err
	}

	a.RecoverStatus(berth.AssignmentStatus(model.Status), model.CreatedAt, model.UpdatedAt)
	return a, nil
}

func (r *GormAssignmentRepository) entityToModel(a *berth.Assignment) *AssignmentModel {
	return &AssignmentModel{
		ID:        a.ID(),
		BerthID:   a.BerthID(),
		ShipID:    a.ShipID(),
		ETA:       a.Window().ETA(),
		ETD:       a.Window().ETD(),
		Status:    string(a.Status()),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}
