package berth

import (
	"context"
	"time"
)

// BerthRepository defines the interface for berth persistence operations
type BerthRepository interface {
	FindByID(ctx context.Context, berthID string) (*Berth, error)
	FindAll(ctx context.Context) ([]*Berth, error)

	// FindSuitable returns available berths whose capacity fits the given
	// dimensions, ordered by berth ID so repeated calls are reproducible
	FindSuitable(ctx context.Context, shipLength, shipDraft float64) ([]*Berth, error)

	Save(ctx context.Context, b *Berth) error
}

// AssignmentRepository defines the interface for assignment persistence.
// Assignments are historical records: there is no Delete.
type AssignmentRepository interface {
	FindByID(ctx context.Context, assignmentID string) (*Assignment, error)

	// FindOverlapping returns active (Scheduled/Docked) assignments on the
	// berth whose [ETA, ETD) window overlaps [eta, etd)
	FindOverlapping(ctx context.Context, berthID string, eta, etd time.Time) ([]*Assignment, error)

	// FindActiveByBerthAndShip returns the active assignment tying the ship
	// to the berth, or a NotFoundError
	FindActiveByBerthAndShip(ctx context.Context, berthID, shipID string) (*Assignment, error)

	// FindActiveByShip returns all active assignments for a ship
	FindActiveByShip(ctx context.Context, shipID string) ([]*Assignment, error)

	Add(ctx context.Context, a *Assignment) error
	Save(ctx context.Context, a *Assignment) error
}
