package berth

import (
	"fmt"
	"time"

	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// AssignmentStatus tracks a booking through its occupancy lifecycle.
type AssignmentStatus string

const (
	AssignmentStatusScheduled AssignmentStatus = "SCHEDULED"
	AssignmentStatusDocked    AssignmentStatus = "DOCKED"
	AssignmentStatusDeparted  AssignmentStatus = "DEPARTED"
	AssignmentStatusCancelled AssignmentStatus = "CANCELLED"
)

// Assignment is a booking of a berth for a ship over a window. Assignments
// are never deleted; departed and cancelled rows remain as history.
type Assignment struct {
	id        string
	berthID   string
	shipID    string
	window    Window
	status    AssignmentStatus
	createdAt time.Time
	updatedAt time.Time
	clock     shared.Clock
}

// NewAssignment creates a Scheduled assignment.
// The clock parameter is optional - if nil, defaults to RealClock
func NewAssignment(id, berthID, shipID string, window Window, clock shared.Clock) (*Assignment, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "assignment ID cannot be empty")
	}
	if berthID == "" {
		return nil, shared.NewValidationError("berthID", "berth ID cannot be empty")
	}
	if shipID == "" {
		return nil, shared.NewValidationError("shipID", "ship ID cannot be empty")
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}

	now := clock.Now()
	return &Assignment{
		id:        id,
		berthID:   berthID,
		shipID:    shipID,
		window:    window,
		status:    AssignmentStatusScheduled,
		createdAt: now,
		updatedAt: now,
		clock:     clock,
	}, nil
}

func (a *Assignment) ID() string               { return a.id }
func (a *Assignment) BerthID() string          { return a.berthID }
func (a *Assignment) ShipID() string           { return a.shipID }
func (a *Assignment) Window() Window           { return a.window }
func (a *Assignment) Status() AssignmentStatus { return a.status }
func (a *Assignment) CreatedAt() time.Time     { return a.createdAt }
func (a *Assignment) UpdatedAt() time.Time     { return a.updatedAt }

// IsActive reports whether the assignment still occupies its window for
// collision purposes (Scheduled or Docked).
func (a *Assignment) IsActive() bool {
	return a.status == AssignmentStatusScheduled || a.status == AssignmentStatusDocked
}

// RecordArrival transitions Scheduled -> Docked
func (a *Assignment) RecordArrival() error {
	if a.status != AssignmentStatusScheduled {
		return fmt.Errorf("cannot record arrival from %s status", a.status)
	}
	a.status = AssignmentStatusDocked
	a.updatedAt = a.clock.Now()
	return nil
}

// RecordDeparture transitions Docked -> Departed
func (a *Assignment) RecordDeparture() error {
	if a.status != AssignmentStatusDocked {
		return fmt.Errorf("cannot record departure from %s status", a.status)
	}
	a.status = AssignmentStatusDeparted
	a.updatedAt = a.clock.Now()
	return nil
}

// Cancel transitions Scheduled -> Cancelled. A docked ship departs, it
// does not cancel.
func (a *Assignment) Cancel() error {
	if a.status != AssignmentStatusScheduled {
		return fmt.Errorf("cannot cancel from %s status", a.status)
	}
	a.status = AssignmentStatusCancelled
	a.updatedAt = a.clock.Now()
	return nil
}

// RecoverStatus restores status during reconstruction from storage.
// Only repository converters should call this.
func (a *Assignment) RecoverStatus(status AssignmentStatus, createdAt, updatedAt time.Time) {
	a.status = status
	a.createdAt = createdAt
	a.updatedAt = updatedAt
}
