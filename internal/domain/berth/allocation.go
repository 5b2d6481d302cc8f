package berth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// AllocationEngine assigns berths to ships for requested windows.
//
// Concurrency: two approvals racing on the same berth between the overlap
// check and the insert are the one correctness-critical hazard. The engine
// closes it by serializing the check-then-write per berth: a berth's mutex
// is held from the overlap re-read until the assignment row is committed.
// Berth and ledger state are owned by the store; the engine keeps no copy
// across calls and re-reads the relevant slice inside the critical section.
type AllocationEngine struct {
	berths BerthRepository
	ledger AssignmentRepository
	clock  shared.Clock

	mu         sync.Mutex
	berthLocks map[string]*sync.Mutex
}

// NewAllocationEngine creates an allocation engine.
// The clock parameter is optional - if nil, defaults to RealClock
func NewAllocationEngine(berths BerthRepository, ledger AssignmentRepository, clock shared.Clock) *AllocationEngine {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &AllocationEngine{
		berths:     berths,
		ledger:     ledger,
		clock:      clock,
		berthLocks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing allocations on one berth
func (e *AllocationEngine) lockFor(berthID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.berthLocks[berthID]
	if !ok {
		lock = &sync.Mutex{}
		e.berthLocks[berthID] = lock
	}
	return lock
}

// FindSuitableBerths returns available berths that physically fit the given
// dimensions, in deterministic berth-ID order.
func (e *AllocationEngine) FindSuitableBerths(ctx context.Context, shipLength, shipDraft float64) ([]*Berth, error) {
	if shipLength <= 0 {
		return nil, shared.NewValidationError("shipLength", "ship length must be positive")
	}
	if shipDraft <= 0 {
		return nil, shared.NewValidationError("shipDraft", "ship draft must be positive")
	}
	return e.berths.FindSuitable(ctx, shipLength, shipDraft)
}

// HasCollision reports whether an active assignment on the berth overlaps
// [eta, etd). Boundary contact is not a collision.
func (e *AllocationEngine) HasCollision(ctx context.Context, berthID string, eta, etd time.Time) (bool, error) {
	overlapping, err := e.ledger.FindOverlapping(ctx, berthID, eta, etd)
	if err != nil {
		return false, err
	}
	return len(overlapping) > 0, nil
}

// TryAllocate books the first collision-free suitable berth for the ship's
// window. When every suitable berth collides and override is set, the
// allocation is forced onto the first suitable berth: an override bypasses
// the schedule-collision check, never the physical-fit filter. The caller
// is responsible for having checked that the requesting actor holds the
// override capability before setting the flag.
func (e *AllocationEngine) TryAllocate(ctx context.Context, ship *fleet.Ship, eta, etd time.Time, override bool) (*Assignment, error) {
	window, err := NewWindow(eta, etd)
	if err != nil {
		return nil, err
	}

	candidates, err := e.berths.FindSuitable(ctx, ship.Length(), ship.Draft())
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, shared.NewConflictError(fmt.Sprintf(
			"no available berth fits ship %s (length %.1fm, draft %.1fm)",
			ship.ID(), ship.Length(), ship.Draft()))
	}

	for _, candidate := range candidates {
		assignment, err := e.allocateIfFree(ctx, candidate, ship, window)
		if err != nil {
			return nil, err
		}
		if assignment != nil {
			return assignment, nil
		}
	}

	if override {
		return e.forceAllocate(ctx, candidates[0], ship, window)
	}

	return nil, shared.NewConflictError(fmt.Sprintf(
		"all %d suitable berths are booked for [%s, %s)",
		len(candidates), window.ETA().Format(time.RFC3339), window.ETD().Format(time.RFC3339)))
}

// allocateIfFree runs the check-then-write for one berth under its lock.
// Returns (nil, nil) when the berth is occupied for the window.
func (e *AllocationEngine) allocateIfFree(ctx context.Context, b *Berth, ship *fleet.Ship, window Window) (*Assignment, error) {
	lock := e.lockFor(b.ID())
	lock.Lock()
	defer lock.Unlock()

	overlapping, err := e.ledger.FindOverlapping(ctx, b.ID(), window.ETA(), window.ETD())
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, nil
	}

	return e.commitAssignment(ctx, b, ship, window)
}

// forceAllocate books the berth regardless of schedule collisions. Still
// serialized per berth so concurrent forced and regular writes don't race.
func (e *AllocationEngine) forceAllocate(ctx context.Context, b *Berth, ship *fleet.Ship, window Window) (*Assignment, error) {
	lock := e.lockFor(b.ID())
	lock.Lock()
	defer lock.Unlock()

	return e.commitAssignment(ctx, b, ship, window)
}

func (e *AllocationEngine) commitAssignment(ctx context.Context, b *Berth, ship *fleet.Ship, window Window) (*Assignment, error) {
	assignment, err := NewAssignment(uuid.NewString(), b.ID(), ship.ID(), window, e.clock)
	if err != nil {
		return nil, err
	}
	if err := e.ledger.Add(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// RecordArrival marks the ship's scheduled assignment on the berth as Docked
func (e *AllocationEngine) RecordArrival(ctx context.Context, berthID, shipID string) (*Assignment, error) {
	assignment, err := e.ledger.FindActiveByBerthAndShip(ctx, berthID, shipID)
	if err != nil {
		return nil, err
	}
	if err := assignment.RecordArrival(); err != nil {
		return nil, err
	}
	if err := e.ledger.Save(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// ActiveAssignmentsForShip lists the ship's Scheduled/Docked assignments
func (e *AllocationEngine) ActiveAssignmentsForShip(ctx context.Context, shipID string) ([]*Assignment, error) {
	return e.ledger.FindActiveByShip(ctx, shipID)
}

// Release ends the ship's active assignment on the berth: a docked ship
// departs, a scheduled one is cancelled. The row stays in the ledger as
// history; the window simply stops counting for collision checks.
func (e *AllocationEngine) Release(ctx context.Context, berthID, shipID string) (*Assignment, error) {
	assignment, err := e.ledger.FindActiveByBerthAndShip(ctx, berthID, shipID)
	if err != nil {
		return nil, err
	}

	switch assignment.Status() {
	case AssignmentStatusDocked:
		err = assignment.RecordDeparture()
	case AssignmentStatusScheduled:
		err = assignment.Cancel()
	default:
		err = fmt.Errorf("assignment %s is not active", assignment.ID())
	}
	if err != nil {
		return nil, err
	}

	if err := e.ledger.Save(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}
