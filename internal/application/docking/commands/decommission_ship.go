package commands

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// DecommissionShipCommand removes a ship from the registry, cascading to
// its pending requests and active assignments.
type DecommissionShipCommand struct {
	ActorID string
	ShipID  string
}

// DecommissionShipResponse reports what the cascade touched
type DecommissionShipResponse struct {
	CancelledRequests int
	ReleasedBerths    int
}

// DecommissionShipHandler deletes a ship. Pending requests transition to
// Cancelled; materialized assignments are explicitly released, because
// cancelling a request alone never frees a berth.
type DecommissionShipHandler struct {
	users     auth.UserRepository
	ships     fleet.ShipRepository
	requests  request.DockingRequestRepository
	allocator *berth.AllocationEngine
}

// NewDecommissionShipHandler creates a new decommission handler
func NewDecommissionShipHandler(
	users auth.UserRepository,
	ships fleet.ShipRepository,
	requests request.DockingRequestRepository,
	allocator *berth.AllocationEngine,
) *DecommissionShipHandler {
	return &DecommissionShipHandler{
		users:     users,
		ships:     ships,
		requests:  requests,
		allocator: allocator,
	}
}

// Handle executes the decommission ship command
func (h *DecommissionShipHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*DecommissionShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	actor, err := resolveActor(ctx, h.users, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	ship, err := h.ships.FindByID(ctx, cmd.ShipID)
	if err != nil {
		return nil, err
	}
	if ship.OwnerID() != actor.ID() && actor.Role() != auth.RoleHarborMaster {
		return nil, shared.NewPermissionError(actor.ID(), "decommission ship "+ship.ID())
	}

	cancelled, err := h.cancelPendingRequests(ctx, ship.ID())
	if err != nil {
		return nil, err
	}

	released, err := h.releaseActiveAssignments(ctx, ship.ID())
	if err != nil {
		return nil, err
	}

	if err := h.ships.Delete(ctx, ship.ID()); err != nil {
		return nil, err
	}

	return &DecommissionShipResponse{
		CancelledRequests: cancelled,
		ReleasedBerths:    released,
	}, nil
}

func (h *DecommissionShipHandler) cancelPendingRequests(ctx context.Context, shipID string) (int, error) {
	shipRequests, err := h.requests.FindByShip(ctx, shipID)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, r := range shipRequests {
		if !r.IsPending() {
			continue
		}
		if err := r.Cancel(); err != nil {
			return cancelled, err
		}
		if err := h.requests.Save(ctx, r); err != nil {
			return cancelled, err
		}
		cancelled++
	}
	return cancelled, nil
}

func (h *DecommissionShipHandler) releaseActiveAssignments(ctx context.Context, shipID string) (int, error) {
	released := 0
	assignments, err := h.allocator.ActiveAssignmentsForShip(ctx, shipID)
	if err != nil {
		return 0, err
	}
	for _, a := range assignments {
		if _, err := h.allocator.Release(ctx, a.BerthID(), shipID); err != nil {
			return released, err
		}
		released++
	}
	return released, nil
}
