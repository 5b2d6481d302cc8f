package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// SubmitDockingRequestCommand opens a docking request for the actor's ship
type SubmitDockingRequestCommand struct {
	ActorID             string
	ShipID              string
	ETA                 time.Time
	ETD                 time.Time
	CargoType           string
	SpecialRequirements string
}

// SubmitDockingRequestResponse carries the created request
type SubmitDockingRequestResponse struct {
	Request *request.DockingRequest
}

// SubmitDockingRequestHandler creates Pending docking requests
type SubmitDockingRequestHandler struct {
	users    auth.UserRepository
	ships    fleet.ShipRepository
	requests request.DockingRequestRepository
	clock    shared.Clock
}

// NewSubmitDockingRequestHandler creates a new submit handler
func NewSubmitDockingRequestHandler(
	users auth.UserRepository,
	ships fleet.ShipRepository,
	requests request.DockingRequestRepository,
	clock shared.Clock,
) *SubmitDockingRequestHandler {
	return &SubmitDockingRequestHandler{
		users:    users,
		ships:    ships,
		requests: requests,
		clock:    clock,
	}
}

// Handle executes the submit docking request command
func (h *SubmitDockingRequestHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*SubmitDockingRequestCommand)
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
	if ship.OwnerID() != actor.ID() {
		return nil, shared.NewPermissionError(actor.ID(), "submit a docking request for ship "+ship.ID())
	}

	window, err := berth.NewWindow(cmd.ETA, cmd.ETD)
	if err != nil {
		return nil, err
	}

	dockingRequest, err := request.NewDockingRequest(
		uuid.NewString(),
		ship.ID(),
		actor.ID(),
		window,
		cmd.CargoType,
		cmd.SpecialRequirements,
		h.clock,
	)
	if err != nil {
		return nil, err
	}

	if err := h.requests.Add(ctx, dockingRequest); err != nil {
		return nil, err
	}

	return &SubmitDockingRequestResponse{Request: dockingRequest}, nil
}
