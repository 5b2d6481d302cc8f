package commands

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// ReleaseBerthCommand ends a ship's active assignment on a berth
type ReleaseBerthCommand struct {
	ActorID string
	BerthID string
	ShipID  string
}

// ReleaseBerthResponse carries the released assignment
type ReleaseBerthResponse struct {
	Assignment *berth.Assignment
}

// ReleaseBerthHandler releases berths: a docked ship departs, a scheduled
// one is cancelled. The assignment row survives as history.
type ReleaseBerthHandler struct {
	users     auth.UserRepository
	allocator *berth.AllocationEngine
}

// NewReleaseBerthHandler creates a new release handler
func NewReleaseBerthHandler(users auth.UserRepository, allocator *berth.AllocationEngine) *ReleaseBerthHandler {
	return &ReleaseBerthHandler{users: users, allocator: allocator}
}

// Handle executes the release berth command
func (h *ReleaseBerthHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*ReleaseBerthCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	actor, err := resolveActor(ctx, h.users, cmd.ActorID)
	if err != nil {
		return nil, err
	}
	if !actor.Can(auth.CapabilityApproveRequest) {
		return nil, shared.NewPermissionError(actor.ID(), "release berths")
	}

	assignment, err := h.allocator.Release(ctx, cmd.BerthID, cmd.ShipID)
	if err != nil {
		return nil, err
	}

	return &ReleaseBerthResponse{Assignment: assignment}, nil
}
