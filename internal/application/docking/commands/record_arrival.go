package commands

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// RecordArrivalCommand marks a scheduled assignment as docked
type RecordArrivalCommand struct {
	ActorID string
	BerthID string
	ShipID  string
}

// RecordArrivalResponse carries the updated assignment
type RecordArrivalResponse struct {
	Assignment *berth.Assignment
}

// RecordArrivalHandler records that a ship has physically docked
type RecordArrivalHandler struct {
	users     auth.UserRepository
	allocator *berth.AllocationEngine
}

// NewRecordArrivalHandler creates a new record arrival handler
func NewRecordArrivalHandler(users auth.UserRepository, allocator *berth.AllocationEngine) *RecordArrivalHandler {
	return &RecordArrivalHandler{users: users, allocator: allocator}
}

// Handle executes the record arrival command
func (h *RecordArrivalHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*RecordArrivalCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	actor, err := resolveActor(ctx, h.users, cmd.ActorID)
	if err != nil {
		return nil, err
	}
	if !actor.Can(auth.CapabilityApproveRequest) {
		return nil, shared.NewPermissionError(actor.ID(), "record arrivals")
	}

	assignment, err := h.allocator.RecordArrival(ctx, cmd.BerthID, cmd.ShipID)
	if err != nil {
		return nil, err
	}

	return &RecordArrivalResponse{Assignment: assignment}, nil
}
