package commands

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// RegisterBerthCommand adds a berth to the harbor catalog
type RegisterBerthCommand struct {
	ActorID   string
	BerthID   string
	Name      string
	MaxLength float64
	MaxDraft  float64
	Available bool
}

// RegisterBerthResponse carries the registered berth
type RegisterBerthResponse struct {
	Berth *berth.Berth
}

// RegisterBerthHandler registers berths. Only the harbor master manages
// the physical catalog.
type RegisterBerthHandler struct {
	users  auth.UserRepository
	berths berth.BerthRepository
}

// NewRegisterBerthHandler creates a new register berth handler
func NewRegisterBerthHandler(users auth.UserRepository, berths berth.BerthRepository) *RegisterBerthHandler {
	return &RegisterBerthHandler{users: users, berths: berths}
}

// Handle executes the register berth command
func (h *RegisterBerthHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*RegisterBerthCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	actor, err := resolveActor(ctx, h.users, cmd.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.Role() != auth.RoleHarborMaster {
		return nil, shared.NewPermissionError(actor.ID(), "register berths")
	}

	b, err := berth.NewBerth(cmd.BerthID, cmd.Name, cmd.MaxLength, cmd.MaxDraft, cmd.Available)
	if err != nil {
		return nil, err
	}

	if err := h.berths.Save(ctx, b); err != nil {
		return nil, err
	}

	return &RegisterBerthResponse{Berth: b}, nil
}
