package commands

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
)

// RegisterShipCommand registers a vessel owned by the acting user
type RegisterShipCommand struct {
	ActorID  string
	ShipID   string
	Name     string
	ShipType fleet.ShipType
	Length   float64
	Draft    float64
	Tonnage  float64
	Capacity float64
}

// RegisterShipResponse carries the registered ship
type RegisterShipResponse struct {
	Ship *fleet.Ship
}

// RegisterShipHandler registers ships in the harbor registry
type RegisterShipHandler struct {
	users auth.UserRepository
	ships fleet.ShipRepository
}

// NewRegisterShipHandler creates a new register ship handler
func NewRegisterShipHandler(users auth.UserRepository, ships fleet.ShipRepository) *RegisterShipHandler {
	return &RegisterShipHandler{users: users, ships: ships}
}

// Handle executes the register ship command
func (h *RegisterShipHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*RegisterShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	actor, err := resolveActor(ctx, h.users, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	ship, err := fleet.NewShip(cmd.ShipID, cmd.Name, cmd.ShipType, cmd.Length, cmd.Draft, cmd.Tonnage, cmd.Capacity, actor.ID())
	if err != nil {
		return nil, err
	}

	if err := h.ships.Save(ctx, ship); err != nil {
		return nil, err
	}

	return &RegisterShipResponse{Ship: ship}, nil
}
