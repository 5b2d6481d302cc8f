package commands

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// RegisterUserCommand creates a harbor user account. Only a HarborMaster
// may create accounts; the initial HarborMaster is seeded at startup.
type RegisterUserCommand struct {
	ActorID string
	UserID  string
	Name    string
	Role    auth.Role
}

// RegisterUserResponse carries the created user
type RegisterUserResponse struct {
	User *auth.User
}

// RegisterUserHandler creates user accounts
type RegisterUserHandler struct {
	users auth.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(users auth.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{users: users}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*RegisterUserCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	actor, err := resolveActor(ctx, h.users, cmd.ActorID)
	if err != nil {
		return nil, err
	}
	if actor.Role() != auth.RoleHarborMaster {
		return nil, shared.NewPermissionError(actor.ID(), "register user")
	}

	user, err := auth.NewUser(cmd.UserID, cmd.Name, cmd.Role)
	if err != nil {
		return nil, err
	}

	if err := h.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return &RegisterUserResponse{User: user}, nil
}
