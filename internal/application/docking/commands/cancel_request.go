package commands

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// CancelDockingRequestCommand cancels the actor's own pending request
type CancelDockingRequestCommand struct {
	ActorID   string
	RequestID string
}

// CancelDockingRequestResponse carries the cancelled request
type CancelDockingRequestResponse struct {
	Request *request.DockingRequest
}

// CancelDockingRequestHandler cancels pending requests. Only the owning
// ship owner may cancel; no berth is touched because none was allocated.
type CancelDockingRequestHandler struct {
	users    auth.UserRepository
	requests request.DockingRequestRepository
}

// NewCancelDockingRequestHandler creates a new cancel handler
func NewCancelDockingRequestHandler(
	users auth.UserRepository,
	requests request.DockingRequestRepository,
) *CancelDockingRequestHandler {
	return &CancelDockingRequestHandler{users: users, requests: requests}
}

// Handle executes the cancel docking request command
func (h *CancelDockingRequestHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*CancelDockingRequestCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	actor, err := resolveActor(ctx, h.users, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	dockingRequest, err := h.requests.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}
	if !dockingRequest.IsOwnedBy(actor.ID()) {
		return nil, shared.NewPermissionError(actor.ID(), "cancel docking request "+dockingRequest.ID())
	}

	if err := dockingRequest.Cancel(); err != nil {
		return nil, err
	}

	if err := h.requests.Save(ctx, dockingRequest); err != nil {
		return nil, err
	}

	return &CancelDockingRequestResponse{Request: dockingRequest}, nil
}
