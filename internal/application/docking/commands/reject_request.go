package commands

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/auth"
	"github.com/harborops/harbormaster-go/internal/domain/request"
	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// RejectDockingRequestCommand rejects a pending request with a reason
type RejectDockingRequestCommand struct {
	ActorID   string
	RequestID string
	Reason    string
}

// RejectDockingRequestResponse carries the rejected request
type RejectDockingRequestResponse struct {
	Request *request.DockingRequest
}

// RejectDockingRequestHandler rejects pending requests. No allocation or
// invoice is ever produced on this path.
type RejectDockingRequestHandler struct {
	users    auth.UserRepository
	requests request.DockingRequestRepository
}

// NewRejectDockingRequestHandler creates a new reject handler
func NewRejectDockingRequestHandler(
	users auth.UserRepository,
	requests request.DockingRequestRepository,
) *RejectDockingRequestHandler {
	return &RejectDockingRequestHandler{users: users, requests: requests}
}

// Handle executes the reject docking request command
func (h *RejectDockingRequestHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	cmd, ok := req.(*RejectDockingRequestCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	actor, err := resolveActor(ctx, h.users, cmd.ActorID)
	if err != nil {
		return nil, err
	}
	if !actor.Can(auth.CapabilityRejectRequest) {
		return nil, shared.NewPermissionError(actor.ID(), "reject docking requests")
	}

	dockingRequest, err := h.requests.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := dockingRequest.Reject(cmd.Reason); err != nil {
		return nil, err
	}

	if err := h.requests.Save(ctx, dockingRequest); err != nil {
		return nil, err
	}

	return &RejectDockingRequestResponse{Request: dockingRequest}, nil
}
