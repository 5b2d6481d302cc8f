package queries

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/request"
)

// ListDockingRequestsQuery lists requests by owner or status. When both
// filters are empty, all statuses for all owners would be unbounded, so at
// least one filter is required by the handler.
type ListDockingRequestsQuery struct {
	OwnerID string
	Status  request.Status
}

// ListDockingRequestsResponse carries the matching requests
type ListDockingRequestsResponse struct {
	Requests []*request.DockingRequest
}

// ListDockingRequestsHandler answers request list queries
type ListDockingRequestsHandler struct {
	requests request.DockingRequestRepository
}

// NewListDockingRequestsHandler creates a new list requests handler
func NewListDockingRequestsHandler(requests request.DockingRequestRepository) *ListDockingRequestsHandler {
	return &ListDockingRequestsHandler{requests: requests}
}

// Handle executes the list docking requests query
func (h *ListDockingRequestsHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	query, ok := req.(*ListDockingRequestsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	switch {
	case query.OwnerID != "":
		requests, err := h.requests.FindByOwner(ctx, query.OwnerID)
		if err != nil {
			return nil, err
		}
		return &ListDockingRequestsResponse{Requests: filterByStatus(requests, query.Status)}, nil

	case query.Status != "":
		requests, err := h.requests.FindByStatus(ctx, query.Status)
		if err != nil {
			return nil, err
		}
		return &ListDockingRequestsResponse{Requests: requests}, nil

	default:
		return nil, fmt.Errorf("either owner or status filter is required")
	}
}

func filterByStatus(requests []*request.DockingRequest, status request.Status) []*request.DockingRequest {
	if status == "" {
		return requests
	}
	filtered := make([]*request.DockingRequest, 0, len(requests))
	for _, r := range requests {
		if r.Status() == status {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
