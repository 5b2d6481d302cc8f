package queries

import (
	"context"
	"fmt"

	"github.com/harborops/harbormaster-go/internal/application/common"
	"github.com/harborops/harbormaster-go/internal/domain/berth"
)

// FindSuitableBerthsQuery asks which berths can physically take a ship
type FindSuitableBerthsQuery struct {
	ShipLength float64
	ShipDraft  float64
}

// FindSuitableBerthsResponse carries the ordered candidate list
type FindSuitableBerthsResponse struct {
	Berths []*berth.Berth
}

// FindSuitableBerthsHandler answers berth-fit queries
type FindSuitableBerthsHandler struct {
	allocator *berth.AllocationEngine
}

// NewFindSuitableBerthsHandler creates a new find suitable berths handler
func NewFindSuitableBerthsHandler(allocator *berth.AllocationEngine) *FindSuitableBerthsHandler {
	return &FindSuitableBerthsHandler{allocator: allocator}
}

// Handle executes the find suitable berths query
func (h *FindSuitableBerthsHandler) Handle(ctx context.Context, req common.Request) (common.Response, error) {
	query, ok := req.(*FindSuitableBerthsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	berths, err := h.allocator.FindSuitableBerths(ctx, query.ShipLength, query.ShipDraft)
	if err != nil {
		return nil, err
	}

	return &FindSuitableBerthsResponse{Berths: berths}, nil
}
