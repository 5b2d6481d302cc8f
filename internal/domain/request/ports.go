package request

import "context"

// DockingRequestRepository defines the interface for request persistence
type DockingRequestRepository interface {
	FindByID(ctx context.Context, requestID string) (*DockingRequest, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*DockingRequest, error)
	FindByShip(ctx context.Context, shipID string) ([]*DockingRequest, error)
	FindByStatus(ctx context.Context, status Status) ([]*DockingRequest, error)
	Add(ctx context.Context, r *DockingRequest) error
	Save(ctx context.Context, r *DockingRequest) error
}
