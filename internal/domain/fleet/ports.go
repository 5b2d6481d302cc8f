package fleet

import "context"

// ShipRepository defines the interface for ship persistence operations
type ShipRepository interface {
	FindByID(ctx context.Context, shipID string) (*Ship, error)
	FindAll(ctx context.Context) ([]*Ship, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*Ship, error)
	Save(ctx context.Context, ship *Ship) error
	Delete(ctx context.Context, shipID string) error
}
