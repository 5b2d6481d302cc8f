package commands

import (
	"context"

	"github.com/harborops/harbormaster-go/internal/domain/auth"
)

// resolveActor loads the acting user for a command. Handlers resolve the
// actor once and query the permission table before touching any engine.
func resolveActor(ctx context.Context, users auth.UserRepository, actorID string) (*auth.User, error) {
	return users.FindByID(ctx, actorID)
}
