package auth

import "context"

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, user *User) error
}
