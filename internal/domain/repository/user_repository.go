package repository

import (
	"context"

	"github.com/stocknest/backend/internal/domain/entity"
)

// UserRepository defines the interface for credential-store operations.
type UserRepository interface {
	// Create inserts a new user and fills in its assigned ID.
	// Returns ErrConflict when username or email is already taken.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByIdentifier matches identifier against username or email.
	GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
}
