package repository

import (
	"context"

	"github.com/stocknest/backend/internal/domain/entity"
)

// PortfolioRepository defines the interface for the holdings store.
type PortfolioRepository interface {
	// Insert records a buy and fills in the new holding's ID.
	Insert(ctx context.Context, h *entity.Holding) error
	// ListByUser returns the user's holdings joined with their stocks.
	ListByUser(ctx context.Context, userID int64) ([]entity.HoldingView, error)
	// Delete removes a holding by id. Returns ErrNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
