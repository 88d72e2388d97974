package repository

import (
	"context"

	"github.com/stocknest/backend/internal/domain/entity"
)

// StockFilter narrows a catalog listing. Zero values mean "no filter";
// both matches are case-insensitive.
type StockFilter struct {
	Search string // substring of name or symbol
	Status string // exact status match
}

// StockRepository defines read access to the stock catalog.
type StockRepository interface {
	List(ctx context.Context, f StockFilter) ([]entity.Stock, error)
	GetByID(ctx context.Context, id int64) (*entity.Stock, error)
}
