package application

import (
	"context"

	"github.com/stocknest/backend/internal/domain/entity"
	repo "github.com/stocknest/backend/internal/domain/repository"
)

// StockService is read access to the catalog. Filters are optional and
// combine with AND; zero matches is an empty list, not an error.
type StockService struct {
	Repo repo.StockRepository
}

func NewStockService(r repo.StockRepository) *StockService {
	return &StockService{Repo: r}
}

func (s *StockService) List(ctx context.Context, search, status string) ([]entity.Stock, error) {
	return s.Repo.List(ctx, repo.StockFilter{Search: search, Status: status})
}

func (s *StockService) Get(ctx context.Context, id int64) (*entity.Stock, error) {
	return s.Repo.GetByID(ctx, id)
}
