package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocknest/backend/internal/domain/entity"
	"github.com/stocknest/backend/internal/domain/repository"
)

type PortfolioRepository struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepository(pool *pgxpool.Pool) *PortfolioRepository {
	return &PortfolioRepository{pool: pool}
}

func (r *PortfolioRepository) Insert(ctx context.Context, h *entity.Holding) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO portfolio (user_id, stock_id, quantity, purchase_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, h.UserID, h.StockID, h.Quantity, h.PurchasePrice)

	return row.Scan(&h.ID, &h.CreatedAt)
}

func (r *PortfolioRepository) ListByUser(ctx context.Context, userID int64) ([]entity.HoldingView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, s.name, s.symbol, s.price, p.quantity, p.purchase_price
		FROM portfolio p
		JOIN stocks s ON p.stock_id = s.id
		WHERE p.user_id = $1
		ORDER BY p.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]entity.HoldingView, 0)
	for rows.Next() {
		var v entity.HoldingView
		if err := rows.Scan(&v.ID, &v.Name, &v.Symbol, &v.Price, &v.Quantity, &v.PurchasePrice); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *PortfolioRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM portfolio WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PortfolioRepository = (*PortfolioRepository)(nil)
