package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stocknest/backend/internal/domain/entity"
	"github.com/stocknest/backend/internal/domain/repository"
)

type StockRepository struct {
	pool *pgxpool.Pool
}

func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

func (r *StockRepository) List(ctx context.Context, f repository.StockFilter) ([]entity.Stock, error) {
	sql := `SELECT id, name, symbol, price, stock_status FROM stocks`
	var (
		conds []string
		args  []any
	)

	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		conds = append(conds, `(LOWER(name) LIKE $1 OR LOWER(symbol) LIKE $1)`)
	}
	if f.Status != "" {
		args = append(args, strings.ToLower(f.Status))
		if len(args) == 2 {
			conds = append(conds, `LOWER(stock_status) = $2`)
		} else {
			conds = append(conds, `LOWER(stock_status) = $1`)
		}
	}
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY id"

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stocks := make([]entity.Stock, 0)
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.Name, &s.Symbol, &s.Price, &s.Status); err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

func (r *StockRepository) GetByID(ctx context.Context, id int64) (*entity.Stock, error) {
	s := &entity.Stock{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, symbol, price, stock_status
		FROM stocks
		WHERE id = $1
	`, id)

	if err := row.Scan(&s.ID, &s.Name, &s.Symbol, &s.Price, &s.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return s, nil
}

var _ repository.StockRepository = (*StockRepository)(nil)
