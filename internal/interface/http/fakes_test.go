package handlers

import (
	"context"
	"strings"
	"sync"

	"github.com/stocknest/backend/internal/domain/entity"
	"github.com/stocknest/backend/internal/domain/repository"
)

// In-memory stand-ins for the postgres repositories. They enforce the same
// contracts: unique username/email, case-insensitive catalog filters,
// ErrNotFound on missing rows.

type fakeUserRepo struct {
	mu          sync.Mutex
	nextID      int64
	users       []*entity.User
	failGetByID error // when set, GetByID returns it unconditionally
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{nextID: 1} }

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Username == u.Username || ex.Email == u.Email {
			return repository.ErrConflict
		}
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGetByID != nil {
		return nil, r.failGetByID
	}
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeStockRepo struct {
	stocks []entity.Stock
}

func (r *fakeStockRepo) List(_ context.Context, f repository.StockFilter) ([]entity.Stock, error) {
	out := make([]entity.Stock, 0)
	search := strings.ToLower(f.Search)
	for _, s := range r.stocks {
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Symbol), search) {
			continue
		}
		if f.Status != "" && !strings.EqualFold(s.Status, f.Status) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStockRepo) GetByID(_ context.Context, id int64) (*entity.Stock, error) {
	for _, s := range r.stocks {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePortfolioRepo struct {
	mu       sync.Mutex
	nextID   int64
	holdings []entity.Holding
	stocks   map[int64]entity.Stock
}

func newFakePortfolioRepo(stocks []entity.Stock) *fakePortfolioRepo {
	m := make(map[int64]entity.Stock, len(stocks))
	for _, s := range stocks {
		m[s.ID] = s
	}
	return &fakePortfolioRepo{nextID: 1, stocks: m}
}

func (r *fakePortfolioRepo) Insert(_ context.Context, h *entity.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.ID = r.nextID
	r.nextID++
	r.holdings = append(r.holdings, *h)
	return nil
}

func (r *fakePortfolioRepo) ListByUser(_ context.Context, userID int64) ([]entity.HoldingView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.HoldingView, 0)
	for _, h := range r.holdings {
		if h.UserID != userID {
			continue
		}
		s := r.stocks[h.StockID]
		out = append(out, entity.HoldingView{
			ID:            h.ID,
			Name:          s.Name,
			Symbol:        s.Symbol,
			Price:         s.Price,
			Quantity:      h.Quantity,
			PurchasePrice: h.PurchasePrice,
		})
	}
	return out, nil
}

func (r *fakePortfolioRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, h := range r.holdings {
		if h.ID == id {
			r.holdings = append(r.holdings[:i], r.holdings[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
