package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stocknest/backend/internal/domain/entity"
	repo "github.com/stocknest/backend/internal/domain/repository"
	"github.com/stocknest/backend/pkg/helpers"
)

// TradeEvent is the message published to the trade queue on every buy and
// sell. For sells only HoldingID is known at publish time; the audit worker
// stores whatever is present.
type TradeEvent struct {
	Action    string    `json:"action"` // "buy" or "sell"
	UserID    int64     `json:"user_id,omitempty"`
	StockID   int64     `json:"stock_id,omitempty"`
	HoldingID int64     `json:"holding_id"`
	Quantity  int       `json:"quantity,omitempty"`
	Price     float64   `json:"price,omitempty"`
	At        time.Time `json:"at"`
}

// PortfolioService implements buy, read and sell over the holdings store.
// Each operation is a single statement; there is no cross-operation
// transaction or ordering guarantee beyond the store's own atomicity.
type PortfolioService struct {
	Repo   repo.PortfolioRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewPortfolioService(r repo.PortfolioRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *PortfolioService {
	return &PortfolioService{Repo: r, Pub: pub, Logger: logger}
}

// Buy records a purchase at the caller-supplied price. The price is not
// cross-checked against the catalog; the recorded value is whatever the
// client sent.
func (s *PortfolioService) Buy(ctx context.Context, userID, stockID int64, quantity int, purchasePrice float64) (*entity.Holding, error) {
	h := &entity.Holding{
		UserID:        userID,
		StockID:       stockID,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
	}
	if err := s.Repo.Insert(ctx, h); err != nil {
		return nil, err
	}
	s.publish(ctx, TradeEvent{
		Action:    "buy",
		UserID:    h.UserID,
		StockID:   h.StockID,
		HoldingID: h.ID,
		Quantity:  h.Quantity,
		Price:     h.PurchasePrice,
		At:        time.Now().UTC(),
	})
	return h, nil
}

// List returns the user's holdings joined with their stocks. An empty
// portfolio is an empty slice.
func (s *PortfolioService) List(ctx context.Context, userID int64) ([]entity.HoldingView, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Sell deletes a holding by id. repository.ErrNotFound is passed through
// when the id never existed or was already sold.
func (s *PortfolioService) Sell(ctx context.Context, holdingID int64) error {
	if err := s.Repo.Delete(ctx, holdingID); err != nil {
		return err
	}
	s.publish(ctx, TradeEvent{
		Action:    "sell",
		HoldingID: holdingID,
		At:        time.Now().UTC(),
	})
	return nil
}

// publish is fire and forget: a broker outage must not fail the trade.
func (s *PortfolioService) publish(ctx context.Context, ev TradeEvent) {
	if s.Pub == nil {
		return
	}
	if err := s.Pub.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("action", ev.Action).Warn("trade event publish failed")
	}
}
