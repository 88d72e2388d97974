package entity

import (
	"time"
)

// Holding is one portfolio entry: a quantity of a stock bought at a price.
// Repeat buys of the same stock create distinct holdings, each independently
// sellable.
type Holding struct {
	ID            int64
	UserID        int64
	StockID       int64
	Quantity      int
	PurchasePrice float64
	CreatedAt     time.Time
}

// HoldingView is a holding joined with its stock for display: the recorded
// purchase data next to the stock's current price.
type HoldingView struct {
	ID            int64
	Name          string
	Symbol        string
	Price         float64
	Quantity      int
	PurchasePrice float64
}
