package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/stocknest/backend/internal/interface/http"
)

// StockModule exposes the read-only catalog.
// GET /api/stocks and GET /api/stocks/:id are public.
type StockModule struct {
	Handler *handlers.StockHandler
}

func NewStockModule(h *handlers.StockHandler) *StockModule {
	return &StockModule{Handler: h}
}

func (m *StockModule) Register(rg *gin.RouterGroup) {
	rg.GET("/stocks", m.Handler.List)
	rg.GET("/stocks/:id", m.Handler.Get)
}
