package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stocknest/backend/internal/application"
	"github.com/stocknest/backend/internal/domain/entity"
	"github.com/stocknest/backend/internal/domain/repository"
	"github.com/stocknest/backend/pkg/response"
)

type StockHandler struct {
	Svc    *application.StockService
	Logger *logrus.Logger
}

func NewStockHandler(svc *application.StockService, logger *logrus.Logger) *StockHandler {
	return &StockHandler{Svc: svc, Logger: logger}
}

// stockDTO keeps the stock_status column name on the wire.
type stockDTO struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Status string  `json:"stock_status"`
}

func toStockDTO(s entity.Stock) stockDTO {
	return stockDTO{ID: s.ID, Name: s.Name, Symbol: s.Symbol, Price: s.Price, Status: s.Status}
}

// List GET /api/stocks?search=&status=
func (h *StockHandler) List(c *gin.Context) {
	stocks, err := h.Svc.List(c.Request.Context(), c.Query("search"), c.Query("status"))
	if err != nil {
		h.Logger.WithError(err).Error("stock list failed")
		response.Error(c, http.StatusInternalServerError, "Database query error", nil)
		return
	}
	out := make([]stockDTO, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toStockDTO(s))
	}
	c.JSON(http.StatusOK, out)
}

// Get GET /api/stocks/:id
func (h *StockHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Stock not found", nil)
		return
	}
	s, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Stock not found", nil)
			return
		}
		h.Logger.WithError(err).Error("stock get failed")
		response.Error(c, http.StatusInternalServerError, "Database error", nil)
		return
	}
	c.JSON(http.StatusOK, toStockDTO(*s))
}
