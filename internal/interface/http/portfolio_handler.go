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
	"github.com/stocknest/backend/pkg/validation"
)

type PortfolioHandler struct {
	Svc    *application.PortfolioService
	Logger *logrus.Logger
}

func NewPortfolioHandler(svc *application.PortfolioService, logger *logrus.Logger) *PortfolioHandler {
	return &PortfolioHandler{Svc: svc, Logger: logger}
}

// Zero quantity and zero price are rejected, not just absent fields.
type addRequest struct {
	UserID        int64   `json:"user_id" binding:"required,gt=0"`
	StockID       int64   `json:"stock_id" binding:"required,gt=0"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	PurchasePrice float64 `json:"purchase_price" binding:"required,gt=0"`
}

type holdingDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
}

// Add POST /api/portfolio/add
func (h *PortfolioHandler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Missing required fields", validation.ToDetails(err))
		return
	}

	holding, err := h.Svc.Buy(c.Request.Context(), req.UserID, req.StockID, req.Quantity, req.PurchasePrice)
	if err != nil {
		h.Logger.WithError(err).Error("portfolio add failed")
		response.Error(c, http.StatusInternalServerError, "Database error", nil)
		return
	}
	response.OK(c, http.StatusCreated, "Purchase recorded", gin.H{"purchaseId": holding.ID})
}

// List GET /api/portfolio/:userId
func (h *PortfolioHandler) List(c *gin.Context) {
	// A non-numeric id matches no rows; the response stays a list.
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, []holdingDTO{})
		return
	}
	views, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.WithError(err).Error("portfolio list failed")
		response.Error(c, http.StatusInternalServerError, "Database query error", nil)
		return
	}
	out := make([]holdingDTO, 0, len(views))
	for _, v := range views {
		out = append(out, toHoldingDTO(v))
	}
	c.JSON(http.StatusOK, out)
}

// Delete DELETE /api/portfolio/:id
// Deleting an id that is already gone is 404, not silent success.
func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Portfolio entry not found", nil)
		return
	}
	if err := h.Svc.Sell(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Portfolio entry not found", nil)
			return
		}
		h.Logger.WithError(err).Error("portfolio delete failed")
		response.Error(c, http.StatusInternalServerError, "Database error", nil)
		return
	}
	response.OK(c, http.StatusOK, "Stock sold (portfolio entry deleted) successfully", nil)
}

func toHoldingDTO(v entity.HoldingView) holdingDTO {
	return holdingDTO{
		ID:            v.ID,
		Name:          v.Name,
		Symbol:        v.Symbol,
		Price:         v.Price,
		Quantity:      v.Quantity,
		PurchasePrice: v.PurchasePrice,
	}
}
