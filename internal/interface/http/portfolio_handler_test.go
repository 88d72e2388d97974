package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stocknest/backend/internal/application"
)

func newPortfolioRouter() *gin.Engine {
	svc := application.NewPortfolioService(newFakePortfolioRepo(catalogFixture), nil, testLogger())
	h := NewPortfolioHandler(svc, testLogger())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/portfolio/add", h.Add)
	api.GET("/portfolio/:userId", h.List)
	api.DELETE("/portfolio/:id", h.Delete)
	return r
}

func TestPortfolioAddValidation(t *testing.T) {
	r := newPortfolioRouter()

	cases := []struct {
		name string
		body map[string]any
	}{
		{"empty", map[string]any{}},
		{"missing price", map[string]any{"user_id": 1, "stock_id": 2, "quantity": 3}},
		{"zero quantity", map[string]any{"user_id": 1, "stock_id": 2, "quantity": 0, "purchase_price": 10.5}},
		{"zero price", map[string]any{"user_id": 1, "stock_id": 2, "quantity": 3, "purchase_price": 0}},
		{"negative quantity", map[string]any{"user_id": 1, "stock_id": 2, "quantity": -1, "purchase_price": 10.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/portfolio/add", tc.body)
			wantStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestPortfolioBuyThenRead(t *testing.T) {
	r := newPortfolioRouter()

	w := doJSON(t, r, http.MethodPost, "/api/portfolio/add", map[string]any{
		"user_id": 1, "stock_id": 2, "quantity": 3, "purchase_price": 10.5,
	})
	wantStatus(t, w, http.StatusCreated)
	purchaseID := decodeMap(t, w)["purchaseId"]
	if purchaseID != float64(1) {
		t.Fatalf("purchaseId = %v, want 1", purchaseID)
	}

	w = doJSON(t, r, http.MethodGet, "/api/portfolio/1", nil)
	wantStatus(t, w, http.StatusOK)
	list := decodeList(t, w)
	if len(list) != 1 {
		t.Fatalf("got %d holdings, want 1", len(list))
	}
	row := list[0]
	if row["quantity"] != float64(3) || row["purchase_price"] != 10.5 {
		t.Fatalf("unexpected holding %v", row)
	}
	if row["symbol"] != "MSFT" || row["price"] != 417.10 {
		t.Fatalf("holding not joined with its stock: %v", row)
	}
}

func TestPortfolioRepeatBuysAreDistinct(t *testing.T) {
	r := newPortfolioRouter()

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/portfolio/add", map[string]any{
			"user_id": 1, "stock_id": 2, "quantity": 1, "purchase_price": 10.5,
		})
		wantStatus(t, w, http.StatusCreated)
	}

	w := doJSON(t, r, http.MethodGet, "/api/portfolio/1", nil)
	wantStatus(t, w, http.StatusOK)
	list := decodeList(t, w)
	if len(list) != 2 {
		t.Fatalf("repeat buys must create distinct holdings, got %d", len(list))
	}
	if list[0]["id"] == list[1]["id"] {
		t.Fatal("holdings share an id")
	}
}

func TestPortfolioEmptyRead(t *testing.T) {
	r := newPortfolioRouter()
	w := doJSON(t, r, http.MethodGet, "/api/portfolio/42", nil)
	wantStatus(t, w, http.StatusOK)
	if list := decodeList(t, w); len(list) != 0 {
		t.Fatalf("empty portfolio must be [], got %v", list)
	}
}

func TestPortfolioReadNonNumericUserID(t *testing.T) {
	r := newPortfolioRouter()
	w := doJSON(t, r, http.MethodGet, "/api/portfolio/abc", nil)
	wantStatus(t, w, http.StatusOK)
	if list := decodeList(t, w); len(list) != 0 {
		t.Fatalf("non-numeric user id must read as [], got %v", list)
	}
}

func TestPortfolioSell(t *testing.T) {
	r := newPortfolioRouter()

	w := doJSON(t, r, http.MethodPost, "/api/portfolio/add", map[string]any{
		"user_id": 1, "stock_id": 2, "quantity": 3, "purchase_price": 10.5,
	})
	wantStatus(t, w, http.StatusCreated)
	id := int64(decodeMap(t, w)["purchaseId"].(float64))

	// unknown id first
	w = doJSON(t, r, http.MethodDelete, "/api/portfolio/999", nil)
	wantStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/portfolio/%d", id), nil)
	wantStatus(t, w, http.StatusOK)

	// the holding is gone from a subsequent read
	w = doJSON(t, r, http.MethodGet, "/api/portfolio/1", nil)
	wantStatus(t, w, http.StatusOK)
	if list := decodeList(t, w); len(list) != 0 {
		t.Fatalf("sold holding still visible: %v", list)
	}

	// repeat delete is 404, not silent success
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/portfolio/%d", id), nil)
	wantStatus(t, w, http.StatusNotFound)
}
