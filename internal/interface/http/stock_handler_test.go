package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stocknest/backend/internal/application"
	"github.com/stocknest/backend/internal/domain/entity"
)

var catalogFixture = []entity.Stock{
	{ID: 1, Name: "Apple Inc.", Symbol: "AAPL", Price: 228.50, Status: "Hot"},
	{ID: 2, Name: "Microsoft Corporation", Symbol: "MSFT", Price: 417.10, Status: "Hot"},
	{ID: 3, Name: "International Business Machines", Symbol: "IBM", Price: 201.30, Status: "Active"},
	{ID: 4, Name: "The Coca-Cola Company", Symbol: "KO", Price: 69.10, Status: "Cold"},
}

func newStockRouter() *gin.Engine {
	svc := application.NewStockService(&fakeStockRepo{stocks: catalogFixture})
	h := NewStockHandler(svc, testLogger())

	r := gin.New()
	api := r.Group("/api")
	api.GET("/stocks", h.List)
	api.GET("/stocks/:id", h.Get)
	return r
}

func TestStockList(t *testing.T) {
	r := newStockRouter()

	cases := []struct {
		name  string
		path  string
		want  []string // expected symbols, in order
	}{
		{"no filters returns all", "/api/stocks", []string{"AAPL", "MSFT", "IBM", "KO"}},
		{"search matches name", "/api/stocks?search=corp", []string{"MSFT"}},
		{"search matches symbol", "/api/stocks?search=aa", []string{"AAPL"}},
		{"search is case-insensitive", "/api/stocks?search=APPLE", []string{"AAPL"}},
		{"status filter", "/api/stocks?status=hot", []string{"AAPL", "MSFT"}},
		{"status is case-insensitive", "/api/stocks?status=HOT", []string{"AAPL", "MSFT"}},
		{"search and status intersect", "/api/stocks?search=m&status=hot", []string{"MSFT"}},
		{"zero matches is empty list", "/api/stocks?search=zzz", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, tc.path, nil)
			wantStatus(t, w, http.StatusOK)
			list := decodeList(t, w)
			if len(list) != len(tc.want) {
				t.Fatalf("got %d rows, want %d (%v)", len(list), len(tc.want), list)
			}
			for i, want := range tc.want {
				if got := list[i]["symbol"]; got != want {
					t.Fatalf("row %d symbol = %v, want %s", i, got, want)
				}
			}
		})
	}
}

func TestStockListWireFormat(t *testing.T) {
	r := newStockRouter()
	w := doJSON(t, r, http.MethodGet, "/api/stocks?search=aapl", nil)
	wantStatus(t, w, http.StatusOK)

	list := decodeList(t, w)
	if len(list) != 1 {
		t.Fatalf("got %d rows, want 1", len(list))
	}
	row := list[0]
	// the status column keeps its stock_status name on the wire
	if row["stock_status"] != "Hot" {
		t.Fatalf("stock_status = %v, want Hot", row["stock_status"])
	}
	if row["price"] != 228.50 {
		t.Fatalf("price = %v, want 228.50", row["price"])
	}
}

func TestStockGet(t *testing.T) {
	r := newStockRouter()

	w := doJSON(t, r, http.MethodGet, "/api/stocks/3", nil)
	wantStatus(t, w, http.StatusOK)
	body := decodeMap(t, w)
	if body["symbol"] != "IBM" {
		t.Fatalf("symbol = %v, want IBM", body["symbol"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/stocks/99", nil)
	wantStatus(t, w, http.StatusNotFound)
}
