package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/stocknest/backend/config"
	"github.com/stocknest/backend/pkg/helpers"
)

type seedStock struct {
	name   string
	symbol string
	price  float64
	status string
}

var stocks = []seedStock{
	{"Apple Inc.", "AAPL", 228.50, "Hot"},
	{"Microsoft Corporation", "MSFT", 417.10, "Hot"},
	{"Alphabet Inc.", "GOOGL", 166.85, "Active"},
	{"Amazon.com Inc.", "AMZN", 186.40, "Active"},
	{"Tesla Inc.", "TSLA", 248.98, "Hot"},
	{"NVIDIA Corporation", "NVDA", 117.00, "Hot"},
	{"Intel Corporation", "INTC", 22.55, "Cold"},
	{"International Business Machines", "IBM", 201.30, "Active"},
	{"The Coca-Cola Company", "KO", 69.10, "Cold"},
	{"Johnson & Johnson", "JNJ", 162.25, "Active"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demoUser"
	email := "demo@stocknest.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d username=%s email=%s password=%s\n", id, username, email, password)

	for _, s := range stocks {
		if _, err := db.Exec(`
			INSERT INTO stocks (name, symbol, price, stock_status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (symbol) DO UPDATE SET price = EXCLUDED.price, stock_status = EXCLUDED.stock_status
		`, s.name, s.symbol, s.price, s.status); err != nil {
			log.Fatalf("failed to seed stock %s: %v", s.symbol, err)
		}
	}
	fmt.Printf("seeded %d stocks\n", len(stocks))
}
