package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/stocknest/backend/config"
	"github.com/stocknest/backend/internal/application"
)

// trade_worker drains the trade queue and records each buy/sell in the
// trade_audit table. The API publishes fire-and-forget, so a worker outage
// only delays the audit trail.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.RabbitMQURL == "" || cfg.RabbitMQTradeQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQTradeQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQTradeQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range msgs {
			var ev application.TradeEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			if err := record(db, ev); err != nil {
				log.Printf("audit insert failed: %v", err)
				_ = msg.Nack(false, true) // requeue; the table may be behind a restart
				continue
			}
			_ = msg.Ack(false)
		}
	}()

	log.Printf("trade worker consuming %q", cfg.RabbitMQTradeQueue)
	<-stop
	log.Println("shutting down trade worker")
	_ = ch.Close()
	<-done
}

func record(db *sql.DB, ev application.TradeEvent) error {
	userID := sql.NullInt64{Int64: ev.UserID, Valid: ev.UserID != 0}
	stockID := sql.NullInt64{Int64: ev.StockID, Valid: ev.StockID != 0}
	_, err := db.Exec(`
		INSERT INTO trade_audit (action, user_id, stock_id, holding_id, quantity, price, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, ev.Action, userID, stockID, ev.HoldingID, ev.Quantity, ev.Price, ev.At)
	return err
}
