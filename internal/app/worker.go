package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-retail-pos/internal/messaging/kafka/producer"
	"go-retail-pos/internal/outbox"
	"go-retail-pos/internal/shared/database/dbgen"
)

func RunWorker() error {
	log.Println("[WORKER] Starting outbox processor...")

	// 1. Connect to database
	db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Println("[WORKER] Database connected")

	// 2. Setup Kafka writer
	kafkaWriter, err := connectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()
	log.Println("[WORKER] Kafka writer initialized")

	// 3. Create outbox repository
	queries := dbgen.New(db)
	outboxRepo := outbox.NewRepository(queries)

	// 4. Start processor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter)

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[WORKER] Shutting down...")
	cancel()
	time.Sleep(1 * time.Second)
	log.Println("[WORKER] Stopped")

	return nil
}
