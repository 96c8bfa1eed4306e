package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-retail-pos/internal/cart"
	"go-retail-pos/internal/messaging/kafka/consumer"
	"go-retail-pos/internal/product"
	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/segmentio/kafka-go"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting cart consumer...")

	// 1. Connect to database
	db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Println("[CONSUMER] Database connected")

	// 2. Redis untuk invalidasi cache snapshot cart
	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	queries := dbgen.New(db)
	cartRepo := cart.NewRepository(queries)
	productRepo := product.NewRepository(queries)
	cartService := cart.NewService(db, cartRepo, productRepo, cart.NewSnapshotCache(redisClient))

	// 3. Setup Kafka reader
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   orderEventsTopic,
		GroupID: "cart-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	// 4. Start consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, cartService)

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
