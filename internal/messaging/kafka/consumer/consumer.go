package consumer

import (
	"context"
	"log"

	"go-retail-pos/internal/cart"
	"go-retail-pos/internal/order"

	"github.com/segmentio/kafka-go"
)

// MessageReader dipenuhi *kafka.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

func ConsumeMessages(ctx context.Context, reader MessageReader, cartService cart.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == order.EventOrderCreated {
			if err := handleOrderCreated(ctx, msg.Value, cartService); err != nil {
				log.Printf("[CONSUMER] Error handling ORDER_CREATED: %v", err)
			} else {
				if err := reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("[CONSUMER] Error committing message: %v", err)
				}
			}
		} else {
			// Skip unknown event types
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
