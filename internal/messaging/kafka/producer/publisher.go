package producer

import (
	"context"

	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/segmentio/kafka-go"
)

// MessageWriter dipenuhi *kafka.Writer; interface kecil agar worker
// bisa dites tanpa broker.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

func publishEvent(ctx context.Context, writer MessageWriter, event dbgen.OutboxEvent) error {
	msg := kafka.Message{
		Key:   []byte(event.AggregateID.String()),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
