package producer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-retail-pos/internal/messaging/kafka/producer"
	outboxMock "go-retail-pos/internal/mock/outbox"
	"go-retail-pos/internal/shared/database/dbgen"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("success_publishes_and_marks_sent", func(t *testing.T) {
		repo := outboxMock.NewMockRepository(ctrl)
		writer := &fakeWriter{}

		eventID := uuid.New()
		aggregateID := uuid.New()
		payload, _ := json.Marshal(map[string]string{"orderId": aggregateID.String()})

		repo.EXPECT().
			ListPending(ctx, int32(10)).
			Return([]dbgen.OutboxEvent{
				{
					ID:            eventID,
					AggregateType: "order",
					AggregateID:   aggregateID,
					EventType:     "ORDER_CREATED",
					Payload:       payload,
					Status:        "PENDING",
				},
			}, nil)
		repo.EXPECT().MarkSent(ctx, eventID).Return(nil)

		err := producer.ProcessPendingEvents(ctx, repo, writer)

		assert.NoError(t, err)
		assert.Len(t, writer.messages, 1)

		msg := writer.messages[0]
		assert.Equal(t, aggregateID.String(), string(msg.Key))
		assert.Equal(t, payload, []byte(msg.Value))

		var eventType string
		for _, h := range msg.Headers {
			if h.Key == "event_type" {
				eventType = string(h.Value)
			}
		}
		assert.Equal(t, "ORDER_CREATED", eventType)
	})

	t.Run("publish_failure_marks_failed_without_retry", func(t *testing.T) {
		repo := outboxMock.NewMockRepository(ctrl)
		writer := &fakeWriter{err: errors.New("broker down")}

		eventID := uuid.New()

		repo.EXPECT().
			ListPending(ctx, int32(10)).
			Return([]dbgen.OutboxEvent{
				{ID: eventID, EventType: "ORDER_CREATED", Status: "PENDING"},
			}, nil)
		repo.EXPECT().MarkFailed(ctx, eventID).Return(nil)

		err := producer.ProcessPendingEvents(ctx, repo, writer)

		assert.NoError(t, err)
		assert.Empty(t, writer.messages)
	})

	t.Run("empty_batch_is_noop", func(t *testing.T) {
		repo := outboxMock.NewMockRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, int32(10)).Return(nil, nil)

		err := producer.ProcessPendingEvents(ctx, repo, writer)

		assert.NoError(t, err)
		assert.Empty(t, writer.messages)
	})
}
