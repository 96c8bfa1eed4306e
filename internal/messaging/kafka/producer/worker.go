package producer

import (
	"context"
	"log"
	"time"

	"go-retail-pos/internal/outbox"
)

const (
	pollInterval = 5 * time.Second
	batchSize    = 10
)

// ProcessOutboxEvents mem-polling outbox setiap 5 detik dan
// mempublikasikan event PENDING ke Kafka.
func ProcessOutboxEvents(ctx context.Context, repo outbox.Repository, writer MessageWriter) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Println("[WORKER] Outbox processor started (polling every 5s)")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ProcessPendingEvents(ctx, repo, writer); err != nil {
				log.Printf("[WORKER] Error processing events: %v", err)
			}
		}
	}
}

// ProcessPendingEvents memproses satu batch; dipisah agar bisa dites
// tanpa menunggu ticker.
func ProcessPendingEvents(ctx context.Context, repo outbox.Repository, writer MessageWriter) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	log.Printf("[WORKER] Processing %d pending events", len(events))

	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			// Publish gagal = FAILED; tidak ada retry otomatis
			log.Printf("[WORKER] Failed to publish event %s: %v", event.ID, err)
			_ = repo.MarkFailed(ctx, event.ID)
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Printf("[WORKER] Failed to mark event %s as SENT: %v", event.ID, err)
			continue
		}

		log.Printf("[WORKER] Event %s sent and marked successfully", event.ID)
	}

	return nil
}
