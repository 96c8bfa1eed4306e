package consumer

import (
	"context"
	"encoding/json"
	"log"

	"go-retail-pos/internal/cart"
	"go-retail-pos/internal/order"
)

// handleOrderCreated mengosongkan cart milik user setelah ordernya
// berhasil dibuat.
func handleOrderCreated(ctx context.Context, payload []byte, cartService cart.Service) error {
	var data order.OrderCreatedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Clearing cart for user: %s (order %s)", data.UserID, data.OrderNumber)

	if _, err := cartService.Clear(ctx, data.UserID); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Cart cleared successfully for user: %s", data.UserID)
	return nil
}
