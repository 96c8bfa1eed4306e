package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-retail-pos/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency melindungi endpoint checkout dari double submit.
// Client mengirim header Idempotency-Key; response sukses pertama
// di-cache 24 jam, request dengan key yang sama dapat response cache.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			// Tanpa key, request diproses seperti biasa
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idempotency:response:%s:%s", userID, key)
		lockKey := fmt.Sprintf("idempotency:lock:%s:%s", userID, key)
		ctx := c.Request.Context()

		// 1. Sudah ada response tersimpan? Kembalikan langsung.
		if cached, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json", cached)
			c.Abort()
			return
		}

		// 2. Lock agar request paralel dengan key sama tidak dobel proses.
		locked, err := rdb.SetNX(ctx, lockKey, "1", 30*time.Second).Result()
		if err == nil && !locked {
			response.Error(c, http.StatusConflict, "DUPLICATE_REQUEST", "Request dengan idempotency key yang sama sedang diproses", nil)
			c.Abort()
			return
		}

		// Handler yang menyimpan hasil ke cache + melepas lock
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
