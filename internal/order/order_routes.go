package order

import (
	"go-retail-pos/internal/middleware"

	"github.com/gin-gonic/gin"

	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		// 1. Checkout (Per User + Idempotency)
		// Double submit dari client ditahan idempotency key, bukan retry otomatis.
		orders.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Checkout,
		)

		// 2. Read endpoints
		orders.GET("/user/:id", middleware.RateLimitByUser(5, 10), handler.ListByUser)

		// 3. Cancel milik sendiri (admin boleh semua)
		orders.PUT("/:id/cancel", middleware.RateLimitByUser(1, 3), handler.Cancel)

		// 4. Admin only
		admin := orders.Group("/")
		admin.Use(middleware.RoleMiddleware("ADMIN"))
		{
			admin.GET("", middleware.RateLimitByUser(5, 10), handler.List)
			admin.GET("/stats", middleware.RateLimitByUser(2, 5), handler.Stats)
			admin.PUT("/:id/status", middleware.RateLimitByUser(1, 3), handler.UpdateStatus)
		}

		// Detail ditempatkan terakhir agar tidak menabrak /stats
		orders.GET("/:id", middleware.RateLimitByUser(5, 10), handler.GetByID)
	}
}
