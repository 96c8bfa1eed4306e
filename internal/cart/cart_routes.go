package cart

import (
	"go-retail-pos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")

	// Cart juga melayani guest (userKey "guest"), jadi auth bersifat opsional.
	carts.Use(middleware.OptionalAuthMiddleware())
	{
		carts.GET("/:userId",
			middleware.RateLimitByUser(10, 20),
			handler.Snapshot,
		)

		mutationLimit := middleware.RateLimitByUser(5, 10)

		carts.POST("/add", mutationLimit, handler.AddItem)
		carts.PUT("/update", mutationLimit, handler.UpdateItem)
		carts.DELETE("/remove", mutationLimit, handler.RemoveItem)
		carts.DELETE("/clear/:userId", mutationLimit, handler.Clear)
	}
}
