package category

import (
	"go-retail-pos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	categories := r.Group("/categories")
	{
		// Data kategori jarang berubah, limit longgar.
		categories.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.List,
		)

		categories.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.GetByID,
		)

		// Mutasi kategori khusus admin.
		admin := categories.Group("/")
		admin.Use(
			middleware.AuthMiddleware(),
			middleware.RoleMiddleware("ADMIN"),
		)
		{
			mutationLimit := middleware.RateLimitByUser(1, 3)

			admin.POST("", mutationLimit, handler.Create)
			admin.PUT("/:id", mutationLimit, handler.Update)
			admin.DELETE("/:id", mutationLimit, handler.Delete)
		}
	}
}
