package product

import (
	"go-retail-pos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		// 1. Public List (Per IP)
		// Cukup longgar agar user asli nyaman browsing, tapi mencegah scraping masif.
		products.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.GetPublicList,
		)

		// 2. Detail Product (Per IP)
		products.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.GetByID,
		)

		// 3. Admin Mutations (Per User)
		admin := products.Group("/")
		admin.Use(middleware.AuthMiddleware())
		admin.Use(middleware.RoleMiddleware("ADMIN"))
		{
			// Mencegah double-click atau script malfungsi yang merusak data.
			adminMutationLimit := middleware.RateLimitByUser(1, 3)

			admin.POST("", adminMutationLimit, handler.Create)
			admin.PUT("/:id", adminMutationLimit, handler.Update)
			admin.DELETE("/:id", adminMutationLimit, handler.Delete)
		}
	}
}
