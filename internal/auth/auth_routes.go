package auth

import (
	"go-retail-pos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		// 1. Register (Sangat Ketat - per IP)
		// Mencegah bot membuat ribuan akun palsu.
		auth.POST("/register",
			middleware.RateLimitByIP(0.05, 1),
			handler.Register,
		)

		// 2. Login (Ketat - per IP)
		// Mencegah Brute Force password.
		auth.POST("/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.Login,
		)

		// 3. Refresh Token (Menengah - per IP)
		auth.POST("/refresh",
			middleware.RateLimitByIP(0.5, 2),
			handler.RefreshToken,
		)

		// 4. Logout & Me (Authenticated - per User)
		authenticated := auth.Group("/")
		authenticated.Use(middleware.AuthMiddleware())
		{
			authenticated.GET("/me",
				middleware.RateLimitByUser(5, 10),
				handler.Me,
			)

			authenticated.POST("/logout",
				middleware.RateLimitByUser(1, 2),
				handler.Logout,
			)
		}
	}
}
