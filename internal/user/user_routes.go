package user

import (
	"go-retail-pos/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"))
	{
		users.GET("", handler.List)
		users.GET("/:id", handler.GetByID)
		users.POST("", handler.Create)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}
