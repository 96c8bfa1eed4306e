package app

import (
	"database/sql"

	"go-retail-pos/internal/auth"
	"go-retail-pos/internal/cart"
	"go-retail-pos/internal/category"
	"go-retail-pos/internal/order"
	"go-retail-pos/internal/outbox"
	"go-retail-pos/internal/product"
	"go-retail-pos/internal/shared/database/dbgen"
	"go-retail-pos/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, db *sql.DB, rdb *redis.Client) {
	queries := dbgen.New(db)

	// --- Repositories ---
	authRepo := auth.NewRepository(queries)
	userRepo := user.NewRepository(queries)
	categoryRepo := category.NewRepository(queries)
	productRepo := product.NewRepository(queries)
	cartRepo := cart.NewRepository(queries)
	orderRepo := order.NewRepository(queries)
	outboxRepo := outbox.NewRepository(queries)

	// --- Caches ---
	productListCache := product.NewListCache(rdb)
	cartSnapshotCache := cart.NewSnapshotCache(rdb)

	// --- Services ---
	authService := auth.NewService(authRepo)
	userService := user.NewService(userRepo)
	categoryService := category.NewService(categoryRepo)
	productService := product.NewService(productRepo, productListCache)
	cartService := cart.NewService(db, cartRepo, productRepo, cartSnapshotCache)
	orderService := order.NewService(order.Deps{
		DB:       db,
		Orders:   orderRepo,
		Carts:    cartService,
		Products: productRepo,
		Outbox:   outboxRepo,
		Logger:   zap.L(),
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	categoryHandler := category.NewHandler(categoryService)
	productHandler := product.NewHandler(productService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler)
		category.RegisterRoutes(api, categoryHandler)
		product.RegisterRoutes(api, productHandler)
		cart.RegisterRoutes(api, cartHandler)
		order.RegisterRoutes(api, orderHandler, rdb)
	}
}
