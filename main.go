package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-service/controllers"
	"storefront-service/middleware"
	"storefront-service/repository"
	"storefront-service/routes"
	"storefront-service/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// --- Store & seeding ---

	store := repository.NewStore(cfg.DataDir)
	if err := store.Init(); err != nil {
		zap.L().Fatal("Store initialization failed", zap.Error(err))
	}

	// --- Dependency injection ---

	productService := services.NewProductService(store)
	categoryService := services.NewCategoryService(store)
	orderService := services.NewOrderService(store)
	authService := services.NewAuthService(store, cfg.AdminIDs)
	statsService := services.NewStatsService(store)

	productController := controllers.NewProductController(productService)
	categoryController := controllers.NewCategoryController(categoryService)
	orderController := controllers.NewOrderController(orderService)
	authController := controllers.NewAuthController(authService)
	adminController := controllers.NewAdminController(statsService, Version)

	// --- HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default()) // the Mini App is served cross-origin inside Telegram
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit(rate.Every(time.Second/20), 40))

	routes.RegisterRoutes(r, cfg.StaticDir,
		productController, categoryController, orderController, authController, adminController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront service starting",
			zap.String("port", cfg.Port),
			zap.String("data_dir", cfg.DataDir))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down storefront service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Storefront service stopped gracefully")
}
