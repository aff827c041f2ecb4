package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/dhruvahir777/billoza-backend/cache"
	"github.com/dhruvahir777/billoza-backend/controllers"
	"github.com/dhruvahir777/billoza-backend/database"
	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/logger"
	"github.com/dhruvahir777/billoza-backend/middleware"
	"github.com/dhruvahir777/billoza-backend/repository"
	"github.com/dhruvahir777/billoza-backend/routes"
	"github.com/dhruvahir777/billoza-backend/services"
	"github.com/dhruvahir777/billoza-backend/storage"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic("config load failed: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()
	apperrors.Debug = cfg.Debug

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Store ---
	store, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(store.DB)
	menuRepo := repository.NewMenuRepository(store.DB)
	orderRepo := repository.NewOrderRepository(store.DB)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Log.Warn("Failed to ensure user indexes", zap.Error(err))
	}
	if err := orderRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Log.Warn("Failed to ensure order indexes", zap.Error(err))
	}
	indexCancel()

	// --- Image storage ---
	var imageStore storage.Storage
	switch cfg.StorageBackend {
	case "s3":
		imageStore, err = storage.NewS3Storage(context.Background(), cfg.S3Bucket)
	default:
		imageStore, err = storage.NewLocalStorage(cfg.UploadDir)
	}
	if err != nil {
		logger.Log.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	// --- Menu cache (optional) ---
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Log.Warn("Redis unreachable, menu cache disabled", zap.Error(err))
			redisClient = nil
		}
	}
	menuCache := cache.NewMenuCache(redisClient)

	// --- Service wiring ---
	tokens := services.NewTokenManager(cfg.JWTSecret, cfg.TokenExpireMinutes)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, imageStore)
	menuService := services.NewMenuService(menuRepo, imageStore, menuCache)
	orderService := services.NewOrderService(orderRepo)
	reportService := services.NewReportService(orderRepo)

	ctrl := routes.Controllers{
		Auth:    controllers.NewAuthController(authService, tokens),
		Users:   controllers.NewUserController(userService),
		Menu:    controllers.NewMenuController(menuService),
		Orders:  controllers.NewOrderController(orderService),
		Reports: controllers.NewReportController(reportService),
	}

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.DatabaseGate(store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Restaurant Billing API"})
	})

	routes.RegisterRoutes(r, ctrl, tokens, userRepo,
		middleware.RateLimit(cfg.AuthRatePerMinute, cfg.AuthRateBurst))

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		logger.Log.Info("Billing service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down billing service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Log.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
	if err := store.Close(); err != nil {
		logger.Log.Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Log.Info("Billing service stopped gracefully")
}
