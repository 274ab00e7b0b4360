package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ifrashafqat/job-portal/internal/config"
	"github.com/ifrashafqat/job-portal/internal/handlers"
	"github.com/ifrashafqat/job-portal/internal/logging"
	"github.com/ifrashafqat/job-portal/internal/services"
	"github.com/ifrashafqat/job-portal/internal/store"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside local dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	if err := logging.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	logger := logging.Logger
	defer logger.Sync()

	// 2. Persistence: strategy was resolved once in config.Load. The
	// in-memory tier always exists; postgres joins it in durable mode.
	memory := store.NewMemoryStore()
	var durable store.Store
	if cfg.StoreMode == config.StoreModeDurable {
		pg, err := store.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			logger.Warn("postgres unreachable at startup, serving from the in-memory store", zap.Error(err))
		} else {
			logger.Info("postgres connection established")
			durable = pg
		}
	} else {
		logger.Info("running on the in-memory store", zap.String("mode", string(cfg.StoreMode)))
	}
	adapter := store.NewAdapter(durable, memory, logger)

	// 3. Core Services
	appService := services.NewApplicationService(adapter, logger)

	// 4. Handlers
	appHandler := handlers.NewApplicationHandler(appService, logger, cfg.IsProduction())

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/applications", appHandler.Create)
		api.GET("/applications", appHandler.List)
		api.PATCH("/applications/:id/status", appHandler.UpdateStatus)
	}

	logger.Info("server starting", zap.Int("port", cfg.Port))
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
