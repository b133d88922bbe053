package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/finbook-dev/finbook/internal/core/services"
	"github.com/finbook-dev/finbook/internal/dto"
	"github.com/finbook-dev/finbook/internal/handlers"
	"github.com/finbook-dev/finbook/internal/middleware"
	"github.com/finbook-dev/finbook/internal/platform/config"
	"github.com/finbook-dev/finbook/internal/repositories/kv"
	"github.com/finbook-dev/finbook/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	backend, err := newBackend(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage backend", slog.String("error", err.Error()), slog.String("backend", cfg.StorageBackend))
		os.Exit(1)
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			logger.Error("Error closing storage backend", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Storage backend ready", slog.String("backend", cfg.StorageBackend))

	store := kv.NewStore(backend)
	if err := store.LoadSnapshot(context.Background()); err != nil {
		logger.Error("Failed to load snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Entity store loaded")

	repos := kv.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(repos)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterCustomValidations(v); err != nil {
			logger.Error("Failed to register custom validations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("error", err.Error()), slog.String("rate", cfg.RateLimit))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newBackend builds the configured snapshot backend.
func newBackend(cfg *config.Config) (kv.Backend, error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return kv.NewSQLiteBackend(db, cfg.SQLitePath)
	default:
		return kv.NewFileBackend(cfg.DataDir)
	}
}
