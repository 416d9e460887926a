package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/SoloCompta/solo_compta_app/cmd/docs"
	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kv"
	"github.com/SoloCompta/solo_compta_app/internal/adapters/storage/kvrepo"
	"github.com/SoloCompta/solo_compta_app/internal/core/services"
	"github.com/SoloCompta/solo_compta_app/internal/handlers"
	"github.com/SoloCompta/solo_compta_app/internal/middleware"
	"github.com/SoloCompta/solo_compta_app/internal/platform/config"
	"github.com/SoloCompta/solo_compta_app/pkg/database"
)

// @title Solo Compta Backend API
// @version 1.0
// @description REST backend for the Solo Compta micro-entrepreneur tracker.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage backend",
			slog.String("backend", cfg.StorageBackend),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing storage backend", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Storage backend ready", slog.String("backend", cfg.StorageBackend))

	repos := kvrepo.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(*repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	}
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermemory.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore builds the key-value store selected by STORAGE_BACKEND.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (kv.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return kv.NewMemoryStore(), nil
	case config.BackendFile:
		return kv.NewFileStore(cfg.DataDir)
	case config.BackendSQLite:
		return kv.NewSQLiteStore(cfg.SQLitePath)
	case config.BackendRedis:
		return kv.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.BackendPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return kv.NewPostgresStore(pool), nil
	default:
		// LoadConfig normalizes the backend name; this is unreachable.
		return kv.NewMemoryStore(), nil
	}
}

// runMigrations applies the SQL migrations against the postgres backend
// through a short-lived database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
