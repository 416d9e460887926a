package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Storage selection. Exactly one backend is active at a time.
	StorageBackend string
	DataDir        string // file backend
	SQLitePath     string // sqlite backend
	DatabaseURL    string // postgres backend
	RedisAddr      string // redis backend
	RedisPassword  string
	RedisDB        int

	RateLimit        string // ulule/limiter format, e.g. "100-M"
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_BACKEND", BackendFile)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SQLITE_PATH", "./data/solo_compta.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.StorageBackend = strings.ToLower(viper.GetString("STORAGE_BACKEND"))
	switch cfg.StorageBackend {
	case BackendMemory, BackendFile, BackendSQLite, BackendPostgres, BackendRedis:
	default:
		log.Printf("Warning: unknown STORAGE_BACKEND %q. Defaulting to %s.\n", cfg.StorageBackend, BackendFile)
		cfg.StorageBackend = BackendFile
	}

	cfg.DataDir = viper.GetString("DATA_DIR")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.StorageBackend == BackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. The postgres backend will fail to connect.")
	}

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	origins := viper.GetString("CORS_ALLOW_ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = []string{"*"}
		log.Println("Warning: CORS_ALLOW_ORIGINS is empty. Allowing all origins.")
	}

	return cfg, nil
}
