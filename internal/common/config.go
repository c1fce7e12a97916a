package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Catalog    CatalogConfig
	Similarity SimilarityConfig
	Rules      RulesConfig
	Export     ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// CatalogConfig locates the canonical parameter catalog.
// An empty path means the compiled-in default catalog.
type CatalogConfig struct {
	Path string
}

// SimilarityConfig holds line-classification configuration.
// RemoteURL selects the remote scoring service; when empty, the local
// embedding matcher is used against APIBase (an OpenAI-compatible endpoint).
type SimilarityConfig struct {
	RemoteURL string
	APIBase   string
	APIKey    string
	Model     string
	Threshold float64
	Timeout   time.Duration
}

// RulesConfig locates the defect rule table.
// An empty path means the compiled-in default rules.
type RulesConfig struct {
	Path string
}

// ExportConfig controls run artifacts.
// An empty SnapshotDir disables the per-run master CSV snapshot.
type ExportConfig struct {
	SnapshotDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Similarity: SimilarityConfig{
			RemoteURL: getEnv("SIMILARITY_URL", ""),
			APIBase:   getEnv("EMBED_API_BASE", "https://api.openai.com/v1"),
			APIKey:    getEnv("EMBED_API_KEY", ""),
			Model:     getEnv("EMBED_MODEL", "text-embedding-3-small"),
			Threshold: getEnvAsFloat64("MATCH_THRESHOLD", 0.55),
			Timeout:   getEnvAsDuration("SIMILARITY_TIMEOUT", 15*time.Second),
		},
		Rules: RulesConfig{
			Path: getEnv("RULES_PATH", ""),
		},
		Export: ExportConfig{
			SnapshotDir: getEnv("SNAPSHOT_DIR", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Similarity.RemoteURL == "" && c.Similarity.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "SIMILARITY_URL or EMBED_API_KEY is required", ErrInvalidInput)
	}
	if c.Similarity.Threshold < -1 || c.Similarity.Threshold > 1 {
		return NewAppError("CONFIG_ERROR", "MATCH_THRESHOLD must be in [-1,1]", ErrInvalidInput)
	}
	return nil
}
