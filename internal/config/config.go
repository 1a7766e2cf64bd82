// Package config handles application configuration
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/gamepulse/gamepulse-api/internal/advisor"
	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/llm"
)

// Config holds the application configuration
type Config struct {
	// Environment (development, production)
	Environment string

	// HTTP server address
	HTTPAddr string

	// gRPC server address
	GRPCAddr string

	// Database connection string. Empty keeps users in memory.
	DatabaseURL string

	// Catalog source configuration
	Catalog CatalogConfig

	// Text generation configuration
	LLM LLMConfig

	// TLS configuration for gRPC
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string

	// Rate limiting
	RateLimitPerClient int
}

// CatalogConfig holds catalog source configuration
type CatalogConfig struct {
	// Backend type: embedded, local, s3, minio
	Backend string
	// Local catalog file
	Path string
	// S3/MinIO endpoint (for MinIO or custom S3-compatible storage)
	Endpoint string
	// S3 region
	Region string
	// S3 bucket name
	Bucket string
	// Object key of the catalog document
	Key string
	// Access key ID for S3/MinIO
	AccessKeyID string
	// Secret access key for S3/MinIO
	SecretAccessKey string
}

// LLMConfig holds text generation configuration
type LLMConfig struct {
	BaseURL string
	// APIKey enables text generation. Empty disables it and every generated
	// answer uses its fallback.
	APIKey           string
	Model            string
	Timeout          time.Duration
	MaxResponseBytes int64
}

// Enabled reports whether text generation is configured
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	llmDefaults := llm.DefaultConfig()
	catalogDefaults := catalog.DefaultSourceConfig()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:    getEnv("GRPC_ADDR", ":9090"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Catalog: CatalogConfig{
			Backend:         getEnv("CATALOG_SOURCE", string(catalogDefaults.Backend)),
			Path:            getEnv("CATALOG_PATH", "/etc/gamepulse/catalog.yaml"),
			Endpoint:        getEnv("CATALOG_S3_ENDPOINT", ""),
			Region:          getEnv("CATALOG_S3_REGION", catalogDefaults.Region),
			Bucket:          getEnv("CATALOG_S3_BUCKET", catalogDefaults.Bucket),
			Key:             getEnv("CATALOG_S3_KEY", catalogDefaults.Key),
			AccessKeyID:     getEnv("CATALOG_S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("CATALOG_S3_SECRET_ACCESS_KEY", ""),
		},
		LLM: LLMConfig{
			BaseURL:          getEnv("LLM_BASE_URL", llmDefaults.BaseURL),
			APIKey:           getEnv("HF_TOKEN", ""),
			Model:            getEnv("LLM_MODEL", llmDefaults.Model),
			Timeout:          getEnvDuration("LLM_TIMEOUT", llmDefaults.Timeout),
			MaxResponseBytes: int64(getEnvInt("LLM_MAX_RESPONSE_BYTES", int(llmDefaults.MaxResponseBytes))),
		},
		TLSEnabled:         getEnvBool("TLS_ENABLED", false),
		TLSCertFile:        getEnv("TLS_CERT_FILE", "/etc/gamepulse/certs/server.crt"),
		TLSKeyFile:         getEnv("TLS_KEY_FILE", "/etc/gamepulse/certs/server.key"),
		TLSCAFile:          getEnv("TLS_CA_FILE", "/etc/gamepulse/certs/ca.crt"),
		RateLimitPerClient: getEnvInt("RATE_LIMIT_PER_CLIENT", 120),
	}

	return cfg, nil
}

// CatalogSource converts the catalog settings for catalog.Load
func (c *Config) CatalogSource() *catalog.SourceConfig {
	return &catalog.SourceConfig{
		Backend:         catalog.SourceBackend(c.Catalog.Backend),
		Path:            c.Catalog.Path,
		Endpoint:        c.Catalog.Endpoint,
		Region:          c.Catalog.Region,
		Bucket:          c.Catalog.Bucket,
		Key:             c.Catalog.Key,
		AccessKeyID:     c.Catalog.AccessKeyID,
		SecretAccessKey: c.Catalog.SecretAccessKey,
	}
}

// LLMClient converts the text generation settings for llm.New
func (c *Config) LLMClient() llm.Config {
	return llm.Config{
		BaseURL:          c.LLM.BaseURL,
		APIKey:           c.LLM.APIKey,
		Model:            c.LLM.Model,
		Timeout:          c.LLM.Timeout,
		MaxResponseBytes: c.LLM.MaxResponseBytes,
	}
}

// Advisor returns advisor settings whose generation timeout follows LLM_TIMEOUT
func (c *Config) Advisor() advisor.Config {
	cfg := advisor.DefaultConfig()
	if c.LLM.Timeout > 0 {
		cfg.GenerationTimeout = c.LLM.Timeout
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
