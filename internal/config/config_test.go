package config

import (
	"testing"
	"time"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "HF_TOKEN", "CATALOG_SOURCE", "LLM_TIMEOUT", "RATE_LIMIT_PER_CLIENT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPAddr != ":8080" || cfg.GRPCAddr != ":9090" {
		t.Errorf("Unexpected addresses: %s %s", cfg.HTTPAddr, cfg.GRPCAddr)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("Expected empty database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.LLM.Enabled() {
		t.Error("Text generation should be disabled without a token")
	}
	if cfg.LLM.Timeout != 20*time.Second {
		t.Errorf("Expected 20s LLM timeout, got %s", cfg.LLM.Timeout)
	}
	if cfg.RateLimitPerClient != 120 {
		t.Errorf("Expected rate limit 120, got %d", cfg.RateLimitPerClient)
	}
	if src := cfg.CatalogSource(); src.Backend != catalog.SourceEmbedded {
		t.Errorf("Expected embedded catalog, got %s", src.Backend)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "postgres://db:5432/gamepulse")
	t.Setenv("HF_TOKEN", "hf_secret")
	t.Setenv("LLM_MODEL", "some/model")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("LLM_MAX_RESPONSE_BYTES", "1024")
	t.Setenv("CATALOG_SOURCE", "minio")
	t.Setenv("CATALOG_S3_ENDPOINT", "http://minio:9000")
	t.Setenv("CATALOG_S3_BUCKET", "games")
	t.Setenv("TLS_ENABLED", "true")
	t.Setenv("RATE_LIMIT_PER_CLIENT", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Environment != "production" || cfg.DatabaseURL != "postgres://db:5432/gamepulse" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if !cfg.TLSEnabled || cfg.RateLimitPerClient != 30 {
		t.Errorf("Unexpected gRPC settings: tls=%v limit=%d", cfg.TLSEnabled, cfg.RateLimitPerClient)
	}

	client := cfg.LLMClient()
	if client.APIKey != "hf_secret" || client.Model != "some/model" || client.Timeout != 45*time.Second || client.MaxResponseBytes != 1024 {
		t.Errorf("Unexpected LLM client config: %+v", client)
	}

	if got := cfg.Advisor().GenerationTimeout; got != 45*time.Second {
		t.Errorf("Advisor generation timeout = %s, want 45s", got)
	}

	src := cfg.CatalogSource()
	if src.Backend != catalog.SourceMinIO || src.Endpoint != "http://minio:9000" || src.Bucket != "games" {
		t.Errorf("Unexpected catalog source: %+v", src)
	}
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_PER_CLIENT", "many")
	t.Setenv("TLS_ENABLED", "maybe")

	cfg, _ := Load()
	if cfg.LLM.Timeout != 20*time.Second {
		t.Errorf("Expected default timeout, got %s", cfg.LLM.Timeout)
	}
	if cfg.RateLimitPerClient != 120 {
		t.Errorf("Expected default rate limit, got %d", cfg.RateLimitPerClient)
	}
	if cfg.TLSEnabled {
		t.Error("Expected TLS disabled for unparsable value")
	}
}
