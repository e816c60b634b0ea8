package config

import (
	"strings"
	"testing"
	"time"
)

// setRequiredEnv sets the minimum environment for LoadConfig to succeed.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "croptrack")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "croptrack")
	t.Setenv("JWT_SECRET", "test-jwt-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 {
		t.Errorf("unexpected DB defaults: %s:%d", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.DB.MaxSize != 10 {
		t.Errorf("unexpected default pool size: %d", cfg.DB.MaxSize)
	}
	if cfg.Auth.AccessTokenDuration != time.Hour {
		t.Errorf("default token duration should be 1h, got %v", cfg.Auth.AccessTokenDuration)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("unexpected default port: %s", cfg.Server.Port)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_POOL_SIZE", "25")
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "30m")
	t.Setenv("PORT", "9000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.DB.Host != "db.internal" || cfg.DB.Port != 5433 || cfg.DB.MaxSize != 25 {
		t.Errorf("overrides not applied: %+v", cfg.DB)
	}
	if cfg.Auth.AccessTokenDuration != 30*time.Minute {
		t.Errorf("duration override not applied: %v", cfg.Auth.AccessTokenDuration)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port override not applied: %s", cfg.Server.Port)
	}
}

func TestLoadConfig_MissingRequiredCollected(t *testing.T) {
	// Only one of the required variables is present; the error must name
	// each missing one.
	t.Setenv("DB_USER", "croptrack")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error for missing required variables, got nil")
	}
	for _, name := range []string{"DB_PASSWORD", "DB_NAME", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should mention %s: %v", name, err)
		}
	}
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_TOKEN_DURATION", "sixty minutes")

	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), "JWT_ACCESS_TOKEN_DURATION") {
		t.Fatalf("expected duration parse error, got %v", err)
	}
}

func TestLoadConfig_PoolSizeClamped(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_POOL_SIZE", "500")

	// Clamping is reported as a configuration error rather than silently
	// adjusted.
	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), "DB_POOL_SIZE") {
		t.Fatalf("expected pool size error, got %v", err)
	}
}
