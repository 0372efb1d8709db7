package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "portfolio_test")
	os.Setenv("JWT_SECRET_KEY", "testsecret123456789012345678901234")
	os.Setenv("ADMIN_PASSWORD", "testpassword")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.MongoDB.Database != "portfolio_test" {
		t.Fatalf("unexpected mongo config values: %+v", cfg.MongoDB)
	}
	if cfg.Auth.JWTSecret != "testsecret123456789012345678901234" {
		t.Fatalf("unexpected JWT secret: %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.AdminPassword != "testpassword" {
		t.Fatalf("unexpected admin password: %q", cfg.Auth.AdminPassword)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("TOKEN_TTL_HOURS")
	os.Unsetenv("SERVER_PORT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %v, want 24h default", cfg.Auth.TokenTTL)
	}
	if cfg.Server.Port != "8001" {
		t.Fatalf("Server.Port = %q, want default 8001", cfg.Server.Port)
	}
}
