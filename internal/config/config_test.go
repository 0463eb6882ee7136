package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"SERVER_PORT", "LOG_LEVEL", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ServerPort != "3001" {
		t.Errorf("ServerPort = %q, want 3001", cfg.ServerPort)
	}
	if got := cfg.DSN(); got != "host=localhost port=5432 user=postgres password=postgres dbname=quizbuilder sslmode=disable" {
		t.Errorf("DSN = %q", got)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel = %v", cfg.SlogLevel())
	}
}

func TestDatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/quiz")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()
	if cfg.DSN() != "postgres://u:p@db:5432/quiz" {
		t.Errorf("DSN = %q", cfg.DSN())
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v", cfg.SlogLevel())
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoadClient(t *testing.T) {
	t.Setenv("QUIZ_API_URL", "http://api.test/")
	t.Setenv("QUIZ_API_TIMEOUT", "bogus")

	cfg := LoadClient()
	if cfg.APIURL != "http://api.test" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}
