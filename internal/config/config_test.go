package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all LOTO_ env vars to test pure defaults
	envVars := []string{
		"LOTO_PORT", "LOTO_METRICS_PORT", "LOTO_EVENTS_URL",
		"LOTO_DEFAULT_GAME", "LOTO_MAX_BATCH_SIZE", "LOTO_LOG_LEVEL", "LOTO_LOG_FORMAT",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, 8700, cfg.Server.Port)
	assert.Equal(t, 8701, cfg.Server.MetricsPort)
	assert.Equal(t, "", cfg.Events.URL)
	assert.Equal(t, "loto6", cfg.Game.Default)
	assert.Equal(t, 100, cfg.Game.MaxBatchSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOTO_PORT", "9100")
	t.Setenv("LOTO_METRICS_PORT", "9101")
	t.Setenv("LOTO_EVENTS_URL", "nats://nats:4222")
	t.Setenv("LOTO_DEFAULT_GAME", "loto7")
	t.Setenv("LOTO_MAX_BATCH_SIZE", "25")
	t.Setenv("LOTO_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 9101, cfg.Server.MetricsPort)
	assert.Equal(t, "nats://nats:4222", cfg.Events.URL)
	assert.Equal(t, "loto7", cfg.Game.Default)
	assert.Equal(t, 25, cfg.Game.MaxBatchSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestLoadFromFile(t *testing.T) {
	for _, k := range []string{"LOTO_PORT", "LOTO_DEFAULT_GAME"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), "loto.yaml")
	data := []byte("server:\n  port: 8800\ngame:\n  default: loto7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assert.Equal(t, 8800, cfg.Server.Port)
	assert.Equal(t, "loto7", cfg.Game.Default)
	// Untouched sections keep their defaults.
	assert.Equal(t, 8701, cfg.Server.MetricsPort)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/loto.yaml")
	assert.Error(t, err)
}
