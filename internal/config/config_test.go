package config_test

import (
	"os"
	"testing"

	"github.com/oxhq/astmatch/internal/config"
)

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	os.Unsetenv("ASTM_HISTORY_DSN")
	os.Unsetenv("ASTM_RETENTION_RUNS")

	cfg := config.Load()
	if cfg.HistoryDSN != "astmatch_history.db" {
		t.Fatalf("HistoryDSN = %q", cfg.HistoryDSN)
	}
	if cfg.RetentionRuns != 20 {
		t.Fatalf("RetentionRuns = %d", cfg.RetentionRuns)
	}
}

func TestLoad_ReadsOverrides(t *testing.T) {
	os.Setenv("ASTM_RETENTION_RUNS", "5")
	defer os.Unsetenv("ASTM_RETENTION_RUNS")

	cfg := config.Load()
	if cfg.RetentionRuns != 5 {
		t.Fatalf("RetentionRuns = %d, want 5", cfg.RetentionRuns)
	}
}
