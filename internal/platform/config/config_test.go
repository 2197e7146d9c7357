package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT", "VITALS_HISTORY_DAYS", "INJURY_LOOKBACK_DAYS", "ACTIVE_EVENT_DAYS", "SESSION_IDLE_MINUTES", "REFERENCE_DATE"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, `
addr: ":9000"
log:
  level: debug
  format: json
injury_lookback_days: 30
reference_date: "2026-01-20"
`)
	t.Setenv("PORT", "7070")
	t.Setenv("ACTIVE_EVENT_DAYS", "7")
	t.Setenv("SESSION_IDLE_MINUTES", "0")

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 30, cfg.InjuryLookbackDays)
	assert.Equal(t, 7, cfg.ActiveEventDays)
	assert.Equal(t, 180, cfg.VitalsHistoryDays)
	assert.Zero(t, cfg.SessionIdleTTL())
	assert.Equal(t, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), cfg.Clock()())
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeFile(t, "reference_date: 20-01-2026\n"))
	assert.ErrorContains(t, err, "reference_date")

	_, err = Load(writeFile(t, "vitals_history_days: 0\n"))
	assert.ErrorContains(t, err, "vitals_history_days")

	_, err = Load(writeFile(t, "session_idle_minutes: -5\n"))
	assert.ErrorContains(t, err, "session_idle_minutes")

	_, err = Load(writeFile(t, "addr: [\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestLoad_BadEnvIntKeepsValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("VITALS_HISTORY_DAYS", "lots")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 180, cfg.VitalsHistoryDays)
}

func TestClock_RealWhenUnset(t *testing.T) {
	before := time.Now()
	got := Default().Clock()()
	assert.False(t, got.Before(before))
}
