package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Addr    string    `yaml:"addr"`
	AppName string    `yaml:"app_name"`
	Log     LogConfig `yaml:"log"`

	VitalsHistoryDays  int `yaml:"vitals_history_days"`
	InjuryLookbackDays int `yaml:"injury_lookback_days"`
	ActiveEventDays    int `yaml:"active_event_days"`

	// SessionIdleMinutes: sesiones sin requests por más de esto se descartan. 0 = nunca.
	SessionIdleMinutes int `yaml:"session_idle_minutes"`

	// ReferenceDate fija el "hoy" (YYYY-MM-DD). Vacío = reloj real.
	ReferenceDate string `yaml:"reference_date"`
}

func Default() Config {
	return Config{
		Addr:               ":8080",
		AppName:            "equine-vet-dashboard",
		Log:                LogConfig{Level: "info", Format: "text"},
		VitalsHistoryDays:  180,
		InjuryLookbackDays: 90,
		ActiveEventDays:    14,
		SessionIdleMinutes: 60,
	}
}

// Load: defaults -> archivo YAML (si path != "") -> env.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Addr = ":" + v
	}
	c.AppName = getenv("APP_NAME", c.AppName)
	c.Log.Level = getenv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenv("LOG_FORMAT", c.Log.Format)
	c.VitalsHistoryDays = getenvInt("VITALS_HISTORY_DAYS", c.VitalsHistoryDays)
	c.InjuryLookbackDays = getenvInt("INJURY_LOOKBACK_DAYS", c.InjuryLookbackDays)
	c.ActiveEventDays = getenvInt("ACTIVE_EVENT_DAYS", c.ActiveEventDays)
	c.SessionIdleMinutes = getenvInt("SESSION_IDLE_MINUTES", c.SessionIdleMinutes)
	c.ReferenceDate = getenv("REFERENCE_DATE", c.ReferenceDate)
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr required"))
	}
	if c.VitalsHistoryDays <= 0 {
		errs = append(errs, errors.New("vitals_history_days must be positive"))
	}
	if c.InjuryLookbackDays <= 0 {
		errs = append(errs, errors.New("injury_lookback_days must be positive"))
	}
	if c.ActiveEventDays <= 0 {
		errs = append(errs, errors.New("active_event_days must be positive"))
	}
	if c.SessionIdleMinutes < 0 {
		errs = append(errs, errors.New("session_idle_minutes must not be negative"))
	}
	if c.ReferenceDate != "" {
		if _, err := time.Parse(dateLayout, c.ReferenceDate); err != nil {
			errs = append(errs, fmt.Errorf("reference_date must be YYYY-MM-DD: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SessionIdleTTL es SessionIdleMinutes como duración (0 = sin expiración).
func (c Config) SessionIdleTTL() time.Duration {
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

// Clock devuelve el reloj de la app: fijo si hay ReferenceDate, time.Now si no.
func (c Config) Clock() func() time.Time {
	if c.ReferenceDate == "" {
		return time.Now
	}
	ref, err := time.Parse(dateLayout, c.ReferenceDate)
	if err != nil {
		return time.Now
	}
	return func() time.Time { return ref }
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return n
}
