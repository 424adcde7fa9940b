// Package config assembles server settings from the environment, an optional
// .env file and an optional YAML tuning file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"islandfarm/internal/adapter/repo/memory"
	"islandfarm/internal/domain/farm"
	"islandfarm/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvAddr            = "FARM_ADDR"
	EnvLogLevel        = "LOG_LEVEL"
	EnvDBDSN           = "FARM_DB_DSN"
	EnvMigrationsDir   = "FARM_MIGRATIONS_DIR"
	EnvTuningFile      = "FARM_TUNING_FILE"
	EnvSessionCapacity = "FARM_SESSION_CAPACITY"
	EnvSessionTTL      = "FARM_SESSION_TTL"
	EnvMaxCatchUp      = "FARM_MAX_CATCH_UP"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr     string `validate:"required"`
	LogLevel string `validate:"oneof=trace debug info notice warn error fatal"`
	// DBDSN enables the postgres event journal when set.
	DBDSN string
	// MigrationsDir overrides the embedded migrations.
	MigrationsDir   string
	TuningFile      string
	SessionCapacity int           `validate:"gte=1,lte=1000000"`
	SessionTTL      time.Duration `validate:"gte=1s"`
	MaxCatchUp      time.Duration `validate:"gte=16ms,lte=1h"`
	Tuning          farm.Tuning
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		SessionCapacity: memory.DefaultCapacity,
		SessionTTL:      memory.DefaultTTL,
		MaxCatchUp:      world.DefaultMaxCatchUp,
		Tuning:          farm.DefaultTuning(),
	}
}

// Load reads envFiles (".env" when none are named) without overriding
// variables already set, then the environment, then the tuning file.
// Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	cfg.Addr = stringEnv(lookup, EnvAddr, cfg.Addr)
	cfg.LogLevel = strings.ToLower(stringEnv(lookup, EnvLogLevel, cfg.LogLevel))
	cfg.DBDSN = stringEnv(lookup, EnvDBDSN, "")
	cfg.MigrationsDir = stringEnv(lookup, EnvMigrationsDir, "")
	cfg.TuningFile = stringEnv(lookup, EnvTuningFile, "")
	cfg.SessionCapacity = intEnv(lookup, EnvSessionCapacity, cfg.SessionCapacity)
	cfg.SessionTTL = durationEnv(lookup, EnvSessionTTL, cfg.SessionTTL)
	cfg.MaxCatchUp = durationEnv(lookup, EnvMaxCatchUp, cfg.MaxCatchUp)

	if cfg.TuningFile != "" {
		tuning, err := LoadTuning(cfg.TuningFile, cfg.Tuning)
		if err != nil {
			return Config{}, err
		}
		cfg.Tuning = tuning
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Tuning.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) HLogLevel() hlog.Level {
	switch c.LogLevel {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "notice":
		return hlog.LevelNotice
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	default:
		return hlog.LevelInfo
	}
}

var validate = validator.New()

func stringEnv(lookup func(string) (string, bool), key, fallback string) string {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}

func intEnv(lookup func(string) (string, bool), key string, fallback int) int {
	v := stringEnv(lookup, key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func durationEnv(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	v := stringEnv(lookup, key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
