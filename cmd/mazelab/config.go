package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazelab/pursuit"
)

// Environment keys read by loadConfig.
const (
	envWidth      = "MAZELAB_WIDTH"
	envHeight     = "MAZELAB_HEIGHT"
	envSeed       = "MAZELAB_SEED"
	envLogLevel   = "MAZELAB_LOG_LEVEL"
	envDifficulty = "MAZELAB_DIFFICULTY"
	envFile       = "MAZELAB_ENV_FILE"
)

var errInvalidConfig = errors.New("mazelab: invalid configuration")

// Config holds the CLI settings. Flags override the environment, which
// overrides values from the env file.
type Config struct {
	Width      int    `validate:"gte=5,lte=101,odd"`
	Height     int    `validate:"gte=5,lte=101,odd"`
	Seed       int64  // 0 selects the generator's default seed
	LogLevel   string `validate:"oneof=debug info warn error"`
	Difficulty string `validate:"required"`
}

func defaultConfig() Config {
	return Config{Width: 21, Height: 21, LogLevel: "info", Difficulty: pursuit.Easy.String()}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("odd", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 != 0
	})
	return v
}

var validate = newValidator()

// Validate checks ranges and that Difficulty parses.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Join(errInvalidConfig, err)
	}
	if _, err := pursuit.ParseDifficulty(c.Difficulty); err != nil {
		return errors.Join(errInvalidConfig, err)
	}
	return nil
}

// SlogLevel maps LogLevel onto slog.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig reads defaults, then the env files that exist, then getenv.
// It does not validate: flags may still change the result.
func loadConfig(getenv func(string) string, files ...string) (Config, error) {
	fileVars := map[string]string{}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		vars, err := godotenv.Read(existing...)
		if err != nil {
			return Config{}, fmt.Errorf("read env file: %w", err)
		}
		fileVars = vars
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fileVars[key]
	}

	cfg := defaultConfig()
	var err error
	if cfg.Width, err = envInt(lookup, envWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = envInt(lookup, envHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if v := lookup(envSeed); v != "" {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
	}
	if v := lookup(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := lookup(envDifficulty); v != "" {
		cfg.Difficulty = v
	}
	return cfg, nil
}

func envInt(lookup func(string) string, key string, def int) (int, error) {
	v := lookup(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
