package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config describes all runtime settings of the game binary.
//
// Loaded once in main, validated, then passed down explicitly.
type Config struct {
	Env string // dev|stage|prod

	Log struct {
		Format string // text|json
		Level  string // debug|info|warn|error
	}

	Game struct {
		MaxAttempts  int
		RevealSecret bool
		RetryInvalid bool
		Seed         uint64 // 0 => random
	}

	Postgres struct {
		URL           string // empty => stats disabled
		RunMigrations bool
	}

	Redis struct {
		Addr      string // empty => leaderboard disabled
		DB        int
		ResultTTL time.Duration
	}
}

// LoadFromEnv is Load followed by Validate.
func LoadFromEnv() (Config, error) {
	c := Load()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the environment without validating, so callers can layer
// command-line overrides on top before calling Validate.
func Load() Config {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Log.Format = envString("LOG_FORMAT", "text")
	c.Log.Level = envString("LOG_LEVEL", "info")

	c.Game.MaxAttempts = envInt("GAME_MAX_ATTEMPTS", 6)
	c.Game.RevealSecret = envBool("GAME_REVEAL_SECRET", c.Env == "dev")
	c.Game.RetryInvalid = envBool("GAME_RETRY_INVALID", true)
	c.Game.Seed = envUint64("GAME_SEED", 0)

	c.Postgres.URL = envString("DATABASE_URL", "")
	c.Postgres.RunMigrations = envBool("RUN_MIGRATIONS", true)

	c.Redis.Addr = envString("REDIS_ADDR", "")
	c.Redis.DB = envInt("REDIS_DB", 0)
	c.Redis.ResultTTL = envDuration("RESULT_TTL", 30*24*time.Hour)
	return c
}

func (c Config) Validate() error {
	if c.Game.MaxAttempts < 1 || c.Game.MaxAttempts > 6 {
		return fmt.Errorf("GAME_MAX_ATTEMPTS=%d out of range (want 1..6)", c.Game.MaxAttempts)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Redis.Addr != "" && c.Redis.ResultTTL <= 0 {
		return errors.New("RESULT_TTL must be positive")
	}
	if c.Env != "dev" && c.Game.RevealSecret {
		return fmt.Errorf("refuse to reveal the secret in %s", c.Env)
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("unsupported LOG_LEVEL=%q", c.Log.Level)
	}
	return lvl, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envUint64(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}
