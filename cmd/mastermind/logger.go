package main

import (
	"log/slog"
	"os"

	"example.com/mastermind/internal/config"
)

// newLogger writes to stderr so stdout carries only the game.
func newLogger(cfg config.Config) *slog.Logger {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(os.Stderr, hopts)
	} else {
		h = slog.NewTextHandler(os.Stderr, hopts)
	}
	return slog.New(h).With("env", cfg.Env)
}
