package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"example.com/mastermind/internal/app"
	"example.com/mastermind/internal/config"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type options struct {
	Reveal   bool   `long:"reveal" description:"print the secret before the first guess"`
	NoReveal bool   `long:"no-reveal" description:"keep the secret hidden"`
	Strict   bool   `long:"strict" description:"end the game on invalid input instead of asking again"`
	Seed     uint64 `long:"seed" description:"seed for a reproducible game (0 = random)"`
	Stats    bool   `long:"stats" description:"print recorded stats and exit"`
}

// apply lets command-line flags override the environment.
func (o options) apply(cfg *config.Config) {
	if o.Reveal {
		cfg.Game.RevealSecret = true
	}
	if o.NoReveal {
		cfg.Game.RevealSecret = false
	}
	if o.Strict {
		cfg.Game.RetryInvalid = false
	}
	if o.Seed != 0 {
		cfg.Game.Seed = o.Seed
	}
}

// loadConfig reads the environment, applies flag overrides and validates the
// result once.
func loadConfig(o options) (config.Config, error) {
	cfg := config.Load()
	o.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func main() {
	_ = godotenv.Load()

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, app.Options{})
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}

	if opts.Stats {
		err = a.PrintStats(ctx)
	} else {
		err = a.Run(ctx)
	}
	_ = a.Close()

	if err != nil {
		log.Error("game aborted", "err", err)
		os.Exit(1)
	}
}
