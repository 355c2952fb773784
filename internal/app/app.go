package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"example.com/mastermind/internal/config"
	"example.com/mastermind/internal/game"
	"example.com/mastermind/internal/migrate"
	"example.com/mastermind/internal/store"
	"example.com/mastermind/internal/terminal"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// leaderboardSize is how many fastest wins --stats shows.
const leaderboardSize = 5

type App struct {
	cfg config.Config
	log *slog.Logger

	db  *pgxpool.Pool
	rdb *redis.Client

	stats   *store.StatsStore
	results game.ResultStore

	recorders []game.ResultRecorder

	prompter  *terminal.Prompter
	presenter *terminal.Presenter
}

type Options struct {
	In  io.Reader // default os.Stdin
	Out io.Writer // default os.Stdout

	// Recorders receive every finished game in addition to the configured stores.
	Recorders []game.ResultRecorder

	// Results keeps finished games when Redis is not configured.
	Results game.ResultStore
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	a := &App{
		cfg:       cfg,
		log:       log,
		recorders: append([]game.ResultRecorder(nil), opts.Recorders...),
		prompter:  terminal.NewPrompter(opts.In, opts.Out),
		presenter: terminal.NewPresenter(opts.Out),
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// --- Postgres ---
	if cfg.Postgres.URL != "" {
		if cfg.Postgres.RunMigrations {
			if err := migrate.Up(cfg.Postgres.URL, log); err != nil {
				return nil, err
			}
		}
		dbpool, err := pgxpool.New(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		if err := dbpool.Ping(pingCtx); err != nil {
			dbpool.Close()
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		a.db = dbpool
		a.stats = store.NewStatsStore(dbpool)
		a.recorders = append(a.recorders, a.stats)
	}

	// --- Redis ---
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			_ = a.Close()
			return nil, fmt.Errorf("redis ping (%s db=%d): %w", cfg.Redis.Addr, cfg.Redis.DB, err)
		}
		a.rdb = rdb
		a.results = game.NewRedisResultStore(rdb, cfg.Redis.ResultTTL)
		a.recorders = append(a.recorders, a.results)
	} else if opts.Results != nil {
		a.results = opts.Results
		a.recorders = append(a.recorders, a.results)
	}

	return a, nil
}

func (a *App) newRand() *rand.Rand {
	if a.cfg.Game.Seed != 0 {
		return game.NewRand(a.cfg.Game.Seed)
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Run plays one game on the configured terminal and records the result.
func (a *App) Run(ctx context.Context) error {
	rng := a.newRand()
	secret := game.RandomCode(rng)

	s := game.NewSession(secret, game.Config{
		MaxAttempts:  a.cfg.Game.MaxAttempts,
		RetryInvalid: a.cfg.Game.RetryInvalid,
	}, rng, a.log)
	s.OnFinish = func(res game.Result) { a.record(ctx, res) }

	a.presenter.Legend(s.MaxAttempts())
	if a.cfg.Game.RevealSecret {
		a.presenter.Secret(secret)
	}

	res, err := s.Play(ctx, a.prompter, a.presenter)
	if err != nil {
		return fmt.Errorf("game %s: %w", s.ID(), err)
	}
	a.presenter.Summary(res)
	return nil
}

// record hands the result to every recorder. Failures are logged only; they
// never change the outcome of the game.
func (a *App) record(ctx context.Context, res game.Result) {
	if len(a.recorders) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	var g errgroup.Group
	for _, r := range a.recorders {
		g.Go(func() error {
			if err := r.Record(ctx, res); err != nil {
				a.log.Warn("record result failed", "session", res.SessionID, "recorder", fmt.Sprintf("%T", r), "err", err)
				return err
			}
			return nil
		})
	}
	_ = g.Wait()
}

// PrintStats shows totals from Postgres and the Redis leaderboard, whichever
// are configured.
func (a *App) PrintStats(ctx context.Context) error {
	if a.stats == nil && a.results == nil {
		a.presenter.Notice("No stats backend configured (set DATABASE_URL and/or REDIS_ADDR).")
		return nil
	}
	if a.stats != nil {
		st, err := a.stats.Summary(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		a.presenter.Totals(st)
	}
	if a.results != nil {
		top, err := a.results.Fastest(ctx, leaderboardSize)
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}
		a.presenter.Leaderboard(top)
	}
	return nil
}

func (a *App) Close() error {
	// best-effort
	if a.db != nil {
		a.db.Close()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	return nil
}
