package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Session is one game: a fixed secret and up to MaxAttempts guesses.
// It is driven by a single goroutine and is not safe for concurrent use.
type Session struct {
	id     string
	secret Code
	cfg    Config
	rng    Rand
	log    *slog.Logger
	now    func() time.Time

	phase   Phase
	attempt int // guesses scored so far
	played  bool

	// OnFinish, when set, receives the result of a completed session.
	OnFinish func(Result)
}

func NewSession(secret Code, cfg Config, rng Rand, log *slog.Logger) *Session {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if log == nil {
		log = slog.Default()
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		secret: secret,
		cfg:    cfg,
		rng:    rng,
		log:    log.With("session", id),
		now:    time.Now,
		phase:  PhaseAwaitingGuess,
	}
}

func (s *Session) ID() string    { return s.id }
func (s *Session) Secret() Code  { return s.secret }
func (s *Session) Phase() Phase  { return s.phase }
func (s *Session) Attempts() int { return s.attempt }

// MaxAttempts is the number of guesses the session allows, after defaults.
func (s *Session) MaxAttempts() int { return s.cfg.MaxAttempts }

// Play runs the turn loop until the secret is guessed or the attempts run out.
//
// A Prompter error aborts the game and is returned, except ErrInvalidInput
// when RetryInvalid is set: then the player is asked again and the attempt
// is not used up.
func (s *Session) Play(ctx context.Context, in Prompter, out Presenter) (Result, error) {
	if s.played {
		return Result{}, ErrFinished
	}
	s.played = true

	start := s.now()
	s.log.Info("session started", "maxAttempts", s.cfg.MaxAttempts)

	for s.phase == PhaseAwaitingGuess {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		guess, err := in.Guess(ctx, Prompt)
		if err != nil {
			if s.cfg.RetryInvalid && errors.Is(err, ErrInvalidInput) {
				s.log.Debug("invalid guess, asking again", "attempt", s.attempt+1, "err", err)
				continue
			}
			s.log.Warn("session aborted", "attempt", s.attempt+1, "err", err)
			return Result{}, fmt.Errorf("attempt %d: %w", s.attempt+1, err)
		}

		fb := Score(guess, s.secret, s.rng)
		out.Present(fb)
		s.attempt++

		exact, partial, _ := fb.Counts()
		s.log.Debug("attempt scored", "attempt", s.attempt, "exact", exact, "partial", partial)

		switch {
		case fb.IsWin():
			s.phase = PhaseWon
		case s.attempt >= s.cfg.MaxAttempts:
			s.phase = PhaseExhausted
		}
	}

	end := s.now()
	res := Result{
		SessionID:  s.id,
		Secret:     s.secret,
		Phase:      s.phase,
		Won:        s.phase == PhaseWon,
		Attempts:   s.attempt,
		Elapsed:    end.Sub(start),
		FinishedAt: end,
	}
	s.log.Info("session finished", "phase", res.Phase, "attempts", res.Attempts, "elapsed", res.Elapsed)

	if s.OnFinish != nil {
		s.OnFinish(res)
	}
	return res, nil
}
