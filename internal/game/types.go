package game

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrParse marks an unknown colour code.
	ErrParse = errors.New("unrecognized colour code")
	// ErrInvalidInput marks a guess that cannot be turned into a Code.
	ErrInvalidInput = errors.New("invalid guess")
	// ErrFinished is returned by Play on a session that already ran.
	ErrFinished = errors.New("session already finished")
)

// Prompt is shown before every guess.
const Prompt = "Your answer: "

// DefaultMaxAttempts is the classic six rounds.
const DefaultMaxAttempts = 6

// Phase of a session: awaiting_guess|won|exhausted
type Phase string

const (
	PhaseAwaitingGuess Phase = "awaiting_guess"
	PhaseWon           Phase = "won"
	PhaseExhausted     Phase = "exhausted"
)

// Prompter supplies the player's guesses.
type Prompter interface {
	Guess(ctx context.Context, prompt string) (Code, error)
}

// Presenter shows the feedback of each attempt.
type Presenter interface {
	Present(fb Feedback)
}

type Config struct {
	MaxAttempts  int  // 0 => DefaultMaxAttempts
	RetryInvalid bool // re-prompt on ErrInvalidInput instead of aborting
}

// Result is the outcome of a finished session. It is also the snapshot the
// result stores persist.
type Result struct {
	SessionID  string        `json:"sessionId"`
	Secret     Code          `json:"secret"`
	Phase      Phase         `json:"phase"`
	Won        bool          `json:"won"`
	Attempts   int           `json:"attempts"`
	Elapsed    time.Duration `json:"elapsedNs"`
	FinishedAt time.Time     `json:"finishedAt"`
}

// ResultRecorder persists finished sessions.
type ResultRecorder interface {
	Record(ctx context.Context, res Result) error
}
