// Package terminal implements the game's Prompter and Presenter on a text
// stream, normally the user's terminal.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"example.com/mastermind/internal/game"
)

type readResult struct {
	line string
	err  error
}

// Prompter reads one guess per line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	once  sync.Once
	lines chan readResult
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan readResult),
	}
}

// readLines feeds lines to Guess until the first read error, then closes
// the channel.
func (p *Prompter) readLines() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		p.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Guess prints prompt and parses the next line. Letters are case-insensitive.
// The wait for input ends as soon as ctx is cancelled. Read failures, EOF
// included, never wrap game.ErrInvalidInput, so they always end the game.
func (p *Prompter) Guess(ctx context.Context, prompt string) (game.Code, error) {
	if err := ctx.Err(); err != nil {
		return game.Code{}, err
	}
	p.once.Do(func() { go p.readLines() })
	fmt.Fprintln(p.out, prompt)

	var r readResult
	select {
	case <-ctx.Done():
		return game.Code{}, ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			res.err = io.EOF
		}
		r = res
	}
	if err := ctx.Err(); err != nil {
		return game.Code{}, err
	}

	if r.err != nil && !(errors.Is(r.err, io.EOF) && r.line != "") {
		return game.Code{}, fmt.Errorf("read guess: %w", r.err)
	}

	code, err := game.ParseCode(strings.ToUpper(r.line))
	if err != nil {
		fmt.Fprintf(p.out, "%v\n", err)
		return game.Code{}, err
	}
	fmt.Fprintf(p.out, "input: %s\n", code.Names())
	return code, nil
}
