package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"example.com/mastermind/internal/game"
	"example.com/mastermind/internal/store"
	"github.com/TwiN/go-color"
	"golang.org/x/term"
)

// Presenter writes feedback and game messages. Markers are coloured when
// the output is a terminal.
type Presenter struct {
	out   io.Writer
	color bool
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out, color: isTerminal(out)}
}

// WithColor forces colouring on or off.
func (p *Presenter) WithColor(on bool) *Presenter {
	p.color = on
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var markerColors = map[game.Marker]string{
	game.Exact:   color.Green,
	game.Partial: color.Yellow,
	game.None:    color.Gray,
}

func (p *Presenter) Present(fb game.Feedback) {
	parts := make([]string, 0, len(fb))
	for _, m := range fb {
		s := m.String()
		if p.color {
			s = color.Ize(markerColors[m], s)
		}
		parts = append(parts, s)
	}
	exact, partial, _ := fb.Counts()
	fmt.Fprintf(p.out, "[%s] exact=%d partial=%d\n", strings.Join(parts, " "), exact, partial)
}

func (p *Presenter) Legend(maxAttempts int) {
	codes := make([]string, 0, len(game.AllColours()))
	for _, c := range game.AllColours() {
		codes = append(codes, fmt.Sprintf("%c=%s", c.Code(), c))
	}
	fmt.Fprintf(p.out, "Colours: %s\n", strings.Join(codes, " "))
	fmt.Fprintf(p.out, "Guess %d colours (e.g. RGBY) in at most %d attempts.\n", game.CodeLen, maxAttempts)
}

// Secret reveals the solution up front (demo mode).
func (p *Presenter) Secret(c game.Code) {
	fmt.Fprintf(p.out, "solution: %s\n", c.Names())
}

// Summary prints the win message, if any, and the elapsed whole seconds.
func (p *Presenter) Summary(res game.Result) {
	if res.Won {
		msg := "You won!"
		if p.color {
			msg = color.Ize(color.Bold, msg)
		}
		fmt.Fprintln(p.out, msg)
	}
	fmt.Fprintf(p.out, "Time needed: %d\n", int64(res.Elapsed/time.Second))
}

func (p *Presenter) Totals(st store.GameStats) {
	fmt.Fprintf(p.out, "Games: %d  Wins: %d  Losses: %d\n", st.Games, st.Wins, st.Losses)
	if st.Wins > 0 {
		fmt.Fprintf(p.out, "Average attempts per win: %.2f\n", st.AvgAttempts)
		fmt.Fprintf(p.out, "Best time: %s\n", st.BestTime)
	}
	if !st.LastPlayed.IsZero() {
		fmt.Fprintf(p.out, "Last played: %s\n", st.LastPlayed.Format(time.RFC3339))
	}
}

func (p *Presenter) Leaderboard(top []game.Result) {
	if len(top) == 0 {
		fmt.Fprintln(p.out, "No wins recorded yet.")
		return
	}
	fmt.Fprintln(p.out, "Fastest wins:")
	for i, r := range top {
		fmt.Fprintf(p.out, "%2d. %-8s %d attempts  %s\n", i+1, r.Elapsed.Round(time.Millisecond), r.Attempts, r.Secret)
	}
}

func (p *Presenter) Notice(msg string) {
	fmt.Fprintln(p.out, msg)
}
