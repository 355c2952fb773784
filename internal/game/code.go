package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CodeLen is the number of pegs in a secret or a guess.
const CodeLen = 4

// Code is an ordered row of pegs: the secret, or one guess.
type Code [CodeLen]Colour

// NewCode builds a Code from exactly CodeLen colours. Any other length is a
// programming error; user input goes through ParseCode.
func NewCode(colours []Colour) Code {
	if len(colours) != CodeLen {
		panic(fmt.Sprintf("game: NewCode needs %d colours, got %d", CodeLen, len(colours)))
	}
	var c Code
	copy(c[:], colours)
	return c
}

// ParseCode reads a guess such as "RGBY". Surrounding whitespace is ignored.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n != CodeLen {
		return Code{}, fmt.Errorf("%w: need %d colours, got %d", ErrInvalidInput, CodeLen, n)
	}

	var c Code
	i := 0
	for _, r := range s {
		col, err := ParseColour(r)
		if err != nil {
			return Code{}, fmt.Errorf("%w: position %d: %w", ErrInvalidInput, i+1, err)
		}
		c[i] = col
		i++
	}
	return c, nil
}

// RandomCode draws CodeLen distinct colours: shuffle all six, keep the first four.
func RandomCode(rng Rand) Code {
	all := AllColours()
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return NewCode(all[:CodeLen])
}

func (c Code) Contains(col Colour) bool {
	for _, v := range c {
		if v == col {
			return true
		}
	}
	return false
}

// String returns the letter form, e.g. "ROYB".
func (c Code) String() string {
	var b strings.Builder
	for _, v := range c {
		b.WriteRune(v.Code())
	}
	return b.String()
}

// Names returns the colour names, e.g. "Red Orange Yellow Blue".
func (c Code) Names() string {
	names := make([]string, 0, CodeLen)
	for _, v := range c {
		names = append(names, v.String())
	}
	return strings.Join(names, " ")
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Code) UnmarshalText(b []byte) error {
	v, err := ParseCode(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
