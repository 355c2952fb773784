package game

import "fmt"

// Colour is one of the six peg colours.
type Colour uint8

const (
	Red Colour = iota
	Orange
	Yellow
	Blue
	Purple
	Green
)

const numColours = 6

var colourNames = [numColours]string{"Red", "Orange", "Yellow", "Blue", "Purple", "Green"}

// codes are the first letter of each name
var colourCodes = [numColours]rune{'R', 'O', 'Y', 'B', 'P', 'G'}

var colourByCode = map[rune]Colour{
	'R': Red,
	'O': Orange,
	'Y': Yellow,
	'B': Blue,
	'P': Purple,
	'G': Green,
}

// AllColours returns every colour in declaration order. The slice is fresh
// and may be reordered by the caller.
func AllColours() []Colour {
	out := make([]Colour, numColours)
	for i := range out {
		out[i] = Colour(i)
	}
	return out
}

// ParseColour maps a single-letter code to its colour.
func ParseColour(code rune) (Colour, error) {
	c, ok := colourByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: unknown colour code %q", ErrParse, code)
	}
	return c, nil
}

func (c Colour) String() string {
	if int(c) >= numColours {
		return fmt.Sprintf("Colour(%d)", uint8(c))
	}
	return colourNames[c]
}

// Code is the single-letter textual form.
func (c Colour) Code() rune {
	if int(c) >= numColours {
		return '?'
	}
	return colourCodes[c]
}
