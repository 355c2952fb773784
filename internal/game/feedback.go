package game

// Marker is the verdict for one guessed peg.
type Marker uint8

const (
	None Marker = iota
	Partial
	Exact
)

func (m Marker) String() string {
	switch m {
	case Exact:
		return "Exact"
	case Partial:
		return "Partial"
	default:
		return "None"
	}
}

// Feedback holds one marker per guessed peg. Slot order is shuffled by the
// scorer, so only the counts mean anything.
type Feedback [CodeLen]Marker

func (f Feedback) Counts() (exact, partial, none int) {
	for _, m := range f {
		switch m {
		case Exact:
			exact++
		case Partial:
			partial++
		default:
			none++
		}
	}
	return exact, partial, none
}

func (f Feedback) IsWin() bool {
	exact, _, _ := f.Counts()
	return exact == CodeLen
}
