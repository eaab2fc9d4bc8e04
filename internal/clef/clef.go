package clef

import (
	"fmt"
	"strings"

	"github.com/abhisek/notequiz/internal/pitch"
)

// Clef fixes which staff line carries which pitch.
type Clef int

const (
	Treble Clef = iota
	Bass
)

// All returns the supported clefs.
func All() []Clef {
	return []Clef{Treble, Bass}
}

func (c Clef) String() string {
	switch c {
	case Treble:
		return "treble"
	case Bass:
		return "bass"
	default:
		return fmt.Sprintf("Clef(%d)", int(c))
	}
}

// Parse parses "treble" or "bass" (also "g" and "f"), ignoring case.
func Parse(s string) (Clef, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "treble", "g":
		return Treble, nil
	case "bass", "f":
		return Bass, nil
	}
	return 0, fmt.Errorf("unknown clef %q", s)
}

// Reference returns the pitch on the line that gives the clef its name:
// G4 on the second line for treble, F3 on the fourth line for bass.
func (c Clef) Reference() pitch.Pitch {
	if c == Bass {
		return pitch.New(pitch.F, 3)
	}
	return pitch.New(pitch.G, 4)
}

// BottomLine returns the pitch on the lowest of the five staff lines.
func (c Clef) BottomLine() pitch.Pitch {
	if c == Bass {
		return pitch.New(pitch.G, 2)
	}
	return pitch.New(pitch.E, 4)
}

// TopLine returns the pitch on the highest of the five staff lines.
func (c Clef) TopLine() pitch.Pitch {
	return pitch.FromDiatonic(c.BottomLine().Diatonic() + TopLineStep)
}
