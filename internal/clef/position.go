package clef

import "github.com/abhisek/notequiz/internal/pitch"

// TopLineStep is the staff step of the top line; the bottom line is step 0.
const TopLineStep = 8

// Placement says where a note sits relative to the five-line staff.
type Placement int

const (
	Within Placement = iota
	Above
	Below
)

func (p Placement) String() string {
	switch p {
	case Above:
		return "above"
	case Below:
		return "below"
	default:
		return "within"
	}
}

// StaffPosition is the vertical placement of a notehead. It is derived
// from a pitch and a clef and never stored on its own.
type StaffPosition struct {
	// Offset counts lines and spaces from the clef's reference line.
	Offset int

	// StaffStep counts lines and spaces from the bottom staff line.
	StaffStep int

	// LedgerLines is the number of ledger lines drawn for the note.
	LedgerLines int

	// Placement is Above or Below when the note lies outside the staff.
	Placement Placement
}

// OnLine reports whether the notehead sits on a line rather than a space.
// Both reference lines are staff lines, so even offsets are lines.
func (s StaffPosition) OnLine() bool {
	return s.Offset%2 == 0
}

// MapToStaff computes the staff position of p under clef c.
func MapToStaff(p pitch.Pitch, c Clef) StaffPosition {
	d := p.Diatonic()
	pos := StaffPosition{
		Offset:    d - c.Reference().Diatonic(),
		StaffStep: d - c.BottomLine().Diatonic(),
	}
	switch {
	case pos.StaffStep < 0:
		pos.Placement = Below
		pos.LedgerLines = -pos.StaffStep / 2
	case pos.StaffStep > TopLineStep:
		pos.Placement = Above
		pos.LedgerLines = (pos.StaffStep - TopLineStep) / 2
	}
	return pos
}
