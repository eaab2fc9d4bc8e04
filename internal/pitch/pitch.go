package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLetter is returned when a letter is not one of C D E F G A B.
	ErrInvalidLetter = errors.New("invalid note letter")

	// ErrInvalidPitch is returned when a pitch string cannot be parsed.
	ErrInvalidPitch = errors.New("invalid pitch")
)

// Letter is a natural note name. Values follow the musical alphabet
// starting from C, so the value doubles as the staff step within an octave.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// NumLetters is the number of natural note names in an octave.
const NumLetters = 7

// Octave bounds accepted by ParsePitch.
const (
	MinOctave = 0
	MaxOctave = 9
)

var letterNames = [NumLetters]string{"C", "D", "E", "F", "G", "A", "B"}

// Letters returns all letters in alphabet order starting from C.
func Letters() []Letter {
	return []Letter{C, D, E, F, G, A, B}
}

// Valid reports whether l is one of the seven natural letters.
func (l Letter) Valid() bool {
	return l >= C && l <= B
}

func (l Letter) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return letterNames[l]
}

// ParseLetter parses a single note letter, ignoring case and surrounding space.
func ParseLetter(s string) (Letter, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range letterNames {
		if s == name {
			return Letter(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
}

// Pitch is a natural pitch in scientific notation. C4 is middle C.
type Pitch struct {
	Letter Letter
	Octave int
}

// New returns the pitch with the given letter and octave.
func New(l Letter, octave int) Pitch {
	return Pitch{Letter: l, Octave: octave}
}

// Diatonic returns the pitch's index on an unbounded diatonic scale.
// Adjacent natural pitches differ by exactly one.
func (p Pitch) Diatonic() int {
	return int(p.Letter) + NumLetters*p.Octave
}

// FromDiatonic is the inverse of Diatonic.
func FromDiatonic(d int) Pitch {
	octave := d / NumLetters
	idx := d % NumLetters
	if idx < 0 {
		idx += NumLetters
		octave--
	}
	return Pitch{Letter: Letter(idx), Octave: octave}
}

// Less reports whether p sounds lower than q.
func (p Pitch) Less(q Pitch) bool {
	return p.Diatonic() < q.Diatonic()
}

func (p Pitch) String() string {
	return p.Letter.String() + strconv.Itoa(p.Octave)
}

// ParsePitch parses scientific notation such as "C4" or "g5".
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	l, err := ParseLetter(s[:1])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	octave, err := strconv.Atoi(s[1:])
	if err != nil || octave < MinOctave || octave > MaxOctave {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	return Pitch{Letter: l, Octave: octave}, nil
}
