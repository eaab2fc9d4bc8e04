package pitch

import "fmt"

// Rand is the random source used for drawing pitches.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Range is an inclusive span of natural pitches.
type Range struct {
	Low  Pitch
	High Pitch
}

// NewRange returns the range [low, high]. It fails when low is above high.
func NewRange(low, high Pitch) (Range, error) {
	if high.Less(low) {
		return Range{}, fmt.Errorf("range %s-%s: low pitch is above high pitch", low, high)
	}
	return Range{Low: low, High: high}, nil
}

// OctaveRange returns every pitch from C of minOctave to B of maxOctave.
func OctaveRange(minOctave, maxOctave int) (Range, error) {
	return NewRange(New(C, minOctave), New(B, maxOctave))
}

// Pitches lists every pitch in the range from low to high.
func (r Range) Pitches() []Pitch {
	lo, hi := r.Low.Diatonic(), r.High.Diatonic()
	if hi < lo {
		return nil
	}
	out := make([]Pitch, 0, hi-lo+1)
	for d := lo; d <= hi; d++ {
		out = append(out, FromDiatonic(d))
	}
	return out
}

func (r Range) String() string {
	return r.Low.String() + "-" + r.High.String()
}

// Random draws a pitch uniformly from set. The set must not be empty;
// callers validate their legal sets when they are built.
func Random(rng Rand, set []Pitch) Pitch {
	return set[rng.IntN(len(set))]
}
