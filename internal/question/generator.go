package question

import (
	"fmt"

	"github.com/abhisek/notequiz/internal/clef"
	"github.com/abhisek/notequiz/internal/pitch"
)

// Question is a pitch shown on a clef, with its staff position computed
// once when the question is made.
type Question struct {
	Pitch    pitch.Pitch
	Clef     clef.Clef
	Position clef.StaffPosition
}

// Answer returns the letter that correctly names the question's note.
func (q Question) Answer() pitch.Letter {
	return q.Pitch.Letter
}

// NewQuestion assembles a question for p on c.
func NewQuestion(p pitch.Pitch, c clef.Clef) Question {
	return Question{Pitch: p, Clef: c, Position: clef.MapToStaff(p, c)}
}

// Generator draws random questions from per-clef legal pitch sets.
type Generator struct {
	cfg  Config
	rng  pitch.Rand
	sets map[clef.Clef][]pitch.Pitch
}

// New builds a Generator. It fails if any clef the policy can choose has
// no pitch in range within the ledger line limit.
func New(cfg Config, rng pitch.Rand) (*Generator, error) {
	if cfg.MaxLedgerLines < 0 {
		return nil, fmt.Errorf("max ledger lines must not be negative, got %d", cfg.MaxLedgerLines)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	sets := make(map[clef.Clef][]pitch.Pitch)
	for _, c := range cfg.Policy.Clefs() {
		set := legalSet(cfg.Range, c, cfg.MaxLedgerLines)
		if len(set) == 0 {
			return nil, fmt.Errorf("no playable pitches for %s clef in %s with at most %d ledger lines",
				c, cfg.Range, cfg.MaxLedgerLines)
		}
		sets[c] = set
	}

	return &Generator{cfg: cfg, rng: rng, sets: sets}, nil
}

// legalSet returns the pitches of r that fit on clef c.
func legalSet(r pitch.Range, c clef.Clef, maxLedger int) []pitch.Pitch {
	var out []pitch.Pitch
	for _, p := range r.Pitches() {
		if clef.MapToStaff(p, c).LedgerLines <= maxLedger {
			out = append(out, p)
		}
	}
	return out
}

// LegalSet returns a copy of the pitches that may be asked on c.
func (g *Generator) LegalSet(c clef.Clef) []pitch.Pitch {
	return append([]pitch.Pitch(nil), g.sets[c]...)
}

// Next returns a new question. When previous is non-nil it redraws up to
// MaxAttempts times looking for a different letter, then accepts whatever
// the last draw produced.
func (g *Generator) Next(previous *Question) Question {
	q := g.draw()
	if previous == nil {
		return q
	}
	for attempt := 1; attempt < g.cfg.MaxAttempts && q.Pitch.Letter == previous.Pitch.Letter; attempt++ {
		q = g.draw()
	}
	return q
}

func (g *Generator) draw() Question {
	clefs := g.cfg.Policy.Clefs()
	c := clefs[0]
	if len(clefs) > 1 {
		c = clefs[g.rng.IntN(len(clefs))]
	}
	return NewQuestion(pitch.Random(g.rng, g.sets[c]), c)
}
