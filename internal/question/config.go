package question

import (
	"fmt"
	"strings"

	"github.com/abhisek/notequiz/internal/clef"
	"github.com/abhisek/notequiz/internal/pitch"
)

// ClefPolicy decides which clef each question is shown on.
type ClefPolicy struct {
	random bool
	fixed  clef.Clef
}

// FixedClef always uses c.
func FixedClef(c clef.Clef) ClefPolicy {
	return ClefPolicy{fixed: c}
}

// RandomClef picks treble or bass with equal probability.
func RandomClef() ClefPolicy {
	return ClefPolicy{random: true}
}

// ParsePolicy parses "treble", "bass" or "random".
func ParsePolicy(s string) (ClefPolicy, error) {
	if v := strings.ToLower(strings.TrimSpace(s)); v == "random" || v == "mixed" || v == "" {
		return RandomClef(), nil
	}
	c, err := clef.Parse(s)
	if err != nil {
		return ClefPolicy{}, fmt.Errorf("parse clef policy: %w", err)
	}
	return FixedClef(c), nil
}

// Clefs lists the clefs this policy can produce.
func (p ClefPolicy) Clefs() []clef.Clef {
	if p.random {
		return clef.All()
	}
	return []clef.Clef{p.fixed}
}

// IsRandom reports whether the policy mixes clefs.
func (p ClefPolicy) IsRandom() bool {
	return p.random
}

func (p ClefPolicy) String() string {
	if p.random {
		return "random"
	}
	return p.fixed.String()
}

// Config controls question generation.
type Config struct {
	// Range bounds the pitches that may be asked.
	Range pitch.Range

	// Policy picks the clef per question.
	Policy ClefPolicy

	// MaxLedgerLines drops pitches needing more ledger lines than this
	// on the chosen clef.
	MaxLedgerLines int

	// MaxAttempts bounds the redraws made to avoid repeating the
	// previous question's letter.
	MaxAttempts int
}

// DefaultConfig returns octaves 2 through 6 on a random clef with at most
// two ledger lines.
func DefaultConfig() Config {
	r, _ := pitch.OctaveRange(2, 6)
	return Config{
		Range:          r,
		Policy:         RandomClef(),
		MaxLedgerLines: 2,
		MaxAttempts:    10,
	}
}
