package question

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/notequiz/internal/clef"
	"github.com/abhisek/notequiz/internal/pitch"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	vals  []int
	calls int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v % n
}

func mustRange(t *testing.T, low, high string) pitch.Range {
	t.Helper()
	lo, err := pitch.ParsePitch(low)
	require.NoError(t, err)
	hi, err := pitch.ParsePitch(high)
	require.NoError(t, err)
	r, err := pitch.NewRange(lo, hi)
	require.NoError(t, err)
	return r
}

func trebleConfig(t *testing.T, low, high string) Config {
	cfg := DefaultConfig()
	cfg.Range = mustRange(t, low, high)
	cfg.Policy = FixedClef(clef.Treble)
	return cfg
}

func TestNext_FirstQuestion(t *testing.T) {
	rng := &scriptedRand{vals: []int{2}}
	g, err := New(trebleConfig(t, "C4", "C5"), rng)
	require.NoError(t, err)

	q := g.Next(nil)
	assert.Equal(t, "E4", q.Pitch.String())
	assert.Equal(t, clef.Treble, q.Clef)
	assert.Equal(t, -2, q.Position.Offset)
	assert.Equal(t, pitch.E, q.Answer())
	assert.Equal(t, 1, rng.calls)
}

func TestNext_AvoidsPreviousLetter(t *testing.T) {
	rng := &scriptedRand{vals: []int{2, 2, 9, 3}}
	g, err := New(trebleConfig(t, "C4", "C5"), rng)
	require.NoError(t, err)

	prev := NewQuestion(pitch.New(pitch.E, 4), clef.Treble)
	q := g.Next(&prev)
	assert.Equal(t, "D4", q.Pitch.String())
	assert.Equal(t, 3, rng.calls)
}

func TestNext_OctaveMayRepeatLetterMayNot(t *testing.T) {
	// Index 7 is C5, index 0 is C4, index 1 is D4.
	rng := &scriptedRand{vals: []int{7, 0, 1}}
	g, err := New(trebleConfig(t, "C4", "C5"), rng)
	require.NoError(t, err)

	prev := NewQuestion(pitch.New(pitch.C, 4), clef.Treble)
	q := g.Next(&prev)
	assert.Equal(t, pitch.D, q.Pitch.Letter)
}

func TestNext_RetryExhaustionAcceptsRepeat(t *testing.T) {
	rng := &scriptedRand{vals: []int{0}}
	cfg := trebleConfig(t, "E4", "E4")
	cfg.MaxAttempts = 10
	g, err := New(cfg, rng)
	require.NoError(t, err)

	prev := g.Next(nil)
	rng.calls = 0
	q := g.Next(&prev)
	assert.Equal(t, prev.Pitch, q.Pitch)
	assert.Equal(t, 10, rng.calls)
}

func TestNext_StatisticalAntiRepeat(t *testing.T) {
	g, err := New(DefaultConfig(), rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)

	prev := g.Next(nil)
	for block := 0; block < 100; block++ {
		differs := 0
		for i := 0; i < 10; i++ {
			q := g.Next(&prev)
			if q.Pitch.Letter != prev.Pitch.Letter {
				differs++
			}
			prev = q
		}
		assert.GreaterOrEqual(t, differs, 9, "block %d", block)
	}
}

func TestNext_RandomPolicyUsesBothClefs(t *testing.T) {
	g, err := New(DefaultConfig(), rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)

	seen := map[clef.Clef]bool{}
	for i := 0; i < 200; i++ {
		q := g.Next(nil)
		seen[q.Clef] = true
		assert.LessOrEqual(t, q.Position.LedgerLines, 2)
		assert.Contains(t, g.LegalSet(q.Clef), q.Pitch)
	}
	assert.True(t, seen[clef.Treble])
	assert.True(t, seen[clef.Bass])
}

func TestLegalSet_Default(t *testing.T) {
	g, err := New(DefaultConfig(), rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	treble := g.LegalSet(clef.Treble)
	require.NotEmpty(t, treble)
	assert.Equal(t, "G3", treble[0].String())
	assert.Equal(t, "D6", treble[len(treble)-1].String())

	bass := g.LegalSet(clef.Bass)
	require.NotEmpty(t, bass)
	assert.Equal(t, "C2", bass[0].String())
	assert.Equal(t, "F4", bass[len(bass)-1].String())
}

func TestNew_RejectsEmptyLegalSet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Range = mustRange(t, "C4", "B4")
	cfg.MaxLedgerLines = 0

	_, err := New(cfg, &scriptedRand{vals: []int{0}})
	assert.Error(t, err, "bass has no ledger-free pitch in octave 4")

	cfg.Policy = FixedClef(clef.Treble)
	_, err = New(cfg, &scriptedRand{vals: []int{0}})
	assert.NoError(t, err)

	cfg.MaxLedgerLines = -1
	_, err = New(cfg, &scriptedRand{vals: []int{0}})
	assert.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("random")
	require.NoError(t, err)
	assert.True(t, p.IsRandom())
	assert.Len(t, p.Clefs(), 2)

	p, err = ParsePolicy("Bass")
	require.NoError(t, err)
	assert.Equal(t, []clef.Clef{clef.Bass}, p.Clefs())
	assert.Equal(t, "bass", p.String())

	_, err = ParsePolicy("tenor")
	assert.Error(t, err)
}
