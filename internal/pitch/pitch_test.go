package pitch

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLetter(t *testing.T) {
	for i, name := range []string{"C", "d", " E ", "f", "G", "a", "B"} {
		l, err := ParseLetter(name)
		require.NoError(t, err, name)
		assert.Equal(t, Letter(i), l)
	}

	_, err := ParseLetter("H")
	assert.ErrorIs(t, err, ErrInvalidLetter)
	_, err = ParseLetter("")
	assert.ErrorIs(t, err, ErrInvalidLetter)
}

func TestLetterValid(t *testing.T) {
	assert.True(t, C.Valid())
	assert.True(t, B.Valid())
	assert.False(t, Letter(-1).Valid())
	assert.False(t, Letter(7).Valid())
	assert.Equal(t, "Letter(9)", Letter(9).String())
}

func TestParsePitch(t *testing.T) {
	tests := []struct {
		in      string
		want    Pitch
		wantErr bool
	}{
		{"C4", New(C, 4), false},
		{"g5", New(G, 5), false},
		{" B0 ", New(B, 0), false},
		{"A9", New(A, 9), false},
		{"C", Pitch{}, true},
		{"X4", Pitch{}, true},
		{"C10", Pitch{}, true},
		{"C-1", Pitch{}, true},
		{"C#4", Pitch{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePitch(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPitch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Pitch {
	t.Helper()
	p, err := ParsePitch(s)
	require.NoError(t, err)
	return p
}

func TestDiatonicRoundTrip(t *testing.T) {
	for d := -10; d < 80; d++ {
		assert.Equal(t, d, FromDiatonic(d).Diatonic())
	}
	assert.Equal(t, New(B, -1), FromDiatonic(-1))
	assert.Equal(t, 1, New(C, 5).Diatonic()-New(B, 4).Diatonic())
}

func TestRange(t *testing.T) {
	r, err := NewRange(New(C, 4), New(C, 5))
	require.NoError(t, err)

	ps := r.Pitches()
	require.Len(t, ps, 8)
	assert.Equal(t, "C4", ps[0].String())
	assert.Equal(t, "B4", ps[6].String())
	assert.Equal(t, "C5", ps[7].String())
	assert.Contains(t, ps, New(E, 4))
	assert.NotContains(t, ps, New(D, 5))
	assert.Equal(t, "C4-C5", r.String())

	_, err = NewRange(New(C, 5), New(C, 4))
	assert.Error(t, err)

	oct, err := OctaveRange(2, 6)
	require.NoError(t, err)
	assert.Len(t, oct.Pitches(), 35)
}

func TestRandom_MembershipAndReachability(t *testing.T) {
	r, err := OctaveRange(3, 5)
	require.NoError(t, err)
	set := r.Pitches()

	rng := rand.New(rand.NewPCG(1, 2))
	seen := make(map[Pitch]int)
	for i := 0; i < 5000; i++ {
		p := Random(rng, set)
		require.Contains(t, set, p, "drew %s outside %s", p, r)
		seen[p]++
	}
	assert.Len(t, seen, len(set), "every legal pitch should be reachable")
}
