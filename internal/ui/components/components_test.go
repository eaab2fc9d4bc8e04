package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/notequiz/internal/clef"
	"github.com/abhisek/notequiz/internal/pitch"
)

func mustPitch(t *testing.T, s string) pitch.Pitch {
	t.Helper()
	p, err := pitch.ParsePitch(s)
	require.NoError(t, err)
	return p
}

func countKind(rows []StaffRow, kind RowKind) int {
	n := 0
	for _, r := range rows {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

func TestStaffRows_LedgerLinesMatchPosition(t *testing.T) {
	for _, c := range clef.All() {
		r, err := pitch.OctaveRange(1, 7)
		require.NoError(t, err)
		for _, p := range r.Pitches() {
			pos := clef.MapToStaff(p, c)
			rows := StaffRows(pos)

			assert.Equal(t, 5, countKind(rows, RowLine), "%s on %s", p, c)
			assert.Equal(t, pos.LedgerLines, countKind(rows, RowLedger), "%s on %s", p, c)

			notes := 0
			for _, row := range rows {
				if row.Note {
					notes++
					assert.Equal(t, pos.StaffStep, row.Step)
				}
			}
			assert.Equal(t, 1, notes, "%s on %s", p, c)
		}
	}
}

func TestStaffRows_TopFirstAndPadded(t *testing.T) {
	pos := clef.MapToStaff(mustPitch(t, "B4"), clef.Treble)
	rows := StaffRows(pos)

	require.Len(t, rows, 11)
	assert.Equal(t, clef.TopLineStep+1, rows[0].Step)
	assert.Equal(t, -1, rows[len(rows)-1].Step)
	for i := 1; i < len(rows); i++ {
		assert.Equal(t, rows[i-1].Step-1, rows[i].Step)
	}
}

func TestRenderStaff(t *testing.T) {
	tests := []struct {
		pitch string
		clef  clef.Clef
		glyph string
	}{
		{"E4", clef.Treble, "G"},
		{"C6", clef.Treble, "G"},
		{"C4", clef.Bass, "F:"},
		{"E2", clef.Bass, "F:"},
	}
	for _, tt := range tests {
		t.Run(tt.pitch+"/"+tt.clef.String(), func(t *testing.T) {
			pos := clef.MapToStaff(mustPitch(t, tt.pitch), tt.clef)
			out := RenderStaff(pos, tt.clef, 80)

			assert.Equal(t, len(StaffRows(pos)), strings.Count(out, "\n")+1)
			assert.Equal(t, 1, strings.Count(out, notehead))
			assert.Contains(t, out, tt.glyph)
		})
	}
}

func TestRenderStaff_NarrowWidth(t *testing.T) {
	pos := clef.MapToStaff(mustPitch(t, "G4"), clef.Treble)
	out := RenderStaff(pos, clef.Treble, 4)
	assert.Contains(t, out, notehead)
}

func letterName(l pitch.Letter) string { return l.String() }

func TestNoteChoice_Navigation(t *testing.T) {
	c := NewNoteChoice(letterName)
	assert.Equal(t, pitch.C, c.Current())

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, pitch.B, c.Current(), "left wraps to the last letter")

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, pitch.D, c.Current())

	c, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NoteChosenMsg{Letter: pitch.D}, cmd())
}

func TestNoteChoice_RevealDisablesInput(t *testing.T) {
	c := NewNoteChoice(letterName)
	c.Reveal(pitch.E, pitch.D)

	c, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, pitch.C, c.Current())

	c.Clear()
	_, cmd = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

func TestNoteChoice_Labels(t *testing.T) {
	names := map[pitch.Letter]string{
		pitch.C: "Đô", pitch.D: "Rê", pitch.E: "Mi", pitch.F: "Fa",
		pitch.G: "Sol", pitch.A: "La", pitch.B: "Si",
	}
	c := NewNoteChoice(func(l pitch.Letter) string { return names[l] })
	view := c.View()
	for _, n := range names {
		assert.Contains(t, view, n)
	}

	c.SetLabels(letterName)
	assert.Contains(t, c.View(), "G")
	assert.NotContains(t, c.View(), "Sol")
}

func TestMenu_Navigation(t *testing.T) {
	var chosen string
	items := []MenuItem{
		{Label: "Disabled", Disabled: true},
		{Label: "First", Action: func() tea.Cmd { chosen = "first"; return nil }},
		{Label: "Second", Action: func() tea.Cmd { chosen = "second"; return nil }},
	}
	m := NewMenu(items)
	assert.Equal(t, 1, m.Selected, "starts on first enabled item")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected, "cannot move onto disabled item")

	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "second", chosen)

	m.SetLabel(2, "Renamed")
	assert.Contains(t, m.View(), "Renamed")
}
