package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/pitch"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// NoteChosenMsg is emitted when the user confirms a letter on the bar.
type NoteChosenMsg struct {
	Letter pitch.Letter
}

// NoteChoiceKeyMap holds the bindings a NoteChoice responds to.
type NoteChoiceKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Choose key.Binding
}

// DefaultNoteChoiceKeyMap returns arrow and tab movement with Enter to choose.
func DefaultNoteChoiceKeyMap() NoteChoiceKeyMap {
	return NoteChoiceKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→", "next"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
	}
}

// NoteChoice is a horizontal bar with one button per note letter.
type NoteChoice struct {
	Labels   map[pitch.Letter]string
	Selected int
	Keys     NoteChoiceKeyMap

	revealed  bool
	submitted pitch.Letter
	expected  pitch.Letter
}

// NewNoteChoice creates a bar labelled by name.
func NewNoteChoice(name func(pitch.Letter) string) NoteChoice {
	c := NoteChoice{Keys: DefaultNoteChoiceKeyMap()}
	c.SetLabels(name)
	return c
}

// SetLabels relabels every button.
func (c *NoteChoice) SetLabels(name func(pitch.Letter) string) {
	c.Labels = make(map[pitch.Letter]string, pitch.NumLetters)
	for _, l := range pitch.Letters() {
		c.Labels[l] = name(l)
	}
}

// Reveal marks the submitted and expected letters until Clear is called.
func (c *NoteChoice) Reveal(submitted, expected pitch.Letter) {
	c.revealed = true
	c.submitted = submitted
	c.expected = expected
}

// Clear drops any revealed answer.
func (c *NoteChoice) Clear() {
	c.revealed = false
}

// Current returns the letter under the cursor.
func (c NoteChoice) Current() pitch.Letter {
	return pitch.Letters()[c.Selected]
}

// Init returns nil.
func (c NoteChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and emits NoteChosenMsg on Choose. The bar is
// inert while an answer is revealed.
func (c NoteChoice) Update(msg tea.Msg) (NoteChoice, tea.Cmd) {
	if c.revealed {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, c.Keys.Prev):
		c.Selected = (c.Selected + pitch.NumLetters - 1) % pitch.NumLetters
	case key.Matches(kmsg, c.Keys.Next):
		c.Selected = (c.Selected + 1) % pitch.NumLetters
	case key.Matches(kmsg, c.Keys.Choose):
		l := c.Current()
		return c, func() tea.Msg { return NoteChosenMsg{Letter: l} }
	}
	return c, nil
}

// View renders the buttons side by side.
func (c NoteChoice) View() string {
	buttons := make([]string, 0, pitch.NumLetters)
	for i, l := range pitch.Letters() {
		buttons = append(buttons, c.buttonStyle(i, l).Render(c.Labels[l]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (c NoteChoice) buttonStyle(i int, l pitch.Letter) lipgloss.Style {
	if c.revealed {
		switch l {
		case c.expected:
			return theme.ChoiceInactive.
				Foreground(theme.Success).
				BorderForeground(theme.Success).
				Bold(true)
		case c.submitted:
			return theme.ChoiceInactive.
				Foreground(theme.Error).
				BorderForeground(theme.Error)
		default:
			return theme.ChoiceInactive.Foreground(theme.TextDim)
		}
	}
	if i == c.Selected {
		return theme.ChoiceActive
	}
	return theme.ChoiceInactive
}
