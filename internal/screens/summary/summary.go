package summary

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/i18n"
	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/ui/layout"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary    *quiz.Summary
	loc        *i18n.Localizer
	standalone bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. A standalone summary quits the program
// when dismissed instead of returning to the previous screen.
func New(summary *quiz.Summary, loc *i18n.Localizer, standalone bool) *SummaryScreen {
	return &SummaryScreen{summary: summary, loc: loc, standalone: standalone}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.loc.T("summary.title")
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.standalone {
		return []layout.KeyHint{
			{Key: "Enter", Description: s.loc.T("hint.quit")},
			{Key: "Esc", Description: s.loc.T("hint.quit")},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: s.loc.T("hint.continue")},
		{Key: "Esc", Description: s.loc.T("hint.home")},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			if s.standalone {
				return s, tea.Quit
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		s.loc.T("summary.heading")))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		s.loc.T("summary.duration", layout.FormatClock(sum.Duration))))
	b.WriteString("\n\n")

	accuracy := int(sum.Accuracy*100 + 0.5)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text),
		s.loc.T("summary.stats", sum.Score.Total(), sum.Score.Correct, sum.Score.Incorrect, accuracy)))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent),
		s.loc.T("summary.best_streak", sum.BestStreak)))
	b.WriteString("\n\n")

	if len(sum.LetterResults) == 0 {
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.loc.T("summary.notes"))))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, lr := range sum.LetterResults {
		line := s.loc.T("summary.note_line", s.loc.NoteName(lr.Letter), lr.Correct, lr.Attempted)
		style := letterStyle(lr)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// letterStyle grades a letter's tally from all correct to none correct.
func letterStyle(lr quiz.LetterResult) lipgloss.Style {
	switch {
	case lr.Correct == lr.Attempted:
		return theme.Correct
	case lr.Correct == 0:
		return theme.Incorrect
	default:
		return theme.Body
	}
}
