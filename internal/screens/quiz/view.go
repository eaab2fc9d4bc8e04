package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/ui/components"
	"github.com/abhisek/notequiz/internal/ui/layout"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	q := s.quiz.CurrentQuestion()

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var sections []string

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(s.loc.T("quiz.prompt"))
	clefLine := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(s.loc.ClefName(q.Clef))
	sections = append(sections, center(prompt), center(clefLine))

	staff := components.RenderStaff(q.Position, q.Clef, width)
	sections = append(sections, "", center(staff), "")

	sections = append(sections, center(s.choice.View()))
	sections = append(sections, center(s.renderFeedback()))
	sections = append(sections, center(s.renderScoreLine()))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderFeedback shows the verdict for the active question, or a blank
// line while waiting for an answer.
func (s *QuizScreen) renderFeedback() string {
	res, ok := s.quiz.LastResult()
	if !ok {
		return " "
	}
	if res.Correct {
		line := theme.Correct.Render(s.loc.T("quiz.correct"))
		if s.quiz.MilestoneReached() {
			line += "  " + lipgloss.NewStyle().
				Foreground(theme.Accent).
				Bold(true).
				Render(s.loc.T("quiz.milestone", s.quiz.Streak()))
		}
		return line
	}
	return theme.Incorrect.Render(s.loc.T("quiz.incorrect")) + " " +
		theme.Body.Render(s.loc.T("quiz.wrong_answer")+" "+s.loc.NoteName(res.Expected))
}

// renderScoreLine shows the running score, streak and session clock.
func (s *QuizScreen) renderScoreLine() string {
	sc := s.quiz.Score()
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Success).Render(
			fmt.Sprintf("%s: %d", s.loc.T("score.correct"), sc.Correct)),
		lipgloss.NewStyle().Foreground(theme.Error).Render(
			fmt.Sprintf("%s: %d", s.loc.T("score.incorrect"), sc.Incorrect)),
		dim.Render(s.loc.T("quiz.streak", s.quiz.Streak())),
		dim.Render(layout.FormatClock(s.elapsed)),
	}
	return strings.Join(parts, dim.Render("   ·   "))
}
