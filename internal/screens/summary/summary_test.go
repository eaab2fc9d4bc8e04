package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/i18n"
	"github.com/abhisek/notequiz/internal/pitch"
	"github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/router"
)

func testSummary() *quiz.Summary {
	return &quiz.Summary{
		Duration:   95 * time.Second,
		Score:      quiz.Score{Correct: 5, Incorrect: 2},
		Accuracy:   float64(5) / float64(7),
		BestStreak: 4,
		LetterResults: []quiz.LetterResult{
			{Letter: pitch.D, Attempted: 3, Correct: 3},
			{Letter: pitch.G, Attempted: 4, Correct: 2},
		},
	}
}

func englishLocalizer() *i18n.Localizer {
	return i18n.NewLocalizer(i18n.Default(), i18n.English)
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), englishLocalizer(), false)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), englishLocalizer(), false)
	view := s.View(80, 24)

	for _, want := range []string{"Session complete!", "1:35", "Accuracy: 71%", "Best streak: 4", "3/3 correct", "2/4 correct"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_DisplayVietnamese(t *testing.T) {
	loc := i18n.NewLocalizer(i18n.Default(), i18n.Vietnamese)
	s := New(testSummary(), loc, false)
	view := s.View(80, 24)

	for _, want := range []string{"Rê", "Sol"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing note name %q", want)
		}
	}
}

func TestSummaryScreen_EmptySession(t *testing.T) {
	s := New(&quiz.Summary{}, englishLocalizer(), false)
	if view := s.View(80, 24); !strings.Contains(view, "Session complete!") {
		t.Error("expected heading for an empty session")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), englishLocalizer(), false)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Enter")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), englishLocalizer(), false)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_StandaloneQuits(t *testing.T) {
	s := New(testSummary(), englishLocalizer(), true)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected standalone summary to quit")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), englishLocalizer(), false)
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
