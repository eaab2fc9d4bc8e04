package quiz

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/notequiz/internal/i18n"
	"github.com/abhisek/notequiz/internal/pitch"
	"github.com/abhisek/notequiz/internal/question"
	qz "github.com/abhisek/notequiz/internal/quiz"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/screens/summary"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/abhisek/notequiz/internal/ui/components"
	"github.com/abhisek/notequiz/internal/ui/layout"
)

// Options configures a quiz screen. Events and Prefs may be nil.
type Options struct {
	Source    qz.QuestionSource
	Policy    question.ClefPolicy
	Localizer *i18n.Localizer
	Events    store.EventRepo
	Prefs     store.PreferenceRepo

	// Standalone is set when the quiz is the first screen, so leaving the
	// summary quits instead of returning home.
	Standalone bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// QuizScreen implements screen.Screen for one game session.
type QuizScreen struct {
	quiz      *qz.Quiz
	opts      Options
	loc       *i18n.Localizer
	choice    components.NoteChoice
	keys      keyMap
	sessionID string
	started   time.Time
	asked     time.Time
	elapsed   time.Duration
	ended     bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.BackHandler = (*QuizScreen)(nil)

// New creates a QuizScreen with its first question ready.
func New(opts Options) *QuizScreen {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &QuizScreen{
		quiz:      qz.New(opts.Source),
		opts:      opts,
		loc:       opts.Localizer,
		keys:      defaultKeyMap(),
		sessionID: uuid.New().String(),
	}
	s.choice = components.NewNoteChoice(s.loc.NoteName)
	now := opts.Now()
	s.started = now
	s.asked = now
	return s
}

// Quiz exposes the underlying state machine.
func (s *QuizScreen) Quiz() *qz.Quiz {
	return s.quiz
}

// SessionID returns the id recorded with this session's events.
func (s *QuizScreen) SessionID() string {
	return s.sessionID
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.opts.Events != nil {
		_ = s.opts.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:  s.sessionID,
			Action:     store.SessionStart,
			ClefPolicy: s.opts.Policy.String(),
		})
	}
	return tickCmd()
}

func (s *QuizScreen) Title() string {
	return s.loc.ClefName(s.quiz.CurrentQuestion().Clef)
}

func (s *QuizScreen) Status() string {
	sc := s.quiz.Score()
	return fmt.Sprintf("✓ %d  ✗ %d", sc.Correct, sc.Incorrect)
}

func (s *QuizScreen) HandlesBack() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quiz.Phase() == qz.PhaseAnswered {
		return []layout.KeyHint{
			{Key: "Enter/" + s.keys.NewNote.Help().Key, Description: s.loc.T("quiz.new_note")},
			{Key: s.keys.Language.Help().Key, Description: s.loc.T("hint.language")},
			{Key: s.keys.End.Help().Key, Description: s.loc.T("hint.end")},
		}
	}
	return []layout.KeyHint{
		{Key: s.keys.Answer.Help().Key, Description: s.loc.T("hint.answer")},
		{Key: s.keys.Choose.Help().Key, Description: s.loc.T("hint.choose")},
		{Key: s.keys.NewNote.Help().Key, Description: s.loc.T("quiz.new_note")},
		{Key: s.keys.Language.Help().Key, Description: s.loc.T("hint.language")},
		{Key: s.keys.End.Help().Key, Description: s.loc.T("hint.end")},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.ended {
			return s, nil
		}
		s.elapsed = s.opts.Now().Sub(s.started)
		return s, tickCmd()

	case components.NoteChosenMsg:
		return s.submit(msg.Letter)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.End):
		return s.endSession()

	case key.Matches(msg, s.keys.Language):
		s.toggleLanguage()
		return s, nil

	case key.Matches(msg, s.keys.NewNote):
		s.newQuestion()
		return s, nil

	case key.Matches(msg, s.keys.Answer):
		l, err := pitch.ParseLetter(msg.String())
		if err != nil {
			return s, nil
		}
		return s.submit(l)
	}

	if s.quiz.Phase() == qz.PhaseAnswered {
		if msg.String() == "enter" {
			s.newQuestion()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// submit scores l and records the answer. Answers after the first on the
// same question are ignored.
func (s *QuizScreen) submit(l pitch.Letter) (screen.Screen, tea.Cmd) {
	res, err := s.quiz.SubmitAnswer(l)
	if err != nil {
		return s, nil
	}
	s.choice.Reveal(res.Submitted, res.Expected)

	if s.opts.Events != nil {
		q := s.quiz.CurrentQuestion()
		_ = s.opts.Events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID: s.sessionID,
			Clef:      q.Clef.String(),
			Pitch:     q.Pitch.String(),
			Expected:  res.Expected.String(),
			Submitted: res.Submitted.String(),
			Correct:   res.Correct,
			TimeMs:    s.opts.Now().Sub(s.asked).Milliseconds(),
		})
	}
	return s, nil
}

func (s *QuizScreen) newQuestion() {
	s.quiz.RequestNewQuestion()
	s.choice.Clear()
	s.asked = s.opts.Now()
}

func (s *QuizScreen) toggleLanguage() {
	next := s.loc.Language().Toggle()
	s.loc.SetLanguage(next)
	s.choice.SetLabels(s.loc.NoteName)
	if s.opts.Prefs != nil {
		_ = s.opts.Prefs.Set(context.Background(), store.PrefLanguage, string(next))
	}
}

// endSession records the end event and swaps this screen for the summary.
func (s *QuizScreen) endSession() (screen.Screen, tea.Cmd) {
	s.ended = true
	elapsed := s.opts.Now().Sub(s.started)
	sum := qz.BuildSummary(s.quiz, elapsed)

	if s.opts.Events != nil {
		_ = s.opts.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:       s.sessionID,
			Action:          store.SessionEnd,
			ClefPolicy:      s.opts.Policy.String(),
			QuestionsServed: sum.Score.Total(),
			CorrectAnswers:  sum.Score.Correct,
			BestStreak:      sum.BestStreak,
			DurationSecs:    int(elapsed.Seconds()),
		})
	}

	next := summary.New(sum, s.loc, s.opts.Standalone)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
