package app

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/notequiz/internal/i18n"
	"github.com/abhisek/notequiz/internal/pitch"
	"github.com/abhisek/notequiz/internal/question"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/screens/home"
	quizscreen "github.com/abhisek/notequiz/internal/screens/quiz"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/abhisek/notequiz/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	Localizer *i18n.Localizer
	Events    store.EventRepo
	Prefs     store.PreferenceRepo

	// Question is the generator configuration; its Policy is replaced by
	// the clef the player picks.
	Question question.Config

	// Rand drives question generation. Nil means a time-seeded PCG.
	Rand pitch.Rand

	// Play, when set, skips the home menu and starts a quiz with this
	// clef policy.
	Play *question.ClefPolicy
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	loc    *i18n.Localizer
	width  int
	height int
}

// NewRand returns a PCG source seeded from seed, or from the clock when
// seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newAppModel creates a new AppModel with the home screen, or a quiz when
// opts.Play is set.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Rand == nil {
		opts.Rand = NewRand(0)
	}

	play := func(policy question.ClefPolicy, standalone bool) (screen.Screen, error) {
		cfg := opts.Question
		cfg.Policy = policy
		gen, err := question.New(cfg, opts.Rand)
		if err != nil {
			return nil, fmt.Errorf("create question generator: %w", err)
		}
		return quizscreen.New(quizscreen.Options{
			Source:     gen,
			Policy:     policy,
			Localizer:  opts.Localizer,
			Events:     opts.Events,
			Prefs:      opts.Prefs,
			Standalone: standalone,
		}), nil
	}

	var initial screen.Screen
	if opts.Play != nil {
		s, err := play(*opts.Play, true)
		if err != nil {
			return AppModel{}, err
		}
		initial = s
	} else {
		initial = home.New(home.Options{
			Localizer: opts.Localizer,
			Events:    opts.Events,
			Prefs:     opts.Prefs,
			Play: func(policy question.ClefPolicy) (screen.Screen, error) {
				return play(policy, false)
			},
		})
	}

	return AppModel{
		router: router.New(initial),
		loc:    opts.Localizer,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", m.loc.LanguageName()
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(m.loc.T("app.title"), title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: m.loc.T("hint.back")},
			{Key: "Ctrl+C", Description: m.loc.T("hint.quit")},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: m.loc.T("hint.navigate")},
			{Key: "Enter", Description: m.loc.T("hint.select")},
			{Key: "Ctrl+C", Description: m.loc.T("hint.quit")},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
