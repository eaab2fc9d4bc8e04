package home

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/clef"
	"github.com/abhisek/notequiz/internal/i18n"
	"github.com/abhisek/notequiz/internal/question"
	"github.com/abhisek/notequiz/internal/router"
	"github.com/abhisek/notequiz/internal/screen"
	"github.com/abhisek/notequiz/internal/store"
	"github.com/abhisek/notequiz/internal/ui/components"
	"github.com/abhisek/notequiz/internal/ui/layout"
	"github.com/abhisek/notequiz/internal/ui/theme"
)

// PlayFunc builds a quiz screen for the chosen clef policy.
type PlayFunc func(policy question.ClefPolicy) (screen.Screen, error)

// Options wires the home screen to the rest of the app. Events and Prefs
// may be nil, in which case stats are hidden and language changes are not
// saved.
type Options struct {
	Localizer *i18n.Localizer
	Events    store.EventRepo
	Prefs     store.PreferenceRepo
	Play      PlayFunc
}

// Menu item positions.
const (
	itemTreble = iota
	itemBass
	itemMixed
	itemLanguage
	itemQuit
)

// Content heights needed for the bordered menu and for the staff banner.
const (
	buttonMenuHeight = 26
	bannerHeight     = 33
)

// statsLoadedMsg carries lifetime stats read from the store.
type statsLoadedMsg struct {
	Stats store.Stats
	Err   error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	opts     Options
	loc      *i18n.Localizer
	menu     components.Menu
	language key.Binding
	stats    store.Stats
	hasStats bool
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{
		opts: opts,
		loc:  opts.Localizer,
		language: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("L", "language"),
		),
	}

	items := []components.MenuItem{
		{Action: h.play(question.FixedClef(clef.Treble))},
		{Action: h.play(question.FixedClef(clef.Bass))},
		{Action: h.play(question.RandomClef())},
		{Action: func() tea.Cmd {
			h.toggleLanguage()
			return nil
		}},
		{Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.relabel()
	return h
}

func (h *HomeScreen) play(policy question.ClefPolicy) func() tea.Cmd {
	return func() tea.Cmd {
		if h.opts.Play == nil {
			return nil
		}
		s, err := h.opts.Play(policy)
		if err != nil {
			h.errMsg = err.Error()
			return nil
		}
		h.errMsg = ""
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: s}
		}
	}
}

func (h *HomeScreen) relabel() {
	h.menu.SetLabel(itemTreble, h.loc.T("menu.play_treble"))
	h.menu.SetLabel(itemBass, h.loc.T("menu.play_bass"))
	h.menu.SetLabel(itemMixed, h.loc.T("menu.play_mixed"))
	h.menu.SetLabel(itemLanguage, h.loc.T("menu.language", h.loc.LanguageName()))
	h.menu.SetLabel(itemQuit, h.loc.T("menu.quit"))
}

func (h *HomeScreen) toggleLanguage() {
	next := h.loc.Language().Toggle()
	h.loc.SetLanguage(next)
	if h.opts.Prefs != nil {
		_ = h.opts.Prefs.Set(context.Background(), store.PrefLanguage, string(next))
	}
	h.relabel()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	events := h.opts.Events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		stats, err := events.LifetimeStats(context.Background())
		return statsLoadedMsg{Stats: stats, Err: err}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			h.stats = msg.Stats
			h.hasStats = true
		}
		return h, nil

	case router.ResumeMsg:
		// The quiz may have switched language or added answers.
		h.relabel()
		return h, h.loadStats()

	case tea.KeyPressMsg:
		if key.Matches(msg, h.language) {
			h.toggleLanguage()
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < buttonMenuHeight
	cw := contentWidth(width)

	labels := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
	}

	var sections []string
	sections = append(sections, renderTitle(h.loc.T("home.tagline"), cw))
	if height >= bannerHeight {
		sections = append(sections, renderBanner(cw))
	}
	if h.hasStats {
		sections = append(sections, renderStatsBar(h.stats, h.loc.T("stats.empty"), cw))
	}
	if compact {
		sections = append(sections, renderMenuCompact(labels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(labels, h.menu.Selected, cw))
	}
	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Width(cw).Render(h.errMsg))
	}

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return h.loc.T("home.title")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: h.loc.T("hint.navigate")},
		{Key: "Enter", Description: h.loc.T("hint.select")},
		{Key: h.language.Help().Key, Description: h.loc.T("hint.language")},
		{Key: "Ctrl+C", Description: h.loc.T("hint.quit")},
	}
}
