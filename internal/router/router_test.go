package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notequiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

// recordingScreen remembers the messages it was sent.
type recordingScreen struct {
	stubScreen
	got []tea.Msg
}

func (s *recordingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func TestPopResumesUncoveredScreen(t *testing.T) {
	s1 := &recordingScreen{stubScreen: stubScreen{title: "first"}}
	r := New(s1)
	r.Push(&stubScreen{title: "second"})

	cmd := r.Update(PopScreenMsg{})
	if cmd == nil {
		t.Fatal("expected a resume command after pop")
	}
	r.Update(cmd())

	if len(s1.got) != 1 {
		t.Fatalf("expected 1 message on uncovered screen, got %d", len(s1.got))
	}
	if _, ok := s1.got[0].(ResumeMsg); !ok {
		t.Errorf("expected ResumeMsg, got %T", s1.got[0])
	}
}

func TestPopAtBottomHasNoCommand(t *testing.T) {
	r := New(&stubScreen{title: "only"})
	if cmd := r.Pop(); cmd != nil {
		t.Error("expected nil command when nothing was popped")
	}
}

func TestPushScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	s2 := &stubScreen{title: "second"}
	r.Update(PushScreenMsg{Screen: s2})

	if r.Depth() != 2 || r.Active() != s2 {
		t.Errorf("expected second screen on top at depth 2, got depth %d", r.Depth())
	}
	if r.View(10, 10) != "second" {
		t.Errorf("View = %q, want %q", r.View(10, 10), "second")
	}
}
