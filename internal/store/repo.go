package store

import (
	"context"
	"time"
)

// Session event actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	SessionID string
	Clef      string
	Pitch     string
	Expected  string
	Submitted string
	Correct   bool
	TimeMs    int64
}

// SessionEventData captures the start or end of a quiz session.
type SessionEventData struct {
	SessionID       string
	Action          string
	ClefPolicy      string
	QuestionsServed int
	CorrectAnswers  int
	BestStreak      int
	DurationSecs    int
}

// LetterStats is the lifetime tally for one expected letter.
type LetterStats struct {
	Letter    string
	Attempted int
	Correct   int
}

// Accuracy returns Correct/Attempted, or 0 when nothing was attempted.
func (s LetterStats) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// Stats aggregates every recorded answer.
type Stats struct {
	Answered int
	Correct  int
	Sessions int
	Letters  []LetterStats
	LastPlay time.Time
}

// Accuracy returns Correct/Answered, or 0 when nothing was answered.
func (s Stats) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// EventRepo provides append and aggregate access to quiz events.
type EventRepo interface {
	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// LifetimeStats aggregates all answer and session events.
	LifetimeStats(ctx context.Context) (Stats, error)

	// ClearHistory deletes every answer and session event and returns the
	// number of answer events removed.
	ClearHistory(ctx context.Context) (int64, error)
}

// PreferenceRepo stores small string settings by key.
type PreferenceRepo interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error
}
