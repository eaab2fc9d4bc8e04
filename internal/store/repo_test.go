package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(session, expected, submitted string) AnswerEventData {
	return AnswerEventData{
		SessionID: session,
		Clef:      "treble",
		Pitch:     expected + "4",
		Expected:  expected,
		Submitted: submitted,
		Correct:   expected == submitted,
		TimeMs:    1200,
	}
}

func TestLifetimeStats_Empty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.EventRepo().LifetimeStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Answered)
	assert.Zero(t, stats.Correct)
	assert.Zero(t, stats.Sessions)
	assert.Empty(t, stats.Letters)
	assert.True(t, stats.LastPlay.IsZero())
	assert.Zero(t, stats.Accuracy())
}

func TestLifetimeStats_Aggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: SessionStart, ClefPolicy: "treble"}))
	for _, a := range []AnswerEventData{
		answer("s1", "G", "G"),
		answer("s1", "D", "D"),
		answer("s1", "D", "E"),
		answer("s1", "C", "C"),
	} {
		require.NoError(t, repo.AppendAnswerEvent(ctx, a))
	}
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: SessionEnd, QuestionsServed: 4, CorrectAnswers: 3, BestStreak: 2, DurationSecs: 30,
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s2", Action: SessionStart, ClefPolicy: "random"}))

	stats, err := repo.LifetimeStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Answered)
	assert.Equal(t, 3, stats.Correct)
	assert.Equal(t, 2, stats.Sessions)
	assert.InDelta(t, 0.75, stats.Accuracy(), 1e-9)
	assert.False(t, stats.LastPlay.IsZero())

	require.Len(t, stats.Letters, 3)
	assert.Equal(t, LetterStats{Letter: "C", Attempted: 1, Correct: 1}, stats.Letters[0])
	assert.Equal(t, LetterStats{Letter: "D", Attempted: 2, Correct: 1}, stats.Letters[1])
	assert.Equal(t, LetterStats{Letter: "G", Attempted: 1, Correct: 1}, stats.Letters[2])
	assert.InDelta(t, 0.5, stats.Letters[1].Accuracy(), 1e-9)
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", Action: SessionStart}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, answer("s", "A", "A")))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", Action: SessionEnd}))

	var answerSeq int64
	require.NoError(t, s.DB().QueryRow("SELECT sequence FROM answer_events").Scan(&answerSeq))
	assert.Equal(t, int64(2), answerSeq)

	var maxSession int64
	require.NoError(t, s.DB().QueryRow("SELECT MAX(sequence) FROM session_events").Scan(&maxSession))
	assert.Equal(t, int64(3), maxSession)
}

func TestAppendSessionEvent_UnknownAction(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendSessionEvent(context.Background(), SessionEventData{SessionID: "s", Action: "pause"})
	assert.Error(t, err)
}

func TestClearHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", Action: SessionStart}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, answer("s", "B", "B")))
	require.NoError(t, repo.AppendAnswerEvent(ctx, answer("s", "F", "E")))
	require.NoError(t, s.PreferenceRepo().Set(ctx, PrefLanguage, "vi"))

	n, err := repo.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	stats, err := repo.LifetimeStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Answered)
	assert.Zero(t, stats.Sessions)

	// Preferences are not history.
	v, ok, err := s.PreferenceRepo().Get(ctx, PrefLanguage)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "vi", v)
}

func TestClearHistory_RollsBackOnFailure(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAnswerEvent(ctx, answer("s", "B", "B")))
	require.NoError(t, repo.AppendAnswerEvent(ctx, answer("s", "F", "E")))
	_, err := s.DB().Exec("DROP TABLE session_events")
	require.NoError(t, err)

	_, err = repo.ClearHistory(ctx)
	require.Error(t, err)

	var count int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM answer_events").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestPreferenceRepo(t *testing.T) {
	s := openTestStore(t)
	prefs := s.PreferenceRepo()
	ctx := context.Background()

	_, ok, err := prefs.Get(ctx, PrefLanguage)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, prefs.Set(ctx, PrefLanguage, "vi"))
	require.NoError(t, prefs.Set(ctx, PrefLanguage, "en"))

	v, ok, err := prefs.Get(ctx, PrefLanguage)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", v)

	var rows int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM preferences").Scan(&rows))
	assert.Equal(t, 1, rows)
}
