package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.Action != SessionStart && data.Action != SessionEnd {
		return fmt.Errorf("unknown session action %q", data.Action)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	b := builder()
	insert := b.Insert(sessionEventsTable).
		Columns("sequence", "timestamp", "session_id", "action", "clef_policy",
			"questions_served", "correct_answers", "best_streak", "duration_secs").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Action, data.ClefPolicy,
			data.QuestionsServed, data.CorrectAnswers, data.BestStreak, data.DurationSecs)
	if _, err := r.exec(ctx, insert); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
