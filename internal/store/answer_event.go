package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *eventRepo) exec(ctx context.Context, q entsql.Querier) (sql.Result, error) {
	return execQuery(ctx, r.db, q)
}

func execQuery(ctx context.Context, db execer, q entsql.Querier) (sql.Result, error) {
	query, args := q.Query()
	return db.ExecContext(ctx, query, args...)
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	b := builder()
	insert := b.Insert(answerEventsTable).
		Columns("sequence", "timestamp", "session_id", "clef", "pitch",
			"expected", "submitted", "correct", "time_ms").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Clef, data.Pitch,
			data.Expected, data.Submitted, data.Correct, data.TimeMs)
	if _, err := r.exec(ctx, insert); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) LifetimeStats(ctx context.Context) (Stats, error) {
	var stats Stats
	b := builder()

	totals := b.Select(
		entsql.As(entsql.Count("*"), "answered"),
		entsql.As("COALESCE(SUM(`correct`), 0)", "correct"),
	).From(entsql.Table(answerEventsTable))
	query, args := totals.Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.Answered, &stats.Correct); err != nil {
		return Stats{}, fmt.Errorf("query answer totals: %w", err)
	}

	sessions := b.Select(entsql.Count("*")).
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.EQ("action", SessionStart))
	query, args = sessions.Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.Sessions); err != nil {
		return Stats{}, fmt.Errorf("query session count: %w", err)
	}

	last := b.Select("timestamp").
		From(entsql.Table(answerEventsTable)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1)
	query, args = last.Query()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.LastPlay)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Stats{}, fmt.Errorf("query last answer: %w", err)
	}

	letters, err := r.letterStats(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats.Letters = letters
	return stats, nil
}

func (r *eventRepo) letterStats(ctx context.Context) ([]LetterStats, error) {
	b := builder()
	sel := b.Select(
		"expected",
		entsql.As(entsql.Count("*"), "attempted"),
		entsql.As("COALESCE(SUM(`correct`), 0)", "correct"),
	).From(entsql.Table(answerEventsTable)).
		GroupBy("expected")
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query letter stats: %w", err)
	}
	defer rows.Close()

	var out []LetterStats
	for rows.Next() {
		var ls LetterStats
		if err := rows.Scan(&ls.Letter, &ls.Attempted, &ls.Correct); err != nil {
			return nil, fmt.Errorf("scan letter stats: %w", err)
		}
		out = append(out, ls)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate letter stats: %w", err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return letterOrder(out[i].Letter) < letterOrder(out[j].Letter)
	})
	return out, nil
}

// letterOrder sorts letters C through B, unknown values last.
func letterOrder(s string) int {
	const order = "CDEFGAB"
	for i := 0; i < len(order); i++ {
		if s == order[i:i+1] {
			return i
		}
	}
	return len(order)
}

func (r *eventRepo) ClearHistory(ctx context.Context) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin clear history: %w", err)
	}
	defer tx.Rollback()

	b := builder()
	res, err := execQuery(ctx, tx, b.Delete(answerEventsTable))
	if err != nil {
		return 0, fmt.Errorf("delete answer events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted answer events: %w", err)
	}
	if _, err := execQuery(ctx, tx, b.Delete(sessionEventsTable)); err != nil {
		return 0, fmt.Errorf("delete session events: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit clear history: %w", err)
	}
	return n, nil
}
