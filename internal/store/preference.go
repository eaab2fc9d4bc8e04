package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// PrefLanguage is the preference key for the UI language.
const PrefLanguage = "language"

type preferenceRepo struct {
	db *sql.DB
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	b := builder()
	sel := b.Select("value").
		From(entsql.Table(preferencesTable)).
		Where(entsql.EQ("key", key))
	query, args := sel.Query()

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	b := builder()
	insert := b.Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		)
	query, args := insert.Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}
