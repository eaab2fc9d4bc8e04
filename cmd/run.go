package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/app"
	"github.com/abhisek/notequiz/internal/config"
	"github.com/abhisek/notequiz/internal/i18n"
	"github.com/abhisek/notequiz/internal/question"
	"github.com/abhisek/notequiz/internal/store"
)

// env bundles what every subcommand needs once the store is open.
type env struct {
	cfg   config.Config
	store *store.Store
	loc   *i18n.Localizer
}

// setup loads configuration, opens the store and resolves the language.
// The caller must Close the returned env.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	lang := resolveLanguage(cmd.Context(), cfg, st.PreferenceRepo())
	return &env{
		cfg:   cfg,
		store: st,
		loc:   i18n.NewLocalizer(i18n.Default(), lang),
	}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}

// resolveLanguage picks --lang or NOTEQUIZ_LANG, then the saved
// preference, then the default.
func resolveLanguage(ctx context.Context, cfg config.Config, prefs store.PreferenceRepo) i18n.Language {
	if cfg.Language != "" {
		if l, err := i18n.ParseLanguage(cfg.Language); err == nil {
			return l
		}
	}
	saved, ok, err := prefs.Get(ctx, store.PrefLanguage)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not read language preference:", err)
	}
	if ok {
		if l, err := i18n.ParseLanguage(saved); err == nil {
			return l
		}
	}
	return i18n.DefaultLanguage
}

// runApp opens the store, builds dependencies, and launches the TUI. A
// non-nil play skips the home menu.
func runApp(cmd *cobra.Command, play *question.ClefPolicy) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	qcfg, err := e.cfg.QuestionConfig()
	if err != nil {
		return fmt.Errorf("question config: %w", err)
	}

	return app.Run(app.Options{
		Localizer: e.loc,
		Events:    e.store.EventRepo(),
		Prefs:     e.store.PreferenceRepo(),
		Question:  qcfg,
		Rand:      app.NewRand(e.cfg.Seed),
		Play:      play,
	})
}
