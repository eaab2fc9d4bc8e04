package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/notequiz/internal/i18n"
	"github.com/abhisek/notequiz/internal/pitch"
	"github.com/abhisek/notequiz/internal/question"
)

// Config is the runtime configuration read from the environment.
type Config struct {
	DBPath         string `env:"NOTEQUIZ_DB"`
	Language       string `env:"NOTEQUIZ_LANG"`
	Clef           string `env:"NOTEQUIZ_CLEF"             envDefault:"random"`
	Lowest         string `env:"NOTEQUIZ_LOWEST"           envDefault:"C2"`
	Highest        string `env:"NOTEQUIZ_HIGHEST"          envDefault:"B6"`
	MaxLedgerLines int    `env:"NOTEQUIZ_MAX_LEDGER_LINES" envDefault:"2"`
	Seed           uint64 `env:"NOTEQUIZ_SEED"`
	DataHome       string `env:"XDG_DATA_HOME"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks every field that has a fixed vocabulary.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Range(); err != nil {
		errs = append(errs, err)
	}
	if _, err := question.ParsePolicy(c.Clef); err != nil {
		errs = append(errs, err)
	}
	if c.MaxLedgerLines < 0 {
		errs = append(errs, fmt.Errorf("NOTEQUIZ_MAX_LEDGER_LINES must not be negative, got %d", c.MaxLedgerLines))
	}
	if strings.TrimSpace(c.Language) != "" {
		if _, err := i18n.ParseLanguage(c.Language); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Range returns the configured pitch range.
func (c Config) Range() (pitch.Range, error) {
	low, err := pitch.ParsePitch(c.Lowest)
	if err != nil {
		return pitch.Range{}, fmt.Errorf("NOTEQUIZ_LOWEST: %w", err)
	}
	high, err := pitch.ParsePitch(c.Highest)
	if err != nil {
		return pitch.Range{}, fmt.Errorf("NOTEQUIZ_HIGHEST: %w", err)
	}
	return pitch.NewRange(low, high)
}

// QuestionConfig builds the question generator configuration.
func (c Config) QuestionConfig() (question.Config, error) {
	if err := c.Validate(); err != nil {
		return question.Config{}, err
	}
	r, _ := c.Range()
	policy, _ := question.ParsePolicy(c.Clef)

	qc := question.DefaultConfig()
	qc.Range = r
	qc.Policy = policy
	qc.MaxLedgerLines = c.MaxLedgerLines
	return qc, nil
}
