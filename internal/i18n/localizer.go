package i18n

import (
	"golang.org/x/text/message"

	"github.com/abhisek/notequiz/internal/clef"
	"github.com/abhisek/notequiz/internal/pitch"
)

// Localizer formats display strings in one language at a time.
// Screens share a single Localizer so a language switch is seen everywhere.
type Localizer struct {
	bundle  *Bundle
	lang    Language
	printer *message.Printer
}

// NewLocalizer returns a Localizer for lang backed by bundle.
func NewLocalizer(bundle *Bundle, lang Language) *Localizer {
	l := &Localizer{bundle: bundle}
	l.SetLanguage(lang)
	return l
}

// Language returns the active language.
func (l *Localizer) Language() Language {
	return l.lang
}

// SetLanguage switches the active language.
func (l *Localizer) SetLanguage(lang Language) {
	l.lang = lang
	l.printer = message.NewPrinter(lang.Tag(), message.Catalog(l.bundle.catalog()))
}

// T formats the message for key with args.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// NoteName returns the localized name of a note letter (Sol for G in Vietnamese).
func (l *Localizer) NoteName(letter pitch.Letter) string {
	return l.T("note." + letter.String())
}

// ClefName returns the localized clef name.
func (l *Localizer) ClefName(c clef.Clef) string {
	return l.T("clef." + c.String())
}

// LanguageName returns the active language's own name.
func (l *Localizer) LanguageName() string {
	return l.T("lang.name")
}
