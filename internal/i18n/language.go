package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language.
type Language string

const (
	English    Language = "en"
	Vietnamese Language = "vi"
)

// DefaultLanguage is used when no preference has been stored.
const DefaultLanguage = Vietnamese

// Supported returns the supported languages in display order.
func Supported() []Language {
	return []Language{English, Vietnamese}
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	if l == Vietnamese {
		return language.Vietnamese
	}
	return language.English
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == English {
		return Vietnamese
	}
	return English
}

// ParseLanguage accepts a BCP 47 tag such as "en", "en-US" or "vi-VN" and
// maps its base language onto a supported Language.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case string(English):
		return English, nil
	case string(Vietnamese):
		return Vietnamese, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}
