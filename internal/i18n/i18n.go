// Package i18n resolves the visitor language and holds the English and Arabic
// strings used by the wizard and the quote documents.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

var supported = []language.Tag{language.English, language.Arabic}

var matcher = language.NewMatcher(supported)

// Match resolves the first usable preference. Each preference may be an
// explicit code ("ar") or a full Accept-Language header. English is the
// fallback.
func Match(prefs ...string) Language {
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := matcher.Match(tags...)
		if conf == language.No {
			continue
		}
		if supported[idx] == language.Arabic {
			return Arabic
		}
		return English
	}
	return English
}

// Parse accepts exactly "en" or "ar".
func Parse(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Arabic:
		return Arabic, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Direction is the HTML dir attribute for the language.
func (l Language) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Language) String() string {
	return string(l)
}

// T returns the translation of key, falling back to English and then to the
// key itself.
func T(l Language, key string) string {
	if s, ok := messages[l][key]; ok {
		return s
	}
	if s, ok := messages[English][key]; ok {
		return s
	}
	return key
}

// Tf is T followed by fmt.Sprintf.
func Tf(l Language, key string, args ...any) string {
	return fmt.Sprintf(T(l, key), args...)
}

// ValidationMessage localizes a field error. Field specific messages win over
// the generic message of the code.
func ValidationMessage(l Language, field, code string) string {
	if s, ok := lookup(l, "validation."+field+"."+code); ok {
		return s
	}
	return T(l, "validation."+code)
}

func lookup(l Language, key string) (string, bool) {
	if s, ok := messages[l][key]; ok {
		return s, true
	}
	s, ok := messages[English][key]
	return s, ok
}
