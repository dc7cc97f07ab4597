// Package i18n resolves per-language content for the panels.
// Every table is compiled in; English is the fallback for every entry.
package i18n

import (
	"errors"
	"fmt"
	"sort"

	"kisanmitra/internal/domain"
)

// DefaultLanguage is the fallback target of every lookup.
const DefaultLanguage = domain.English

// ErrMissingFallback marks a table with neither the requested language nor English.
var ErrMissingFallback = errors.New("i18n: no english fallback")

// Text is one localized string: language -> pre-rendered text.
type Text map[domain.Language]string

// Resolve returns t[lang] when present and t[english] otherwise.
func Resolve(t Text, lang domain.Language) (string, error) {
	if s, ok := t[lang]; ok {
		return s, nil
	}
	if s, ok := t[DefaultLanguage]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w (requested %q)", ErrMissingFallback, lang)
}

// MustResolve is Resolve for compiled tables already checked by Validate.
func MustResolve(t Text, lang domain.Language) string {
	s, err := Resolve(t, lang)
	if err != nil {
		panic(err)
	}
	return s
}

// T returns the translation of key in lang.
// Extra args are passed to fmt.Sprintf. Unknown keys return the key itself.
func T(key string, lang domain.Language, args ...interface{}) string {
	text, ok := translations[key]
	if !ok {
		return key
	}
	tmpl := MustResolve(text, lang)
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Notice builds a notification from a title key and an optional description key.
func Notice(level domain.Level, lang domain.Language, titleKey, descKey string) domain.Notification {
	n := domain.Notification{Level: level, Title: T(titleKey, lang)}
	if descKey != "" {
		n.Description = T(descKey, lang)
	}
	return n
}

// Validate checks every compiled table: each entry needs a non-empty English
// text and no empty translation. The process must not start otherwise.
func Validate() error {
	keys := make([]string, 0, len(translations))
	for k := range translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := checkText(k, translations[k]); err != nil {
			return err
		}
	}

	if len(chatResponses[DefaultLanguage]) == 0 {
		return fmt.Errorf("%w: chat responses", ErrMissingFallback)
	}
	for lang, list := range chatResponses {
		for i, s := range list {
			if s == "" {
				return fmt.Errorf("i18n: empty chat response %s[%d]", lang, i)
			}
		}
	}

	for _, kind := range domain.ServiceKinds {
		card, ok := serviceCards[kind]
		if !ok {
			return fmt.Errorf("i18n: no service card for %s", kind)
		}
		if err := checkText("service."+string(kind)+".title", card.Title); err != nil {
			return err
		}
		if err := checkText("service."+string(kind)+".description", card.Description); err != nil {
			return err
		}
		if err := checkText("service."+string(kind)+".result", serviceResults[kind]); err != nil {
			return err
		}
	}
	return nil
}

func checkText(name string, t Text) error {
	if t[DefaultLanguage] == "" {
		return fmt.Errorf("%w: %s", ErrMissingFallback, name)
	}
	for lang, s := range t {
		if s == "" {
			return fmt.Errorf("i18n: empty %s translation for %s", lang, name)
		}
	}
	return nil
}
