// Package title resolves navigation-bar title keys against message
// catalogs. Screens may declare a title key instead of (or alongside) a
// literal title; the translator resolves the key for the active locale
// and falls back to the literal when no message matches.
package title

import (
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Translator resolves message ids to localized titles.
// It is safe for concurrent use; SetLocales swaps the active localizer.
type Translator struct {
	bundle *i18n.Bundle

	mu        sync.RWMutex
	localizer *i18n.Localizer
}

// NewTranslator creates a Translator whose default language is used when
// no catalog matches the requested locales.
func NewTranslator(defaultLang language.Tag) *Translator {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, defaultLang.String()),
	}
}

// LoadMessageFile loads a YAML message catalog; the language is derived
// from the file name ("nav.es.yaml").
func (t *Translator) LoadMessageFile(path string) error {
	_, err := t.bundle.LoadMessageFile(path)
	return err
}

// AddMessages registers messages programmatically for a language.
func (t *Translator) AddMessages(tag language.Tag, messages ...*i18n.Message) error {
	return t.bundle.AddMessages(tag, messages...)
}

// SetLocales switches the active locales, in preference order.
func (t *Translator) SetLocales(locales ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.localizer = i18n.NewLocalizer(t.bundle, locales...)
}

// Resolve returns the localized title for key, or fallback when key is
// empty or no message matches.
func (t *Translator) Resolve(key, fallback string) string {
	if key == "" {
		return fallback
	}

	t.mu.RLock()
	loc := t.localizer
	t.mu.RUnlock()

	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
