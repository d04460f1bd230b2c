package title

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()

	tr := NewTranslator(language.English)
	if err := tr.AddMessages(language.English,
		&i18n.Message{ID: "nav.checkout.title", Other: "Checkout"},
	); err != nil {
		t.Fatalf("AddMessages(en): %v", err)
	}
	if err := tr.AddMessages(language.Spanish,
		&i18n.Message{ID: "nav.checkout.title", Other: "Pago"},
	); err != nil {
		t.Fatalf("AddMessages(es): %v", err)
	}
	return tr
}

func TestResolveDefaultLanguage(t *testing.T) {
	tr := newTestTranslator(t)

	if got := tr.Resolve("nav.checkout.title", "fallback"); got != "Checkout" {
		t.Errorf("Resolve = %q, want %q", got, "Checkout")
	}
}

func TestResolveAfterSetLocales(t *testing.T) {
	tr := newTestTranslator(t)
	tr.SetLocales("es")

	if got := tr.Resolve("nav.checkout.title", "fallback"); got != "Pago" {
		t.Errorf("Resolve = %q, want %q", got, "Pago")
	}
}

func TestResolveEmptyKeyUsesFallback(t *testing.T) {
	tr := newTestTranslator(t)

	if got := tr.Resolve("", "Untitled"); got != "Untitled" {
		t.Errorf("Resolve = %q, want %q", got, "Untitled")
	}
}

func TestResolveUnknownKeyUsesFallback(t *testing.T) {
	tr := newTestTranslator(t)

	if got := tr.Resolve("nav.missing", "Untitled"); got != "Untitled" {
		t.Errorf("Resolve = %q, want %q", got, "Untitled")
	}
}
