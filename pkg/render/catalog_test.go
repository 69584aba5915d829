package render

import (
	"errors"
	"testing"

	"github.com/goliatone/go-textfield/pkg/field"
)

const catalogYAML = `
en:
  account.email: Email
  textfield.required_message: This field is required
  greeting: Hello %s
es:
  account.email: Correo electrónico
pt-BR:
  account.email: E-mail
`

func TestCatalogTranslate(t *testing.T) {
	c, err := ParseCatalog("en", []byte(catalogYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{locale: "es", key: "account.email", want: "Correo electrónico"},
		{locale: "es-MX", key: "account.email", want: "Correo electrónico"},
		{locale: "pt-BR", key: "account.email", want: "E-mail"},
		{locale: "es", key: "textfield.required_message", want: "This field is required"},
		{locale: "", key: "account.email", want: "Email"},
		{locale: "de", key: "account.email", want: "Email"},
	}
	for _, tt := range tests {
		got, err := c.Translate(tt.locale, tt.key)
		if err != nil {
			t.Fatalf("Translate(%q, %q): %v", tt.locale, tt.key, err)
		}
		if got != tt.want {
			t.Fatalf("Translate(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
		}
	}

	if got, _ := c.Translate("en", "greeting", "Ana"); got != "Hello Ana" {
		t.Fatalf("expected formatted message, got %q", got)
	}
	if _, err := c.Translate("es", "missing.key"); !errors.Is(err, ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestCatalogRejectsBadLocales(t *testing.T) {
	if _, err := NewCatalog("??", nil); err == nil {
		t.Fatalf("expected error for invalid default locale")
	}
	if _, err := NewCatalog("en", map[string]map[string]string{"not a locale": {}}); err == nil {
		t.Fatalf("expected error for invalid locale")
	}
}

func TestCatalogLocalizesView(t *testing.T) {
	c, err := ParseCatalog("en", []byte(catalogYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	view := field.View{Label: "Email", LabelKey: "account.email", HelperText: "fallback", HelperTextKey: "account.help"}
	LocalizeView(&view, RenderOptions{Locale: "es", Translator: c})
	if view.Label != "Correo electrónico" {
		t.Fatalf("expected translated label, got %q", view.Label)
	}
	if view.HelperText != "fallback" {
		t.Fatalf("expected missing key to keep fallback, got %q", view.HelperText)
	}
}
