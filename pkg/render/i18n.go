package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-textfield/pkg/field"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when a key is
// set but no Translator was configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler returns the text to use when key cannot be
// translated. params carries a {"default": fallback} map as its first entry.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	if len(params) > 0 {
		if m, ok := params[0].(map[string]any); ok {
			if fallback, ok := m["default"].(string); ok && strings.TrimSpace(fallback) != "" {
				return fallback
			}
		}
	}
	return key
}

// LocalizeView translates the label, placeholder and helper text of view in
// place for every one of them that carries a key. Failures fall back through
// options.OnMissing.
func LocalizeView(view *field.View, options RenderOptions) {
	if view == nil {
		return
	}

	onMissing := options.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	if key := strings.TrimSpace(view.LabelKey); key != "" {
		view.Label = translate(options.Locale, key, view.Label, options.Translator, onMissing)
	}
	if key := strings.TrimSpace(view.PlaceholderKey); key != "" {
		view.Placeholder = translate(options.Locale, key, view.Placeholder, options.Translator, onMissing)
		view.ShrinkLabel = view.Placeholder != ""
	}
	if key := strings.TrimSpace(view.HelperTextKey); key != "" {
		view.HelperText = translate(options.Locale, key, view.HelperText, options.Translator, onMissing)
	}
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	params := []any{map[string]any{"default": fallback}}
	if t == nil {
		return onMissing(locale, key, params, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, params, err)
}

// Text returns a lookup for renderer chrome strings (required markers,
// validation notices) honouring the same translator and fallback rules as
// LocalizeView.
func Text(options RenderOptions) func(key, fallback string) string {
	onMissing := options.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	return func(key, fallback string) string {
		key = strings.TrimSpace(key)
		if key == "" {
			return fallback
		}
		return translate(options.Locale, key, fallback, options.Translator, onMissing)
	}
}
