package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the field itself.
type RenderOptions struct {
	// Locale selects the translation locale for LabelKey/PlaceholderKey/
	// HelperTextKey lookups.
	Locale     string
	Translator Translator
	// OnMissing decides the string used when a translation is unavailable.
	// Defaults to the untranslated text, then the key.
	OnMissing MissingTranslationHandler
	// Errors surfaces server-side validation feedback for the field. Messages
	// are only shown when the field carries no error message of its own.
	Errors []string
	// Theme carries go-theme resolved tokens, partials and CSS variables.
	Theme *theme.RendererConfig
}
