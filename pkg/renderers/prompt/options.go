package prompt

import "github.com/goliatone/go-textfield/pkg/render"

// Theme captures optional prefixes the renderer applies to messages.
type Theme struct {
	RequiredSuffix string
	ErrorPrefix    string
}

// Validator checks a committed value on behalf of the field's owner. A non-nil
// error becomes the field's error message and the prompt is repeated.
type Validator func(value string) error

// Option configures the prompt renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format render.OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithValidator installs an owner-side check run after every commit.
func WithValidator(fn Validator) Option {
	return func(r *Renderer) {
		r.validator = fn
	}
}

// WithMaxAttempts bounds how often a rejected value is re-prompted. Zero means
// no limit.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}

// WithTheme overrides message decorations.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
