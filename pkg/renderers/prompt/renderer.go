package prompt

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
)

// Renderer drives a field through terminal prompts. Every answer is an edit
// event: it passes through the field's transform pipeline before the owner's
// validator sees it.
type Renderer struct {
	driver       PromptDriver
	outputFormat render.OutputFormat
	validator    Validator
	maxAttempts  int
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a prompt renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: render.OutputFormatJSON,
		theme: Theme{
			RequiredSuffix: " *",
			ErrorPrefix:    "! ",
		},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "prompt"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return r.outputFormat.ContentType()
}

// Render prompts until the owner accepts the committed value, then returns it
// serialized. Disabled fields are reported without prompting.
func (r *Renderer) Render(ctx context.Context, f *field.Field, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("prompt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("prompt: prompt driver is nil")
	}
	if f == nil {
		return nil, errors.New("prompt: field is nil")
	}

	text := render.Text(options)
	for attempt := 1; ; attempt++ {
		view := render.Prepare(f, options)
		options.Errors = nil

		if view.Error {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+view.ErrorMessage); err != nil {
				return nil, err
			}
		}
		if view.Disabled {
			break
		}

		raw, err := r.ask(ctx, view)
		if err != nil {
			return nil, err
		}
		committed := f.HandleChange(raw)

		message := r.check(view, committed, text)
		cfg := f.Config()
		cfg.ErrorMessage = message
		if err := f.Update(cfg); err != nil {
			return nil, fmt.Errorf("prompt: update field: %w", err)
		}
		if message == "" {
			break
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return nil, fmt.Errorf("%w: %s", ErrTooManyAttempts, message)
		}
	}

	view := f.View()
	label := render.Prepare(f, options).Label
	return r.outputFormat.Encode(render.Submission{ID: view.ID, Label: label, Value: view.Value})
}

func (r *Renderer) ask(ctx context.Context, view field.View) (string, error) {
	message := view.Label
	if view.Required {
		message += r.theme.RequiredSuffix
	}
	help := plainText(view.HelperText)
	if help == "" && view.Placeholder != "" {
		help = view.Placeholder
	}

	switch {
	case view.Kind == field.KindPassword:
		return r.driver.Password(ctx, InputConfig{Message: message, Help: help})
	case view.Multiline:
		return r.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: view.Value, Help: help})
	default:
		return r.driver.Input(ctx, InputConfig{Message: message, Default: view.Value, Help: help})
	}
}

func (r *Renderer) check(view field.View, committed string, text func(key, fallback string) string) string {
	if view.Required && strings.TrimSpace(committed) == "" {
		return text("textfield.required_message", "This field is required")
	}
	if r.validator == nil {
		return ""
	}
	if err := r.validator(committed); err != nil {
		return err.Error()
	}
	return ""
}

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// plainText drops markup from helper content so it reads cleanly in a
// terminal.
func plainText(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(raw)))
}
