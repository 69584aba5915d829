package textfield

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
	"github.com/goliatone/go-textfield/pkg/renderers/live"
	"github.com/goliatone/go-textfield/pkg/renderers/prompt"
	"github.com/goliatone/go-textfield/pkg/renderers/vanilla"
)

// RenderOptions aliases render.RenderOptions for callers that only import the
// root package.
type RenderOptions = render.RenderOptions

// Config aliases field.Config.
type Config = field.Config

// New creates a field. See field.New.
func New(cfg Config) (*field.Field, error) {
	return field.New(cfg)
}

// NewRegistry returns a registry holding the built-in renderers: "vanilla"
// (HTML), "prompt" (survey) and "live" (bubbletea). Extra renderers are
// registered after them.
func NewRegistry(extra ...render.Renderer) (*render.Registry, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("textfield: vanilla renderer: %w", err)
	}
	renderers := append([]render.Renderer{html, prompt.New(), live.New()}, extra...)
	return render.NewRegistry(renderers...)
}

// RenderHTML renders f with the default vanilla renderer.
func RenderHTML(ctx context.Context, f *field.Field, options RenderOptions) ([]byte, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("textfield: vanilla renderer: %w", err)
	}
	return html.Render(ctx, f, options)
}

// EmbeddedTemplates exposes the built-in vanilla templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the stylesheet and browser runtime shipped with the
// vanilla renderer.
//
// Typical mount:
//
//	mux.Handle("/textfield/",
//	  http.StripPrefix("/textfield/",
//	    http.FileServerFS(textfield.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}

// ResolveTheme selects a theme and variant and flattens it into the renderer
// config the vanilla renderer reads. Variant tokens and templates override the
// manifest's; every token is also exposed as a CSS variable.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("textfield: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("textfield: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("textfield: theme %q has no manifest", name)
	}

	manifest := selection.Manifest
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}

	merge := func(tokens, templates map[string]string) {
		for key, value := range tokens {
			cfg.Tokens[key] = value
			cfg.CSSVars["--"+key] = value
		}
		for key, value := range templates {
			cfg.Partials[key] = value
		}
	}
	merge(manifest.Tokens, manifest.Templates)
	if v, ok := manifest.Variants[selection.Variant]; ok {
		merge(v.Tokens, v.Templates)
	}
	return cfg, nil
}
