package render

import (
	"context"

	"github.com/goliatone/go-textfield/pkg/field"
)

// Renderer presents a field through some primitive (HTML markup, a terminal
// prompt, an interactive terminal view) and returns the produced bytes.
// Interactive renderers route every edit through f.HandleChange, so f holds the
// committed value when Render returns.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, f *field.Field, options RenderOptions) ([]byte, error)
}
