package live

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
)

// ErrAborted is returned when the user leaves the field with Esc or Ctrl+C.
var ErrAborted = errors.New("live: aborted")

// Option configures the live renderer.
type Option func(*Renderer)

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format render.OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithStyles overrides the default palette.
func WithStyles(styles Styles) Option {
	return func(r *Renderer) {
		r.styles = styles
	}
}

// WithValidator installs an owner-side check run when the user submits.
func WithValidator(fn func(string) error) Option {
	return func(r *Renderer) {
		r.validator = fn
	}
}

// WithIO runs the program against the given streams instead of the terminal.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *Renderer) {
		r.in = in
		r.out = out
	}
}

// Renderer runs an interactive terminal program for a field.
type Renderer struct {
	outputFormat render.OutputFormat
	styles       Styles
	validator    func(string) error
	in           io.Reader
	out          io.Writer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a live renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: render.OutputFormatJSON,
		styles:       DefaultStyles(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return "live"
}

func (r *Renderer) ContentType() string {
	return r.outputFormat.ContentType()
}

// Render runs the program until the user submits or aborts. The committed
// value is serialized on submit.
func (r *Renderer) Render(ctx context.Context, f *field.Field, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, errors.New("live: field is nil")
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.in != nil {
		progOpts = append(progOpts, tea.WithInput(r.in))
	}
	if r.out != nil {
		progOpts = append(progOpts, tea.WithOutput(r.out))
	}

	model := NewModel(f, options, r.styles)
	model.validator = r.validator

	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		return nil, fmt.Errorf("live: run program: %w", err)
	}
	if m, ok := final.(Model); ok {
		if err := m.Err(); err != nil {
			return nil, err
		}
		if m.Aborted() {
			return nil, ErrAborted
		}
	}

	view := render.Prepare(f, options)
	return r.outputFormat.Encode(render.Submission{ID: view.ID, Label: view.Label, Value: f.Value()})
}
