package live

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
)

// Model is a bubbletea model presenting one field. The text input is the
// editing primitive; every change it reports is committed through the field
// and the input is reset to the committed value.
type Model struct {
	field   *field.Field
	options render.RenderOptions
	input   textinput.Model
	styles  Styles
	// validator runs on submit; a non-nil error keeps the program open with
	// the error shown on the field.
	validator func(string) error

	// shown is the input text as last written by the model. The input
	// sanitizes what it is given, so it can differ from the field value.
	shown string

	submitted bool
	aborted   bool
	err       error
}

// NewModel builds a model for f. The input starts with the field's display
// value and is focused unless the field is disabled.
func NewModel(f *field.Field, options render.RenderOptions, styles Styles) Model {
	view := render.Prepare(f, options)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = view.Placeholder
	ti.SetValue(view.Value)
	if view.Kind == field.KindPassword {
		ti.EchoMode = textinput.EchoPassword
	}
	if !view.Disabled {
		ti.Focus()
	}

	return Model{
		field:   f,
		options: options,
		input:   ti,
		styles:  styles,
		shown:   ti.Value(),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles submit/abort keys and forwards everything else to the input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			if message := m.rejection(); message != "" {
				if err := m.setError(message); err != nil {
					m.err = err
					return m, tea.Quit
				}
				return m, nil
			}
			if err := m.setError(""); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.submitted = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	if m.field.View().Disabled {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reconcile()
	return m, cmd
}

// reconcile commits the input's text when the user changed it and writes the
// committed value back, so transforms and truncation show up while typing.
func (m *Model) reconcile() {
	raw := m.input.Value()
	if raw == m.shown {
		return
	}
	committed := m.field.HandleChange(raw)
	if committed != raw {
		m.input.SetValue(committed)
	}
	m.shown = m.input.Value()
}

func (m Model) rejection() string {
	view := m.field.View()
	if view.Disabled {
		return ""
	}
	if view.Required && strings.TrimSpace(view.Value) == "" {
		return render.Text(m.options)("textfield.required_message", "This field is required")
	}
	if m.validator != nil {
		if err := m.validator(view.Value); err != nil {
			return err.Error()
		}
	}
	return ""
}

func (m *Model) setError(message string) error {
	cfg := m.field.Config()
	if cfg.ErrorMessage == message {
		return nil
	}
	cfg.ErrorMessage = message
	if err := m.field.Update(cfg); err != nil {
		return fmt.Errorf("live: update field: %w", err)
	}
	return nil
}

// View draws label, input, error line and helper text.
func (m Model) View() tea.View {
	return tea.NewView(m.content())
}

func (m Model) content() string {
	view := render.Prepare(m.field, m.options)

	var b strings.Builder
	b.WriteString(m.styles.Label.Render(view.Label))
	if view.Required {
		b.WriteString(m.styles.Required.Render(" *"))
	}
	b.WriteByte('\n')

	input := m.input.View()
	if view.Disabled {
		input = m.styles.Disabled.Render(input)
	}
	b.WriteString(input)
	b.WriteByte('\n')

	if view.Error {
		b.WriteString(m.styles.Error.Render(view.ErrorMessage))
		b.WriteByte('\n')
	}
	if helper := strings.TrimSpace(view.HelperText); helper != "" {
		b.WriteString(m.styles.Helper.Render(helper))
		b.WriteByte('\n')
	}
	return b.String()
}

// Submitted reports whether the user confirmed the value.
func (m Model) Submitted() bool { return m.submitted }

// Aborted reports whether the user cancelled.
func (m Model) Aborted() bool { return m.aborted }

// Err reports a failure that stopped the program.
func (m Model) Err() error { return m.err }
