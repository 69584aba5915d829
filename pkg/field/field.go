package field

import "fmt"

// Field is a single text-input instance. It owns the display value and the
// identifier; everything else comes from the caller's Config.
type Field struct {
	id       string
	cfg      Config
	display  string
	external string
}

// New validates cfg and creates a Field. The identifier is taken from cfg.ID or
// generated, and the display value starts as cfg.Value.
func New(cfg Config) (*Field, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("field: invalid config: %w", err)
	}

	id := cfg.ID
	if id == "" {
		id = NewID()
	}
	cfg.ID = id

	return &Field{
		id:       id,
		cfg:      cfg,
		display:  Truncate(cfg.Value, cfg.MaxLength),
		external: cfg.Value,
	}, nil
}

// ID returns the identifier assigned at creation.
func (f *Field) ID() string {
	return f.id
}

// Value returns the current display value.
func (f *Field) Value() string {
	return f.display
}

// Config returns the configuration in effect. Its ID is always the identifier
// assigned at creation.
func (f *Field) Config() Config {
	return f.cfg
}

// Update re-renders the field with new configuration. When cfg.Value differs
// from the previously supplied value the display value is replaced and any
// uncommitted local edit is discarded; an unchanged value leaves the display
// value alone. The identifier never changes, even if cfg.ID does.
//
// A lower MaxLength truncates the display value, local edits included,
// without calling OnChange; owners comparing against their last callback
// value should read Value after Update.
func (f *Field) Update(cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("field: invalid config: %w", err)
	}
	cfg.ID = f.id

	if cfg.Value != f.external {
		f.external = cfg.Value
		f.display = cfg.Value
	}
	f.cfg = cfg
	f.display = Truncate(f.display, cfg.MaxLength)
	return nil
}

// HandleChange processes one edit: the transform runs first, then truncation,
// then the result is committed as the display value and passed to OnChange.
// It returns the committed value.
func (f *Field) HandleChange(raw string) string {
	f.display = Pipeline(f.cfg.Transform, f.cfg.MaxLength, raw, f.display)
	if f.cfg.OnChange != nil {
		f.cfg.OnChange(f.display)
	}
	return f.display
}

// View snapshots what a renderer needs to draw the field.
func (f *Field) View() View {
	return View{
		ID:             f.id,
		Label:          f.cfg.Label,
		LabelKey:       f.cfg.LabelKey,
		Value:          f.display,
		Kind:           f.cfg.Kind,
		Required:       f.cfg.Required,
		Disabled:       f.cfg.Disabled,
		Multiline:      f.cfg.Multiline,
		MaxLength:      f.cfg.MaxLength,
		Placeholder:    f.cfg.Placeholder,
		PlaceholderKey: f.cfg.PlaceholderKey,
		ShrinkLabel:    f.cfg.Placeholder != "",
		Error:          f.cfg.ErrorMessage != "",
		ErrorMessage:   f.cfg.ErrorMessage,
		HelperText:     f.cfg.HelperText,
		HelperTextKey:  f.cfg.HelperTextKey,
		Transform:      f.cfg.Transform.Name(),
		Layout:         f.cfg.Layout,
	}
}
