package fieldspec

import (
	"fmt"

	"github.com/goliatone/go-textfield/pkg/field"
)

// Definition is a declarative field description. It carries everything a
// field.Config does except the change callback, which only code can supply.
type Definition struct {
	ID             string
	Label          string
	LabelKey       string
	Value          string
	Required       bool
	Kind           field.InputKind
	Disabled       bool
	Multiline      bool
	MaxLength      int
	Placeholder    string
	PlaceholderKey string
	ErrorMessage   string
	HelperText     string
	HelperTextKey  string
	Transform      field.Transform
	Layout         field.Layout

	// Source names the file or schema the definition came from.
	Source string
}

// Config converts the definition into a field configuration wired to
// onChange.
func (d Definition) Config(onChange field.ChangeFunc) field.Config {
	return field.Config{
		ID:             d.ID,
		Label:          d.Label,
		LabelKey:       d.LabelKey,
		Value:          d.Value,
		Required:       d.Required,
		Kind:           d.Kind,
		Disabled:       d.Disabled,
		Multiline:      d.Multiline,
		MaxLength:      d.MaxLength,
		Placeholder:    d.Placeholder,
		PlaceholderKey: d.PlaceholderKey,
		ErrorMessage:   d.ErrorMessage,
		Transform:      d.Transform,
		Layout:         d.Layout,
		HelperText:     d.HelperText,
		HelperTextKey:  d.HelperTextKey,
		OnChange:       onChange,
	}
}

// definitionFile is the on-disk shape of a definition.
type definitionFile struct {
	ID             string         `json:"id" yaml:"id"`
	Label          string         `json:"label" yaml:"label"`
	LabelKey       string         `json:"labelKey" yaml:"labelKey"`
	Value          string         `json:"value" yaml:"value"`
	Required       bool           `json:"required" yaml:"required"`
	Type           string         `json:"type" yaml:"type"`
	Disabled       bool           `json:"disabled" yaml:"disabled"`
	Multiline      bool           `json:"multiline" yaml:"multiline"`
	MaxLength      int            `json:"maxLength" yaml:"maxLength"`
	Placeholder    string         `json:"placeholder" yaml:"placeholder"`
	PlaceholderKey string         `json:"placeholderKey" yaml:"placeholderKey"`
	ErrorMessage   string         `json:"errorMessage" yaml:"errorMessage"`
	HelperText     string         `json:"helperText" yaml:"helperText"`
	HelperTextKey  string         `json:"helperTextKey" yaml:"helperTextKey"`
	Transform      string         `json:"transform" yaml:"transform"`
	Layout         map[string]any `json:"layout" yaml:"layout"`
}

func (raw definitionFile) normalise(source string) (Definition, error) {
	kind, err := field.ParseInputKind(raw.Type)
	if err != nil {
		return Definition{}, fmt.Errorf("fieldspec: %s field %q: %w", source, raw.ID, err)
	}
	transform, err := field.ParseTransform(raw.Transform)
	if err != nil {
		return Definition{}, fmt.Errorf("fieldspec: %s field %q: %w", source, raw.ID, err)
	}
	layout, err := parseLayout(raw.Layout)
	if err != nil {
		return Definition{}, fmt.Errorf("fieldspec: %s field %q: %w", source, raw.ID, err)
	}
	if raw.MaxLength < 0 {
		return Definition{}, fmt.Errorf("fieldspec: %s field %q: maxLength must not be negative", source, raw.ID)
	}

	return Definition{
		ID:             raw.ID,
		Label:          raw.Label,
		LabelKey:       raw.LabelKey,
		Value:          raw.Value,
		Required:       raw.Required,
		Kind:           kind,
		Disabled:       raw.Disabled,
		Multiline:      raw.Multiline,
		MaxLength:      raw.MaxLength,
		Placeholder:    raw.Placeholder,
		PlaceholderKey: raw.PlaceholderKey,
		ErrorMessage:   raw.ErrorMessage,
		HelperText:     raw.HelperText,
		HelperTextKey:  raw.HelperTextKey,
		Transform:      transform,
		Layout:         layout,
		Source:         source,
	}, nil
}

// parseLayout reads a breakpoint map such as {xs: 12, md: 6, lg: auto}.
func parseLayout(raw map[string]any) (field.Layout, error) {
	var layout field.Layout
	for key, value := range raw {
		size, err := field.ParseGridSize(value)
		if err != nil {
			return field.Layout{}, fmt.Errorf("layout %s: %w", key, err)
		}
		switch key {
		case "xs":
			layout.XS = size
		case "sm":
			layout.SM = size
		case "md":
			layout.MD = size
		case "lg":
			layout.LG = size
		case "xl":
			layout.XL = size
		default:
			return field.Layout{}, fmt.Errorf("layout: unknown breakpoint %q", key)
		}
	}
	return layout, nil
}
