package field

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// InputKind is the semantic type of the rendered control. Values map onto HTML
// input types.
type InputKind string

const (
	KindText     InputKind = "text"
	KindPassword InputKind = "password"
	KindNumber   InputKind = "number"
	KindEmail    InputKind = "email"
	KindTel      InputKind = "tel"
	KindURL      InputKind = "url"
	KindSearch   InputKind = "search"
)

var knownKinds = []any{KindText, KindPassword, KindNumber, KindEmail, KindTel, KindURL, KindSearch}

// ParseInputKind maps a loose kind name onto an InputKind. Empty input and the
// legacy "string" alias resolve to KindText.
func ParseInputKind(raw string) (InputKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text", "string":
		return KindText, nil
	case "password":
		return KindPassword, nil
	case "number", "integer":
		return KindNumber, nil
	case "email":
		return KindEmail, nil
	case "tel", "phone":
		return KindTel, nil
	case "url", "uri":
		return KindURL, nil
	case "search":
		return KindSearch, nil
	default:
		return "", fmt.Errorf("field: unknown input kind %q", raw)
	}
}

// ChangeFunc receives the committed value after each processed edit.
type ChangeFunc func(value string)

// Config is the caller-supplied configuration for a Field. It is treated as
// immutable per render: callers pass a fresh Config to Update.
type Config struct {
	// ID names the rendered control. When empty a unique identifier is
	// generated on creation.
	ID string
	// Label is shown next to the control. LabelKey, when set, lets renderers
	// translate it.
	Label    string
	LabelKey string
	// Value is the owner's source of truth for the field contents.
	Value     string
	Required  bool
	Kind      InputKind
	Disabled  bool
	Multiline bool
	// MaxLength truncates committed values to this many runes. Zero disables
	// truncation.
	MaxLength      int
	Placeholder    string
	PlaceholderKey string
	// ErrorMessage switches the field into its error presentation when
	// non-empty and is shown as helper text.
	ErrorMessage string
	Transform    Transform
	Layout       Layout
	// HelperText is rendered beneath the control. It may carry markup; HTML
	// renderers sanitize it.
	HelperText    string
	HelperTextKey string
	OnChange      ChangeFunc
}

func (c Config) withDefaults() Config {
	if c.Kind == "" {
		c.Kind = KindText
	}
	c.ID = strings.TrimSpace(c.ID)
	return c
}

// Validate checks the configuration contract. Label and OnChange are required.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Label, validation.Required.Error("label is required")),
		validation.Field(&c.Kind, validation.In(knownKinds...).Error("unsupported input kind")),
		validation.Field(&c.MaxLength, validation.Min(0).Error("must not be negative")),
		validation.Field(&c.OnChange, validation.By(requireChangeFunc)),
	)
}

var errMissingOnChange = errors.New("change callback is required")

func requireChangeFunc(value any) error {
	fn, _ := value.(ChangeFunc)
	if fn == nil {
		return errMissingOnChange
	}
	return nil
}
