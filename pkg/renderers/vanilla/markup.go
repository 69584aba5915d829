package vanilla

import (
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-textfield/pkg/field"
)

// Theme token keys read from go-theme renderer configs. Each value is a class
// list appended to the built-in classes of that element.
const (
	TokenRoot    = "textfield.root"
	TokenControl = "textfield.control"
	TokenLabel   = "textfield.label"
	TokenInput   = "textfield.input"
	TokenHelper  = "textfield.helper"
	TokenError   = "textfield.error"
)

type themeContext struct {
	partials map[string]string
	tokens   map[string]string
	cssVars  map[string]string
}

func themeFrom(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	return themeContext{
		partials: cfg.Partials,
		tokens:   cfg.Tokens,
		cssVars:  cfg.CSSVars,
	}
}

func (t themeContext) partial(name string) string {
	return strings.TrimSpace(t.partials[name])
}

func (t themeContext) classes(token string, base ...string) string {
	out := slices.Clone(base)
	if extra := sanitizeClassList(t.tokens[token]); extra != "" {
		out = append(out, extra)
	}
	return strings.Join(out, " ")
}

func (t themeContext) style() string {
	if len(t.cssVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(t.cssVars))
	for key := range t.cssVars {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, key := range keys {
		name := strings.TrimSpace(key)
		value := strings.TrimSpace(t.cssVars[key])
		if name == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte(';')
	}
	return b.String()
}

func templateData(view field.View, t themeContext, text func(key, fallback string) string) map[string]any {
	rootBase := append([]string{"fg-field"}, view.Layout.Classes()...)
	labelBase := []string{"fg-label"}
	if view.ShrinkLabel {
		labelBase = append(labelBase, "fg-label--shrink")
	}
	controlBase := []string{"fg-control"}
	if view.Error {
		controlBase = append(controlBase, "fg-control--error")
	}

	return map[string]any{
		"id":            view.ID,
		"label":         view.Label,
		"value":         view.Value,
		"type":          string(view.Kind),
		"required":      view.Required,
		"required_text": text("textfield.required", "required"),
		"disabled":      view.Disabled,
		"multiline":     view.Multiline,
		"maxlength":     view.MaxLength,
		"placeholder":   view.Placeholder,
		"shrink":        view.ShrinkLabel,
		"error":         view.Error,
		"error_message": view.ErrorMessage,
		"helper":        sanitizeHelper(view.HelperText),
		"transform":     view.Transform,
		"described_by":  strings.Join(view.DescribedBy(), " "),
		"style":         t.style(),
		"root_class":    t.classes(TokenRoot, rootBase...),
		"control_class": t.classes(TokenControl, controlBase...),
		"label_class":   t.classes(TokenLabel, labelBase...),
		"input_class":   t.classes(TokenInput, "fg-input"),
		"helper_class":  t.classes(TokenHelper, "fg-helper"),
		"error_class":   t.classes(TokenError, "fg-helper", "fg-helper--error"),
	}
}

// sanitizeClassList drops tokens in the reserved fg- namespace so themes can
// add classes without shadowing the built-in ones.
func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := tokens[:0]
	for _, token := range tokens {
		if strings.HasPrefix(token, "fg-") {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
