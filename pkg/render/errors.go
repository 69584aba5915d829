package render

import (
	"strings"

	"github.com/goliatone/go-textfield/pkg/field"
)

// NormalizeMessages trims messages, drops blanks and removes duplicates while
// preserving order.
func NormalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// ApplyErrors puts the view into its error state using server-side messages
// when the field has no error message of its own. Multiple messages are joined
// into a single helper line.
func ApplyErrors(view *field.View, messages []string) {
	if view == nil || view.Error {
		return
	}
	normalized := NormalizeMessages(messages)
	if len(normalized) == 0 {
		return
	}
	view.Error = true
	view.ErrorMessage = strings.Join(normalized, " ")
}

// Prepare builds the view a renderer should draw: the field snapshot with
// translations and server-side errors applied.
func Prepare(f *field.Field, options RenderOptions) field.View {
	view := f.View()
	LocalizeView(&view, options)
	ApplyErrors(&view, options.Errors)
	return view
}
