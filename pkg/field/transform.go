package field

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TransformKind tags the Transform variant.
type TransformKind int

const (
	TransformNone TransformKind = iota
	TransformLowerCase
	TransformUpperCase
	TransformCustom
)

func (k TransformKind) String() string {
	switch k {
	case TransformLowerCase:
		return "lowerCase"
	case TransformUpperCase:
		return "upperCase"
	case TransformCustom:
		return "custom"
	default:
		return ""
	}
}

// TransformFunc rewrites a raw edit. It receives the new raw value and the
// display value held before the edit.
type TransformFunc func(newValue, oldValue string) string

// Transform is the optional rewrite applied to every edit before truncation.
// The zero value applies no transform.
type Transform struct {
	kind TransformKind
	fn   TransformFunc
}

// NoTransform leaves edits unchanged.
func NoTransform() Transform { return Transform{} }

// LowerCase maps edits to lower case.
func LowerCase() Transform { return Transform{kind: TransformLowerCase} }

// UpperCase maps edits to upper case.
func UpperCase() Transform { return Transform{kind: TransformUpperCase} }

// Custom wraps a caller function. A nil function yields NoTransform.
func Custom(fn TransformFunc) Transform {
	if fn == nil {
		return Transform{}
	}
	return Transform{kind: TransformCustom, fn: fn}
}

// ParseTransform resolves a named transform. Names are case-insensitive and
// accept both "upperCase" and "upper".
func ParseTransform(name string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return NoTransform(), nil
	case "lowercase", "lower":
		return LowerCase(), nil
	case "uppercase", "upper":
		return UpperCase(), nil
	default:
		return Transform{}, fmt.Errorf("field: unknown transform %q", name)
	}
}

// Kind reports which variant t holds.
func (t Transform) Kind() TransformKind { return t.kind }

// Name reports the transform name used by renderers. Custom transforms have no
// portable name and report "custom".
func (t Transform) Name() string { return t.kind.String() }

// Apply rewrites raw. Custom functions are checked first, then the case
// variants; anything else passes raw through.
func (t Transform) Apply(raw, previous string) string {
	switch {
	case t.kind == TransformCustom && t.fn != nil:
		return t.fn(raw, previous)
	case t.kind == TransformLowerCase:
		return cases.Lower(language.Und).String(raw)
	case t.kind == TransformUpperCase:
		return cases.Upper(language.Und).String(raw)
	default:
		return raw
	}
}

// Truncate cuts value to at most limit runes. A limit of zero or less leaves
// value untouched.
func Truncate(value string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(value) <= limit {
		return value
	}
	count := 0
	for i := range value {
		if count == limit {
			return value[:i]
		}
		count++
	}
	return value
}

// Pipeline applies the transform and then truncation, in that order.
func Pipeline(t Transform, maxLength int, raw, previous string) string {
	return Truncate(t.Apply(raw, previous), maxLength)
}
