package fieldspec

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-textfield/pkg/field"
)

const (
	extTransform      = "x-transform"
	extMultiline      = "x-multiline"
	extLayout         = "x-layout"
	extLabelKey       = "x-label-key"
	extPlaceholderKey = "x-placeholder-key"
	extHelperTextKey  = "x-helper-text-key"
)

// maxLengthLimit bounds schema maxLength values so they convert to int on
// every platform.
const maxLengthLimit = math.MaxInt32

// FromOpenAPI reads the named component schema from an OpenAPI 3 document and
// returns one definition per scalar property, sorted by property name.
// Object, array and boolean properties are skipped.
func FromOpenAPI(ctx context.Context, data []byte, schemaName string) ([]Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("fieldspec: openapi document is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("fieldspec: load openapi document: %w", err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("fieldspec: openapi document has no component schemas")
	}

	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("fieldspec: schema %q not found", schemaName)
	}
	schema := ref.Value
	source := "#/components/schemas/" + schemaName

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Definition
	for _, name := range names {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil || !isScalar(prop.Value.Type) {
			continue
		}
		def, err := convertProperty(name, prop.Value, required[name], source)
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}

func isScalar(types *openapi3.Types) bool {
	if types == nil {
		return true
	}
	return types.Is(openapi3.TypeString) || types.Is(openapi3.TypeInteger) || types.Is(openapi3.TypeNumber)
}

func convertProperty(name string, src *openapi3.Schema, required bool, source string) (Definition, error) {
	def := Definition{
		ID:         name,
		Label:      strings.TrimSpace(src.Title),
		Required:   required,
		Kind:       kindFor(src),
		Disabled:   src.ReadOnly,
		HelperText: strings.TrimSpace(src.Description),
		Source:     source,
	}
	if def.Label == "" {
		def.Label = Label(name)
	}
	if src.MaxLength != nil {
		if *src.MaxLength > maxLengthLimit {
			return Definition{}, fmt.Errorf("fieldspec: %s property %q: maxLength %d exceeds %d", source, name, *src.MaxLength, maxLengthLimit)
		}
		def.MaxLength = int(*src.MaxLength)
	}
	if src.Default != nil {
		def.Value = fmt.Sprint(src.Default)
	}
	if src.Example != nil {
		def.Placeholder = fmt.Sprint(src.Example)
	}

	ext := src.Extensions
	if raw, ok := ext[extTransform].(string); ok {
		transform, err := field.ParseTransform(raw)
		if err != nil {
			return Definition{}, fmt.Errorf("fieldspec: %s property %q: %w", source, name, err)
		}
		def.Transform = transform
	}
	if multiline, ok := ext[extMultiline].(bool); ok {
		def.Multiline = multiline
	}
	if raw, ok := ext[extLayout].(map[string]any); ok {
		layout, err := parseLayout(raw)
		if err != nil {
			return Definition{}, fmt.Errorf("fieldspec: %s property %q: %w", source, name, err)
		}
		def.Layout = layout
	}
	def.LabelKey, _ = ext[extLabelKey].(string)
	def.PlaceholderKey, _ = ext[extPlaceholderKey].(string)
	def.HelperTextKey, _ = ext[extHelperTextKey].(string)

	return def, nil
}

func kindFor(src *openapi3.Schema) field.InputKind {
	if src.Type != nil && (src.Type.Is(openapi3.TypeInteger) || src.Type.Is(openapi3.TypeNumber)) {
		return field.KindNumber
	}
	if kind, err := field.ParseInputKind(src.Format); err == nil {
		return kind
	}
	return field.KindText
}
