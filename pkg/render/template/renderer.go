package template

import "io"

// TemplateRenderer renders named templates or inline template content with a
// data map. Output is returned and also copied to every writer in out.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(content string, data map[string]any, out ...io.Writer) (string, error)
}
