package render

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// OutputFormat controls how interactive renderers serialize the committed
// value.
type OutputFormat string

const (
	// OutputFormatJSON emits {"id": ..., "value": ...}.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits id=value.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits "Label: value".
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat resolves a format name, defaulting to JSON.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", OutputFormatJSON:
		return OutputFormatJSON, nil
	case OutputFormatFormURLEncoded, "urlencoded":
		return OutputFormatFormURLEncoded, nil
	case OutputFormatPrettyText, "text":
		return OutputFormatPrettyText, nil
	default:
		return "", fmt.Errorf("render: unknown output format %q", raw)
	}
}

// ContentType reports the MIME type of f.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Submission is the committed result of an interactive session.
type Submission struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// Encode serializes s in format f.
func (f OutputFormat) Encode(s Submission) ([]byte, error) {
	switch f {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		values.Set(s.ID, s.Value)
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		label := s.Label
		if strings.TrimSpace(label) == "" {
			label = s.ID
		}
		return []byte(label + ": " + s.Value + "\n"), nil
	default:
		payload, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("render: encode submission: %w", err)
		}
		return payload, nil
	}
}
