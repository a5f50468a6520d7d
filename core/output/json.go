package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders results as indented JSON
type JSONFormatter struct {
	indent string
}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{indent: "  "}
}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render encodes result as JSON followed by a newline
func (f *JSONFormatter) Render(w io.Writer, result interface{}) error {
	if !renderable(result) {
		return unsupported(FormatJSON, result)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.indent)
	return enc.Encode(result)
}
