package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders results as YAML documents
type YAMLFormatter struct{}

// NewYAMLFormatter creates a YAML formatter
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format returns the format type
func (f *YAMLFormatter) Format() Format { return FormatYAML }

// Render encodes result as a single YAML document
func (f *YAMLFormatter) Render(w io.Writer, result interface{}) error {
	if !renderable(result) {
		return unsupported(FormatYAML, result)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}
