// Package output provides output formatting interfaces.
// This package produces human and machine-readable reports for comparison,
// TCO, migration and analysis results.
package output

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"cloud-cost/core/analysis"
	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result. Supported results are
	// *types.ComputeComparison, *types.StorageComparison, *types.TCOResult,
	// *types.MigrationPlan, *analysis.Report, *pricing.Discount,
	// []pricing.RankedQuote and []ProviderInfo.
	Render(w io.Writer, result interface{}) error
}

// Options configure formatter construction
type Options struct {
	// NoColor disables ANSI colors in CLI output
	NoColor bool
}

var constructors = map[Format]func(Options) Formatter{
	FormatCLI:      func(o Options) Formatter { return NewCLIFormatter(o.NoColor) },
	FormatJSON:     func(Options) Formatter { return NewJSONFormatter() },
	FormatYAML:     func(Options) Formatter { return NewYAMLFormatter() },
	FormatMarkdown: func(Options) Formatter { return NewMarkdownFormatter() },
}

// Formats returns the supported format names, sorted
func Formats() []string {
	names := make([]string, 0, len(constructors))
	for f := range constructors {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ParseFormat normalizes a user-supplied format name. "md" and "text"
// are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatCLI, nil
	case "md":
		return FormatMarkdown, nil
	case "text", "table":
		return FormatCLI, nil
	case "yml":
		return FormatYAML, nil
	}
	if _, ok := constructors[f]; !ok {
		return "", cerrors.Validation("format", "unsupported format %q, expected one of %s", s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// New returns the formatter for format
func New(format Format, opts Options) (Formatter, error) {
	ctor, ok := constructors[format]
	if !ok {
		return nil, cerrors.Validation("format", "unsupported format %q", format)
	}
	return ctor(opts), nil
}

// unsupported is returned by formatters for result types they cannot render
func unsupported(f Format, result interface{}) error {
	return cerrors.Newf(cerrors.TypeInternal, "%s formatter cannot render %T", f, result)
}

func renderable(result interface{}) bool {
	switch result.(type) {
	case *types.ComputeComparison, *types.StorageComparison, *types.TCOResult,
		*types.MigrationPlan, *analysis.Report, *pricing.Discount,
		[]pricing.RankedQuote, []ProviderInfo:
		v := reflect.ValueOf(result)
		return v.Kind() != reflect.Ptr || !v.IsNil()
	}
	return false
}

// errWriter remembers the first write error so renderers can write freely
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func (e *errWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e, format, args...)
}
