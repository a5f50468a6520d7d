// Package ui - Terminal user interface
// Colored headers, status lines, tables and verdict boxes for CLI reports.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// Color applies color if enabled
func (w *Writer) Color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Line writes text verbatim with a newline
func (w *Writer) Line(text string) {
	fmt.Fprintln(w.out, text)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Line("")
	w.Line(w.Color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Line("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Line(w.Color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Line(w.Color(Green, "✓ ") + fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Line(w.Color(Yellow, "⚠ ") + fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Line(w.Color(Red, "✗ ") + fmt.Sprintf(format, args...))
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	w.Line(w.Color(Blue, "ℹ ") + fmt.Sprintf(format, args...))
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	w.Line(w.Color(Dim, "  "+fmt.Sprintf(format, args...)))
}

// Bullet prints an indented list item
func (w *Writer) Bullet(text string) {
	w.Line("  • " + text)
}

// KeyValue prints an aligned "key: value" line
func (w *Writer) KeyValue(key, value string) {
	w.Line(fmt.Sprintf("  %-22s %s", key+":", value))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := utf8.RuneCountInString(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Line(t.w.Color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Line(strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Line(t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = c + strings.Repeat(" ", t.widths[i]-utf8.RuneCountInString(c))
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}

// Verdict renders the boxed recommendation of a comparison
type Verdict struct {
	w          *Writer
	Title      string
	Winner     string
	Confidence float64
	Level      string
	Lines      []string
}

// NewVerdict creates a verdict box
func (w *Writer) NewVerdict(title string) *Verdict {
	return &Verdict{w: w, Title: title}
}

// Render prints the verdict
func (v *Verdict) Render() {
	v.w.Header(v.Title)

	const inner = 40
	v.w.Line(v.w.Color(Bold, "╭"+strings.Repeat("─", inner)+"╮"))
	v.w.Line(v.w.Color(Bold, "│") + v.w.Color(Green, pad("  Recommended: "+v.Winner, inner)) + v.w.Color(Bold, "│"))
	for _, l := range v.Lines {
		v.w.Line(v.w.Color(Bold, "│") + v.w.Color(Dim, pad("  "+l, inner)) + v.w.Color(Bold, "│"))
	}
	v.w.Line(v.w.Color(Bold, "╰"+strings.Repeat("─", inner)+"╯"))
	v.w.Line("")

	// Confidence indicator
	confColor := Green
	confIcon := "●"
	if v.Confidence < 0.8 {
		confColor = Yellow
		confIcon = "◐"
	}
	if v.Confidence < 0.5 {
		confColor = Red
		confIcon = "○"
	}
	label := fmt.Sprintf("%s Confidence: %.0f%%", confIcon, v.Confidence*100)
	if v.Level != "" {
		label += " (" + v.Level + ")"
	}
	v.w.Line(v.w.Color(confColor, label))
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
