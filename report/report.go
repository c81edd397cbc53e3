// Package report implements the syntax-error sink shared by the scanner and
// the parser. Both report entry points funnel into a single rendering routine
// and both set the had-error flag the host uses to pick its exit status.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/chidiwilliams/lox/ast"
)

// Reporter receives syntax errors found while scanning or parsing.
type Reporter interface {
	// Error reports a problem at a raw source line.
	Error(line int, message string)
	// TokenError reports a problem at an offending token.
	TokenError(token ast.Token, message string)
	// HadError reports whether anything was reported since the last Reset.
	HadError() bool
	// Reset clears the had-error flag.
	Reset()
}

// Diagnostic is one reported syntax error.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	return Format(d.Line, d.Where, d.Message)
}

// Format renders a syntax error as "[line N] Error<where>: message".
func Format(line int, where, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
}

// Where locates an error at token.
func Where(token ast.Token) string {
	return " at '" + token.Lexeme + "'"
}

func lineDiagnostic(line int, message string) Diagnostic {
	return Diagnostic{Line: line, Message: message}
}

func tokenDiagnostic(token ast.Token, message string) Diagnostic {
	return Diagnostic{Line: token.Line, Where: Where(token), Message: message}
}

// Diagnostics collects every report in order.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) Error(line int, message string) {
	d.report(lineDiagnostic(line, message))
}

func (d *Diagnostics) TokenError(token ast.Token, message string) {
	d.report(tokenDiagnostic(token, message))
}

func (d *Diagnostics) report(diagnostic Diagnostic) {
	d.items = append(d.items, diagnostic)
}

func (d *Diagnostics) HadError() bool {
	return len(d.items) > 0
}

func (d *Diagnostics) Reset() {
	d.items = nil
}

// Items returns a copy of the collected diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	return append([]Diagnostic(nil), d.items...)
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

// Writer renders each report as a line on an io.Writer, usually stderr.
type Writer struct {
	w        io.Writer
	style    *lipgloss.Style
	hadError bool
}

// NewWriter returns a Writer reporting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WithColor makes the writer style its output for a terminal.
func (r *Writer) WithColor(enabled bool) *Writer {
	if enabled {
		r.style = &errorStyle
	} else {
		r.style = nil
	}
	return r
}

func (r *Writer) Error(line int, message string) {
	r.report(lineDiagnostic(line, message))
}

func (r *Writer) TokenError(token ast.Token, message string) {
	r.report(tokenDiagnostic(token, message))
}

func (r *Writer) report(diagnostic Diagnostic) {
	text := diagnostic.String()
	if r.style != nil {
		text = r.style.Render(text)
	}
	_, _ = fmt.Fprintln(r.w, text)
	r.hadError = true
}

func (r *Writer) HadError() bool { return r.hadError }

func (r *Writer) Reset() { r.hadError = false }

// Multi fans each report out to all of its reporters.
type Multi []Reporter

func (m Multi) Error(line int, message string) {
	for _, r := range m {
		r.Error(line, message)
	}
}

func (m Multi) TokenError(token ast.Token, message string) {
	for _, r := range m {
		r.TokenError(token, message)
	}
}

func (m Multi) HadError() bool {
	for _, r := range m {
		if r.HadError() {
			return true
		}
	}
	return false
}

func (m Multi) Reset() {
	for _, r := range m {
		r.Reset()
	}
}
