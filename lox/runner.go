// Package lox is the host around the scanner and parser. It owns the
// had-error state, decides what to print, and maps failures to exit codes.
package lox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chidiwilliams/lox/ast"
	"github.com/chidiwilliams/lox/config"
	"github.com/chidiwilliams/lox/parse"
	"github.com/chidiwilliams/lox/report"
	"github.com/chidiwilliams/lox/scan"
)

// Exit statuses, following sysexits.h.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitUsage  = 64
	ExitSyntax = 65
)

var (
	// ErrSyntax is returned when a run reported at least one syntax error.
	ErrSyntax = errors.New("syntax error")
	// ErrUsage is returned for bad command-line usage.
	ErrUsage = errors.New("usage error")
)

// ExitCode maps an error returned by a Runner to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrSyntax):
		return ExitSyntax
	default:
		return ExitError
	}
}

// Runner scans and parses source text, printing results to stdOut and
// syntax errors to its reporter.
type Runner struct {
	stdOut   io.Writer
	reporter report.Reporter
	format   string
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithFormat sets the output format for parsed expressions.
func WithFormat(format string) Option {
	return func(r *Runner) { r.format = format }
}

// WithLogger sets the debug logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner returns a Runner writing output to stdOut and errors to reporter.
func NewRunner(stdOut io.Writer, reporter report.Reporter, opts ...Option) *Runner {
	r := &Runner{
		stdOut:   stdOut,
		reporter: reporter,
		format:   config.FormatSExpr,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run parses source as a single expression and prints it. Output is
// suppressed and ErrSyntax returned if anything was reported.
func (r *Runner) Run(source string) error {
	tokens := scan.NewScanner(source, r.reporter).ScanTokens()
	r.logger.Debug("scanned", "tokens", len(tokens))

	parser := parse.NewParser(tokens, r.reporter)
	expr, err := parser.Parse()
	if err != nil {
		r.logger.Debug("parse failed", "err", err)
		return ErrSyntax
	}
	if r.reporter.HadError() {
		return ErrSyntax
	}

	if rest := parser.Remaining(); len(rest) > 0 {
		r.logger.Debug("ignoring trailing tokens", "count", len(rest), "first", rest[0].Lexeme, "line", rest[0].Line)
	}

	return r.print(expr)
}

func (r *Runner) print(expr ast.Expr) error {
	switch r.format {
	case config.FormatYAML:
		out, err := yaml.Marshal(ast.Tree(expr))
		if err != nil {
			return fmt.Errorf("encode expression: %w", err)
		}
		_, err = r.stdOut.Write(out)
		return err
	default:
		_, err := fmt.Fprintln(r.stdOut, ast.Printer{}.Print(expr))
		return err
	}
}

type tokenView struct {
	Type    string      `yaml:"type"`
	Lexeme  string      `yaml:"lexeme"`
	Literal interface{} `yaml:"literal,omitempty"`
	Line    int         `yaml:"line"`
}

// Tokens scans source and prints every token, one per line, or as a
// YAML sequence when the runner's format is yaml.
func (r *Runner) Tokens(source string) error {
	tokens := scan.NewScanner(source, r.reporter).ScanTokens()
	if r.reporter.HadError() {
		return ErrSyntax
	}

	if r.format == config.FormatYAML {
		views := make([]tokenView, 0, len(tokens))
		for _, token := range tokens {
			views = append(views, tokenView{
				Type:    token.TokenType.String(),
				Lexeme:  token.Lexeme,
				Literal: token.Literal,
				Line:    token.Line,
			})
		}
		out, err := yaml.Marshal(views)
		if err != nil {
			return fmt.Errorf("encode tokens: %w", err)
		}
		_, err = r.stdOut.Write(out)
		return err
	}

	for _, token := range tokens {
		if _, err := fmt.Fprintln(r.stdOut, token); err != nil {
			return err
		}
	}
	return nil
}

// RunFile runs the whole file at path as one batch.
func (r *Runner) RunFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	r.logger.Debug("running file", "path", path, "bytes", len(source))
	return r.Run(string(source))
}

// Reset clears the had-error state between interactive inputs.
func (r *Runner) Reset() {
	r.reporter.Reset()
}
