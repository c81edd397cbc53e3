package lox

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chidiwilliams/lox/config"
	"github.com/chidiwilliams/lox/report"
)

func Test_Run(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stdOut string
		stdErr string
		err    error
	}{
		// atoms
		{"number", "342.32461932591235", "342.32461932591235\n", "", nil},
		{"string", `"hello world"`, "hello world\n", "", nil},
		{"nil", "nil", "nil\n", "", nil},

		// comments
		{"comment after source", "1 + 1 // hello", "(+ 1 1)\n", "", nil},
		{"comment before source", "// hello\n1 + 1", "(+ 1 1)\n", "", nil},

		// unary and binary operations
		{"arithmetic", "-1 + 2 * 3 - 4 / 5", "(- (+ (- 1) (* 2 3)) (/ 4 5))\n", "", nil},
		{"comparison", "(!true == false) != 1 <= 2", "(!= (group (== (! true) false)) (<= 1 2))\n", "", nil},

		// errors
		{"missing paren", "(1 + 2", "", "[line 1] Error at '': Expect ')' after expression.\n", ErrSyntax},
		{"empty", "", "", "[line 1] Error at '': Expect expression.\n", ErrSyntax},
		{
			"lexical errors are all reported",
			"1 @ 2\n#",
			"",
			"[line 1] Error: Unexpected character.\n[line 2] Error: Unexpected character.\n",
			ErrSyntax,
		},
		{
			"lexical error suppresses output",
			`1 + "open`,
			"",
			"[line 1] Error: Unterminated string.\n[line 1] Error at '': Expect expression.\n",
			ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdOut, stdErr := &bytes.Buffer{}, &bytes.Buffer{}
			r := NewRunner(stdOut, report.NewWriter(stdErr))

			err := r.Run(tt.source)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err: got %v, expected %v", err, tt.err)
			}
			if stdOut.String() != tt.stdOut {
				t.Fatalf("stdOut: got %q, expected %q", stdOut, tt.stdOut)
			}
			if stdErr.String() != tt.stdErr {
				t.Fatalf("stdErr: got %q, expected %q", stdErr, tt.stdErr)
			}
		})
	}
}

func TestRunner_Run_YAML(t *testing.T) {
	stdOut := &bytes.Buffer{}
	r := NewRunner(stdOut, &report.Diagnostics{}, WithFormat(config.FormatYAML))

	if err := r.Run("-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `kind: unary
operator: '-'
line: 1
children:
    - kind: literal
      type: number
      value: "1"
`
	if stdOut.String() != want {
		t.Fatalf("got %q, expected %q", stdOut, want)
	}
}

func TestRunner_Run_YAMLLiteralTypes(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"nil", "kind: literal\ntype: nil\n"},
		{`"nil"`, "kind: literal\ntype: string\nvalue: nil\n"},
		{"1", "kind: literal\ntype: number\nvalue: \"1\"\n"},
		{`"1"`, "kind: literal\ntype: string\nvalue: \"1\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			stdOut := &bytes.Buffer{}
			r := NewRunner(stdOut, &report.Diagnostics{}, WithFormat(config.FormatYAML))

			if err := r.Run(tt.source); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stdOut.String() != tt.want {
				t.Fatalf("got %q, expected %q", stdOut, tt.want)
			}
		})
	}
}

func TestRunner_Tokens(t *testing.T) {
	tests := []struct {
		name   string
		format string
		source string
		want   string
	}{
		{"text", config.FormatText, "(1 >= \"a\")", "LEFT_PAREN (\nNUMBER 1 1\nGREATER_EQUAL >=\nSTRING \"a\" a\nRIGHT_PAREN )\nEOF \n"},
		{"yaml", config.FormatYAML, "nil\n", "- type: NIL\n  lexeme: nil\n  line: 1\n- type: EOF\n  lexeme: \"\"\n  line: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdOut := &bytes.Buffer{}
			r := NewRunner(stdOut, &report.Diagnostics{}, WithFormat(tt.format))

			if err := r.Tokens(tt.source); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stdOut.String() != tt.want {
				t.Fatalf("got %q, expected %q", stdOut, tt.want)
			}
		})
	}
}

func TestRunner_Tokens_Error(t *testing.T) {
	stdOut := &bytes.Buffer{}
	r := NewRunner(stdOut, &report.Diagnostics{})

	if err := r.Tokens("1 ~"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("got %v, expected ErrSyntax", err)
	}
	if stdOut.Len() != 0 {
		t.Fatalf("got %q, expected no output", stdOut)
	}
}

func TestRunner_RunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.lox")
	if err := os.WriteFile(path, []byte("// a comment\n(1 +\n 2)\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	stdOut := &bytes.Buffer{}
	r := NewRunner(stdOut, &report.Diagnostics{})
	if err := r.RunFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdOut.String() != "(group (+ 1 2))\n" {
		t.Fatalf("got %q, expected %q", stdOut, "(group (+ 1 2))\n")
	}

	err := r.RunFile(filepath.Join(t.TempDir(), "missing.lox"))
	if err == nil || ExitCode(err) != ExitError {
		t.Fatalf("got %v, expected a read error", err)
	}
}

func TestRunner_Reset(t *testing.T) {
	diagnostics := &report.Diagnostics{}
	r := NewRunner(&bytes.Buffer{}, diagnostics)

	if err := r.Run("("); !errors.Is(err, ErrSyntax) {
		t.Fatalf("got %v, expected ErrSyntax", err)
	}
	// without a reset the flag would poison the next run
	if err := r.Run("1"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("got %v, expected ErrSyntax before Reset", err)
	}

	r.Reset()
	if err := r.Run("1"); err != nil {
		t.Fatalf("got %v, expected success after Reset", err)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{ErrSyntax, ExitSyntax},
		{ErrUsage, ExitUsage},
		{errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Fatalf("ExitCode(%v): got %d, expected %d", tt.err, got, tt.want)
		}
	}
}
