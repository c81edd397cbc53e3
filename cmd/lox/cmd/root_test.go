package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/chidiwilliams/lox/lox"
)

// resetFlags puts every flag back to its default so table cases do not
// leak values into each other through the shared command tree.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Fatalf("reset --%s: %v", f.Name, err)
		}
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	rootCmd.Flags().VisitAll(reset)
	for _, sub := range rootCmd.Commands() {
		sub.Flags().VisitAll(reset)
	}
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	resetFlags(t)

	stdOut, stdErr := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(stdOut)
	rootCmd.SetErr(stdErr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code := Execute()
	return code, stdOut.String(), stdErr.String()
}

func TestExecute(t *testing.T) {
	t.Setenv("LOX_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	script := filepath.Join(dir, "bad.lox")
	if err := os.WriteFile(script, []byte("1 +\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name   string
		args   []string
		code   int
		stdOut string
		stdErr string
	}{
		{"too many scripts", []string{"a", "b"}, lox.ExitUsage, "", "usage error"},
		{"repl takes no arguments", []string{"repl", "x"}, lox.ExitUsage, "", "usage error"},
		{"tokens takes one script", []string{"tokens", "a", "b"}, lox.ExitUsage, "", "usage error"},
		{"unknown flag", []string{"ast", "-e", "1", "--bogus"}, lox.ExitUsage, "", "usage error"},
		{"unknown format", []string{"ast", "-e", "1", "--format", "json"}, lox.ExitUsage, "", `unknown output format "json"`},
		{"syntax error", []string{"ast", "-e", "("}, lox.ExitSyntax, "", "[line 1] Error at '': Expect expression.\n"},
		{"expression", []string{"ast", "-e", "1+2"}, lox.ExitOK, "(+ 1 2)\n", ""},
		{"text format", []string{"ast", "-e", "!true", "--format", "text"}, lox.ExitOK, "(! true)\n", ""},
		{"tokens", []string{"tokens", "-e", "nil"}, lox.ExitOK, "NIL nil\nEOF \n", ""},
		{"script with a syntax error", []string{script}, lox.ExitSyntax, "", "[line 2] Error at '': Expect expression.\n"},
		{"missing script", []string{filepath.Join(dir, "missing.lox")}, lox.ExitError, "", "read script"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdOut, stdErr := execute(t, tt.args...)
			if code != tt.code {
				t.Fatalf("exit code: got %d, expected %d (stderr %q)", code, tt.code, stdErr)
			}
			if stdOut != tt.stdOut {
				t.Fatalf("stdOut: got %q, expected %q", stdOut, tt.stdOut)
			}
			if !strings.Contains(stdErr, tt.stdErr) {
				t.Fatalf("stdErr: got %q, expected it to contain %q", stdErr, tt.stdErr)
			}
		})
	}
}

func TestExecute_Color(t *testing.T) {
	t.Setenv("LOX_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	if code, _, stdErr := execute(t, "ast", "-e", "(", "--color"); code != lox.ExitSyntax {
		t.Fatalf("exit code: got %d, expected %d (stderr %q)", code, lox.ExitSyntax, stdErr)
	}
	if !cfg.Output.Color {
		t.Fatalf("expected --color to enable coloured diagnostics")
	}

	if code, _, _ := execute(t, "ast", "-e", "("); code != lox.ExitSyntax {
		t.Fatalf("exit code: got %d, expected %d", code, lox.ExitSyntax)
	}
	if cfg.Output.Color {
		t.Fatalf("expected colour to stay off without --color")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore cwd %s: %v", old, err)
		}
	})
}
