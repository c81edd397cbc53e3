package lox

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// LineReader is the line-editing surface the REPL needs; *liner.State
// satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

const replHelp = `Enter one expression per line.
  :help    Show this help
  :quit    Exit the REPL
`

// REPL reads one expression per line and runs it. A syntax error on one
// line does not affect the next.
type REPL struct {
	Runner *Runner
	Reader LineReader
	Out    io.Writer
	Prompt string
}

// Loop runs until the input ends or the user quits.
func (r *REPL) Loop() error {
	for {
		line, err := r.Reader.Prompt(r.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(r.Out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case ":quit", ":exit":
			return nil
		case ":help":
			_, _ = fmt.Fprint(r.Out, replHelp)
			continue
		}

		r.Reader.AppendHistory(line)
		if err := r.Runner.Run(line); err != nil && !errors.Is(err, ErrSyntax) {
			return err
		}
		r.Runner.Reset()
	}
}
