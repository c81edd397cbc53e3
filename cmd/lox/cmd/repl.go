package cmd

import (
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/chidiwilliams/lox/lox"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	if f, err := os.Open(cfg.REPL.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	repl := &lox.REPL{
		Runner: newRunner(cmd),
		Reader: ln,
		Out:    cmd.OutOrStdout(),
		Prompt: cfg.REPL.Prompt,
	}
	err := repl.Loop()

	// Persist history (best-effort)
	if cfg.REPL.HistoryFile != "" {
		if f, err := os.Create(cfg.REPL.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			logger.Debug("history not saved", "path", cfg.REPL.HistoryFile, "err", err)
		}
	}
	return err
}
