package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/chidiwilliams/lox/config"
	"github.com/chidiwilliams/lox/lox"
	"github.com/chidiwilliams/lox/report"
)

var (
	cfgFile string
	verbose bool
	format  string
	color   bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Parse Lox expressions",
	Long: `lox scans and parses a single Lox expression and prints its syntax tree.

With a script path it parses the file and exits with status 65 if any
syntax error was found. Without arguments it starts an interactive prompt.`,
	Args:              usageArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL(cmd)
		}
		return newRunner(cmd).RunFile(args[0])
	},
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, lox.ErrSyntax) {
		// syntax errors have already been reported
		fmt.Fprintf(rootCmd.ErrOrStderr(), "lox: %v\n", err)
	}
	return lox.ExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $LOX_CONFIG or ./lox.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose debug logging")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: sexpr, text or yaml")
	rootCmd.PersistentFlags().BoolVar(&color, "color", false, "colour diagnostics")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", lox.ErrUsage, err)
	})
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = strings.ToLower(format)
		if err := config.ValidateFormat(cfg.Output.Format); err != nil {
			return fmt.Errorf("%w: %v", lox.ErrUsage, err)
		}
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = color
	}

	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	logger.Debug("config loaded", "format", cfg.Output.Format, "command", cmd.Name())

	return nil
}

func newRunner(cmd *cobra.Command) *lox.Runner {
	reporter := report.NewWriter(cmd.ErrOrStderr()).WithColor(cfg.Output.Color)
	return lox.NewRunner(cmd.OutOrStdout(), reporter,
		lox.WithFormat(cfg.Output.Format),
		lox.WithLogger(logger),
	)
}

// usageArgs accepts at most one script argument.
func usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: %s", lox.ErrUsage, cmd.UseLine())
	}
	return nil
}

// noArgs rejects any positional argument.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s takes no arguments", lox.ErrUsage, cmd.CommandPath())
	}
	return nil
}

// readSource returns the -e snippet, the named file, or stdin.
func readSource(cmd *cobra.Command, expr string, args []string) (string, error) {
	if expr != "" {
		return expr, nil
	}
	if len(args) == 1 {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read script: %w", err)
		}
		return string(source), nil
	}

	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(source), nil
}
