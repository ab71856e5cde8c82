package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/itsmostafa/gocalc/internal/calc"
	"github.com/itsmostafa/gocalc/internal/repl"
	"github.com/itsmostafa/gocalc/internal/version"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var historyPath string
var statePath string
var debug bool
var noColor bool

var rootCmd = &cobra.Command{
	Use:   "gocalc",
	Short: "Interactive integer calculator with variables",
	Long: `gocalc evaluates integer arithmetic with + - * / ^ and brackets, and keeps
variables for the rest of the session.

  n = 3        assign a literal
  m = n        copy a variable
  m            print a variable
  (n + 1) ^ 2  evaluate an expression

Input piped on stdin is processed line by line without a prompt.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(engine *calc.Engine, log logrus.FieldLogger) error {
			r := repl.New(engine, repl.Config{
				Output:      cmd.OutOrStdout(),
				Banner:      version.Banner(),
				Prompt:      "> ",
				HistoryPath: historyPath,
				NoColor:     noColor,
				Logger:      log,
			})

			fd := os.Stdin.Fd()
			if cmd.InOrStdin() == os.Stdin && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
				return r.Loop()
			}
			return r.Run(cmd.InOrStdin())
		})
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gocalc %s\n", version.String()))

	// History path with env var fallback
	defaultHistory := os.Getenv("GOCALC_HISTORY")
	if defaultHistory == "" {
		if home, err := os.UserHomeDir(); err == nil {
			defaultHistory = filepath.Join(home, ".gocalc_history")
		}
	}
	rootCmd.Flags().StringVar(&historyPath, "history", defaultHistory, "File for interactive line history (empty disables history)")

	rootCmd.PersistentFlags().StringVar(&statePath, "state", os.Getenv("GOCALC_STATE"), "JSON file to load variables from and save them to on exit")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log evaluation traces to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
