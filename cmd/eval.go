package cmd

import (
	"errors"
	"fmt"

	"github.com/itsmostafa/gocalc/internal/calc"
	"github.com/itsmostafa/gocalc/internal/repl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [statement...]",
	Short: "Evaluate statements without an interactive prompt",
	Long: `Evaluate each argument as one line, in order, sharing variables between them.
With no arguments, lines are read from stdin. The exit status is non-zero if
any statement was rejected.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(engine *calc.Engine, log logrus.FieldLogger) error {
			r := repl.New(engine, repl.Config{
				Output:  cmd.OutOrStdout(),
				NoColor: noColor,
				Logger:  log,
			})

			if len(args) == 0 {
				if err := r.Run(cmd.InOrStdin()); err != nil {
					return err
				}
			} else {
				for _, line := range args {
					if err := r.OneShot(line); err != nil {
						if errors.Is(err, repl.ErrExit) {
							break
						}
						return err
					}
				}
			}

			if n := r.Failures(); n > 0 {
				return fmt.Errorf("statements rejected: %d", n)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
