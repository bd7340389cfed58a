package cli

import (
	"github.com/spf13/cobra"

	"devruntime/internal/app"
)

func newTUICmd() *cobra.Command {
	overrides := &timerOverrides{}
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Long: `Run the timer in the terminal.

Keys:
  space  pause or resume
  r      reset to zero
  a      acknowledge the trophy
  q      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := timerOptions(cmd, overrides)
			if err != nil {
				return err
			}
			return app.RunTUI(commandContext(cmd), options, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	overrides.bind(cmd)
	return cmd
}
