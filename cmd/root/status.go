package root

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pomodoro/internal/storage"
	"pomodoro/internal/ui/console"
)

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the saved durations, theme and completed pomodoros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			kv, file, err := openStore(opts, nil, logger)
			if err != nil {
				return err
			}
			settings := storage.NewSettings(kv, logger)

			durations, theme := settings.Load()
			fmt.Fprintln(cmd.OutOrStdout(), console.RenderStatus(console.Status{
				Durations: durations,
				Theme:     theme,
				Cycles:    settings.LoadCycles(),
				Source:    file.Path(),
			}))
			return nil
		},
	}
}
