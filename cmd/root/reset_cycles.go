package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pomodoro/internal/storage"
	"pomodoro/internal/ui/console"
)

func newResetCyclesCmd(opts *options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset-cycles",
		Short: "Set the completed pomodoro count to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset cycles without --yes")
			}
			logger := zap.NewNop()
			kv, _, err := openStore(opts, nil, logger)
			if err != nil {
				return err
			}
			if err := storage.NewSettings(kv, logger).SaveCycles(0); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), console.Good.Render(console.IconDone+" Completed pomodoros reset to 0"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
