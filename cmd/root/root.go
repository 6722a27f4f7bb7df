// Package root holds the pomodoro command tree.
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pomodoro/internal/ui/console"
)

const (
	appName = "Pomodoro"
	appID   = "com.pomodoro.app"
	Version = "1.0.0"
)

type options struct {
	store     string
	configDir string
	debug     bool
	noSound   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "pomodoro",
		Short:         "Pomodoro timer with a catch-the-pig break game",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.debug)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runGUI(opts, logger)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.store, "store", storeYAML, "Settings backend: yaml or fyne")
	flags.StringVar(&opts.configDir, "config-dir", "", "Directory holding settings.yaml (default: user config dir)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.noSound, "no-sound", false, "Disable the end-of-period chime")

	cmd.AddCommand(
		newStatusCmd(opts),
		newResetCyclesCmd(opts),
	)
	return cmd
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.Bad.Render(console.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("pomodoro"), nil
}
