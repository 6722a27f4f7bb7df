package root

import (
	"fmt"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

const (
	storeYAML = "yaml"
	storeFyne = "fyne"
)

// openYAML opens settings.yaml in the configured directory.
// A corrupt file is logged and replaced on the next write.
func openYAML(opts *options, logger *zap.Logger) (*storage.YAMLFile, error) {
	dir := opts.configDir
	if dir == "" {
		resolved, err := platform.ConfigDir(appName)
		if err != nil {
			return nil, err
		}
		dir = resolved
	}

	file, err := storage.OpenYAMLFile(dir)
	if err != nil {
		logger.Warn("settings file unreadable, using defaults", zap.String("path", file.Path()), zap.Error(err))
	}
	return file, nil
}

// openStore picks the KV backend. The YAML file is returned separately so it
// can be watched; it is nil for the fyne backend.
func openStore(opts *options, app fyne.App, logger *zap.Logger) (storage.KV, *storage.YAMLFile, error) {
	switch opts.store {
	case storeYAML:
		file, err := openYAML(opts, logger)
		if err != nil {
			return nil, nil, err
		}
		return file, file, nil
	case storeFyne:
		if app == nil {
			return nil, nil, fmt.Errorf("store %q is only available to the desktop app", opts.store)
		}
		return storage.NewPreferences(app.Preferences()), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want %s or %s)", opts.store, storeYAML, storeFyne)
	}
}
