package root

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"

	"pomodoro/internal/audio"
	"pomodoro/internal/core/schedule"
	"pomodoro/internal/core/session"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/appearance"
	"pomodoro/internal/ui/dialogs"
	"pomodoro/internal/ui/mainwindow"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

const eventBuffer = 32

func runGUI(opts *options, logger *zap.Logger) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("already running, asked the other instance to show itself", zap.Error(err))
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.Blossom))

	kv, file, err := openStore(opts, fyneApp, logger)
	if err != nil {
		return err
	}
	settings := storage.NewSettings(kv, logger.Named("storage"))

	audioConfig := audio.DefaultConfig()
	audioConfig.Enabled = !opts.noSound
	player := audio.NewPlayer(audioConfig, logger.Named("audio"))

	window := fyneApp.NewWindow(appName)
	prompts := dialogs.New(fyneApp, window)

	controller := session.New(settings, session.Options{
		Scheduler: schedule.NewClock(),
		Alarm:     player,
		Notifier:  prompts,
		Confirmer: prompts,
		Logger:    logger.Named("session"),
	})
	snapshot := controller.Snapshot()
	appearance.Apply(fyneApp, snapshot.Theme)

	// ResetWithPrompt waits for the dialog, so it must not run on the UI goroutine.
	resetWithPrompt := func() {
		go controller.ResetWithPrompt()
	}

	prefsWindow := preferences.New(fyneApp, snapshot.Durations, controller.SaveSettings)
	mainWindow := mainwindow.New(window, snapshot, mainwindow.Callbacks{
		OnToggle:      controller.Toggle,
		OnSwitchMode:  controller.SwitchMode,
		OnReset:       resetWithPrompt,
		OnSettings:    prefsWindow.Show,
		OnToggleTheme: func() { controller.ToggleTheme() },
		OnCatch:       func() { controller.Catch() },
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Icons{
			Running: resources.MustIcon(resources.Blossom),
			Paused:  resources.MustIcon(resources.BlossomPaused),
		}, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnToggle:      controller.Toggle,
			OnReset:       resetWithPrompt,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		window.SetCloseIntercept(window.Hide)
	} else {
		logger.Info("system tray unsupported on this platform")
		window.SetMaster()
	}

	render := func(event session.Event) {
		mainWindow.Render(event.State)
		if trayManager != nil {
			trayManager.Render(event.State)
		}
		switch event.Type {
		case session.EventTheme:
			appearance.Apply(fyneApp, event.State.Theme)
			mainWindow.Render(event.State)
		case session.EventSettings:
			prefsWindow.UpdateDurations(event.State.Durations)
		case session.EventPeriodComplete:
			logger.Info("period complete",
				zap.String("mode", string(event.State.Mode)),
				zap.Int("cycles", event.State.Cycles))
		}
	}

	events := controller.Subscribe(eventBuffer)
	go func() {
		for event := range events {
			fyne.Do(func() {
				render(event)
			})
		}
	}()

	guard.Serve(func() {
		fyne.Do(mainWindow.Show)
	})

	if file != nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		stopWatch := watchSettings(ctx, file, controller, logger.Named("watcher"))
		defer stopWatch()
	}

	controller.Open()
	mainWindow.Show()
	fyneApp.Run()

	prompts.Close()
	controller.Close()
	logger.Info("stopped", zap.Int("cycles", controller.Snapshot().Cycles))
	return nil
}

// watchSettings re-applies settings.yaml whenever it changes on disk.
// The returned func stops watching.
func watchSettings(ctx context.Context, file *storage.YAMLFile, controller *session.Controller, logger *zap.Logger) func() {
	watcher, err := storage.NewWatcher(file.Path(), func() {
		if err := file.Reload(); err != nil {
			logger.Warn("settings file unreadable", zap.String("path", file.Path()), zap.Error(err))
			return
		}
		controller.ReloadSettings()
	}, logger)
	if err != nil {
		logger.Warn("settings watch disabled", zap.Error(err))
		return func() {}
	}
	watcher.Start(ctx)
	return func() {
		_ = watcher.Close()
	}
}
