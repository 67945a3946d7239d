package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"moodtodo/internal/app"
	"moodtodo/internal/core/audio"
	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/tasks"
	"moodtodo/internal/platform"
	"moodtodo/internal/platform/sound"
	"moodtodo/internal/session"
	"moodtodo/internal/storage"
	"moodtodo/resources"
)

const (
	appName = "Mood Todo"
	appID   = "com.moodtodo.app"
)

type options struct {
	assetsDir string
	configDir string
	debug     bool
	muted     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}
	command := &cobra.Command{
		Use:           "moodtodo",
		Short:         "A mood-themed to-do list with a pomodoro timer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := command.Flags()
	flags.StringVar(&opts.assetsDir, "assets", "assets", "directory containing sounds/ and images/")
	flags.StringVar(&opts.configDir, "config-dir", "", "directory for settings and session (default: user config dir)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.muted, "muted", false, "start with all sounds muted")
	return command
}

func run(ctx context.Context, opts options) error {
	logger := newLogger(opts.debug)
	slog.SetDefault(logger)

	guard, err := platform.AcquireSingleInstance(appID)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("another instance is already running")
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()
	logger.Debug("instance lock held", "address", guard.Address())

	service := platform.NewService()
	configDir := opts.configDir
	if configDir == "" {
		configDir, err = service.AppDataDir("moodtodo")
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
	}

	settings, err := storage.LoadSettings(configDir)
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}
	if opts.muted {
		settings.Muted = true
	}

	loader := resources.Dir(opts.assetsDir)
	if !loader.Exists(audio.Assets[0].Path) {
		logger.Info("sounds not found, running silently", "assets", opts.assetsDir)
	}
	backend := sound.NewBackend(loader, logger)
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Debug("close sound backend", "error", err)
		}
	}()

	audioConfig := settings.AudioConfig()
	coordinator := audio.NewCoordinator(backend, audio.Options{
		Volume: &audioConfig.Volume,
		Logger: logger,
	})
	defer coordinator.Close()
	coordinator.Preload(ctx)
	if audioConfig.Muted {
		coordinator.ToggleMute()
	}

	timer := countdown.New(settings.TimerConfig(), countdown.Config{TickInterval: time.Second}, coordinator)
	timer.SelectKind(settings.TimerKind)
	timer.StartTicking()
	defer timer.Stop()

	store := tasks.NewStore()
	if err := store.Seed(); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}

	application := app.New(app.Dependencies{
		Audio:    coordinator,
		Timer:    timer,
		Tasks:    store,
		Sessions: session.NewStore(configDir, logger),
		Logger:   logger,
	})
	application.SetInitialMood(settings.Mood)

	logger.Debug("starting", "config_dir", configDir, "assets", opts.assetsDir)
	shell := newShell(shellDeps{
		app:       application,
		loader:    loader,
		platform:  service,
		guard:     guard,
		configDir: configDir,
		settings:  settings,
		logger:    logger,
	})
	shell.run(ctx)
	return nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
