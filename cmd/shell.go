package main

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"moodtodo/internal/app"
	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/platform"
	"moodtodo/internal/session"
	"moodtodo/internal/storage"
	"moodtodo/internal/ui/animation"
	"moodtodo/internal/ui/auth"
	"moodtodo/internal/ui/celebration"
	"moodtodo/internal/ui/dashboard"
	"moodtodo/internal/ui/preferences"
	"moodtodo/internal/ui/tray"
	"moodtodo/resources"
)

type shellDeps struct {
	app       *app.App
	loader    *resources.Loader
	platform  platform.Service
	guard     *platform.InstanceGuard
	configDir string
	settings  preferences.Settings
	logger    *slog.Logger
}

// appShell owns the fyne windows and routes between screens. All fields are
// touched on the UI goroutine only.
type appShell struct {
	shellDeps
	fyneApp     fyne.App
	window      fyne.Window
	overlay     *celebration.Window
	prefs       *preferences.Window
	trayManager *tray.Manager
	dashboard   *dashboard.View
	cancelView  context.CancelFunc
}

func newShell(deps shellDeps) *appShell {
	fyneApp := fyneapp.NewWithID(appID)
	if icon, err := deps.loader.Resource(resources.IconPath); err == nil {
		fyneApp.SetIcon(icon)
	} else {
		deps.logger.Debug("no app icon", "error", err)
		fyneApp.SetIcon(theme.ListIcon())
	}

	shell := &appShell{shellDeps: deps, fyneApp: fyneApp}
	shell.window = fyneApp.NewWindow(appName)
	shell.window.Resize(fyne.NewSize(980, 720))

	shell.overlay = celebration.New(fyneApp, animation.DefaultConfig(), deps.app.CloseCelebration)
	deps.app.SetCelebrationListener(shell.overlay.Show)

	shell.prefs = preferences.New(fyneApp, deps.settings, shell.applySettings)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		shell.trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        shell.window.Show,
			OnToggleTimer: shell.toggleTimer,
			OnToggleMute:  func() { shell.persistMute(deps.app.ToggleMute()) },
			OnPreferences: shell.prefs.Show,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
		shell.trayManager.SetMuted(deps.app.Audio().IsMuted())
		shell.window.SetCloseIntercept(shell.window.Hide)
	}
	shell.window.SetMaster()

	return shell
}

func (shell *appShell) run(ctx context.Context) {
	timerEvents := shell.app.Timer().Subscribe(16)
	go func() {
		for event := range timerEvents {
			fyne.Do(func() { shell.onTimerEvent(event) })
		}
	}()

	audioEvents := shell.app.Audio().Subscribe(16)
	go func() {
		for snapshot := range audioEvents {
			fyne.Do(func() {
				if shell.dashboard != nil {
					shell.dashboard.ApplyAudio(snapshot)
				}
				if shell.trayManager != nil {
					shell.trayManager.SetMuted(snapshot.Muted)
				}
			})
		}
	}()

	shell.guard.Serve(func() {
		fyne.Do(func() {
			shell.window.Show()
			shell.window.RequestFocus()
		})
	})

	go func() {
		<-ctx.Done()
		fyne.Do(shell.fyneApp.Quit)
	}()

	shell.show(shell.app.InitialScreen())
	shell.window.Show()
	shell.fyneApp.Run()
}

func (shell *appShell) show(screen session.Screen) {
	if shell.cancelView != nil {
		shell.cancelView()
		shell.cancelView = nil
	}
	shell.dashboard = nil

	callbacks := auth.Callbacks{
		OnLogin:    shell.app.Login,
		OnSignup:   shell.app.Signup,
		OnNavigate: shell.show,
	}

	switch screen {
	case session.ScreenLogin:
		shell.window.SetContent(auth.Login(callbacks))
	case session.ScreenSignup:
		shell.window.SetContent(auth.Signup(callbacks))
	case session.ScreenDashboard:
		shell.app.EnterDashboard()
		shell.dashboard = dashboard.New(shell.app, dashboard.Callbacks{
			OnLogout:      shell.logout,
			OnPreferences: shell.prefs.Show,
			OnMoodChanged: shell.persistMood,
			OnKindChanged: shell.persistKind,
			OnMuteChanged: shell.persistMute,
		}, shell.logger)
		shell.window.SetContent(shell.dashboard.Content())
	default:
		ctx, cancel := context.WithCancel(context.Background())
		shell.cancelView = cancel
		shell.window.SetContent(auth.Splash(ctx, callbacks))
	}
	shell.logger.Debug("screen", "name", screen)
}

func (shell *appShell) logout() {
	next, err := shell.app.Logout()
	if err != nil {
		shell.logger.Warn("logout", "error", err)
	}
	shell.overlay.Close()
	shell.show(next)
}

func (shell *appShell) toggleTimer() {
	timer := shell.app.Timer()
	if timer.Running() {
		timer.Pause()
		return
	}
	timer.Start()
}

func (shell *appShell) onTimerEvent(event countdown.Event) {
	if shell.dashboard != nil {
		shell.dashboard.ApplyTimer(event)
	}
	if shell.trayManager != nil {
		shell.trayManager.SetStatus(countdown.FormatRemaining(event.Remaining))
		shell.trayManager.SetRunning(event.Running)
	}
}

func (shell *appShell) applySettings(updated preferences.Settings) {
	previous := shell.settings
	shell.settings = updated

	shell.app.Timer().UpdateConfig(updated.TimerConfig())
	shell.app.SetVolume(updated.Volume)
	if shell.app.Audio().IsMuted() != updated.Muted {
		shell.app.ToggleMute()
	}
	if previous.LaunchAtLogin != updated.LaunchAtLogin {
		if err := platform.SyncAutostart(shell.platform, appName, updated.LaunchAtLogin); err != nil {
			shell.logger.Warn("update launch at login", "error", err)
		}
	}
	shell.save()
}

func (shell *appShell) persistMood(value mood.Mood) {
	shell.settings.Mood = value
	shell.save()
}

func (shell *appShell) persistKind(kind countdown.Kind) {
	shell.settings.TimerKind = kind
	shell.save()
}

func (shell *appShell) persistMute(muted bool) {
	shell.settings.Muted = muted
	shell.save()
}

func (shell *appShell) save() {
	if err := storage.SaveSettings(shell.configDir, shell.settings); err != nil {
		shell.logger.Warn("save settings", "error", err)
	}
	shell.prefs.UpdateSettings(shell.settings)
}
