// Package app holds the dashboard logic shared by every window: it owns the
// task list, the countdown and the audio coordinator and keeps them in step.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"moodtodo/internal/core/audio"
	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/core/tasks"
	"moodtodo/internal/session"
)

// ErrCelebrationInProgress is returned when the mood is changed while the
// celebration sound holds the output.
var ErrCelebrationInProgress = errors.New("celebration in progress")

// CelebrationListener is told when a celebration should be shown.
type CelebrationListener func(reason CelebrationReason)

// CelebrationReason tells the presentation layer what triggered a celebration.
type CelebrationReason string

const (
	ReasonTaskCompleted  CelebrationReason = "task_completed"
	ReasonTimerCompleted CelebrationReason = "timer_completed"
)

// Dependencies are the collaborators of App.
type Dependencies struct {
	Audio    *audio.Coordinator
	Timer    *countdown.Timer
	Tasks    *tasks.Store
	Sessions *session.Store
	Logger   *slog.Logger
}

// App is the application root's state: the signed-in user, the current mood
// and the wiring between task completion, the timer and the audio.
type App struct {
	mu        sync.Mutex
	audio     *audio.Coordinator
	timer     *countdown.Timer
	tasks     *tasks.Store
	sessions  *session.Store
	logger    *slog.Logger
	mood      mood.Mood
	user      session.Session
	signedIn  bool
	celebrate CelebrationListener
}

// New wires the dependencies together and restores a saved session.
func New(deps Dependencies) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	application := &App{
		audio:    deps.Audio,
		timer:    deps.Timer,
		tasks:    deps.Tasks,
		sessions: deps.Sessions,
		logger:   logger.With("component", "app"),
		mood:     mood.Default,
	}
	if user, ok := deps.Sessions.Load(); ok {
		application.user = user
		application.signedIn = true
	}
	deps.Timer.SetOnComplete(application.TimerCompleted)
	return application
}

// SetCelebrationListener registers the presentation callback.
func (application *App) SetCelebrationListener(listener CelebrationListener) {
	application.mu.Lock()
	defer application.mu.Unlock()
	application.celebrate = listener
}

// Tasks exposes the task list for rendering.
func (application *App) Tasks() *tasks.Store {
	return application.tasks
}

// Timer exposes the countdown for rendering.
func (application *App) Timer() *countdown.Timer {
	return application.timer
}

// Audio exposes the coordinator for rendering.
func (application *App) Audio() *audio.Coordinator {
	return application.audio
}

// InitialScreen returns the screen shown at startup.
func (application *App) InitialScreen() session.Screen {
	application.mu.Lock()
	defer application.mu.Unlock()
	if application.signedIn {
		return session.ScreenDashboard
	}
	return session.ScreenSplash
}

// User returns the signed-in user.
func (application *App) User() (session.Session, bool) {
	application.mu.Lock()
	defer application.mu.Unlock()
	return application.user, application.signedIn
}

// Login signs in with any credentials.
func (application *App) Login(email, password string) error {
	user, err := application.sessions.Login(email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	application.setUser(user)
	return nil
}

// Signup registers with any credentials.
func (application *App) Signup(name, email, password string) error {
	user, err := application.sessions.Signup(name, email, password)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	application.setUser(user)
	return nil
}

// Logout forgets the user, silences the dashboard and returns the screen to
// show next.
func (application *App) Logout() (session.Screen, error) {
	application.mu.Lock()
	application.user = session.Session{}
	application.signedIn = false
	application.mu.Unlock()

	application.timer.Pause()
	application.audio.StopCelebration()
	application.audio.StopBackground()
	if err := application.sessions.Logout(); err != nil {
		return session.ScreenLogin, fmt.Errorf("logout: %w", err)
	}
	return session.ScreenLogin, nil
}

// EnterDashboard starts the mood music for the current mood.
func (application *App) EnterDashboard() {
	application.mu.Lock()
	current := application.mood
	application.mu.Unlock()

	application.timer.SetMood(current)
	if !application.audio.IsCelebrating() {
		application.audio.PlayMood(current)
	}
}

// Mood returns the current mood.
func (application *App) Mood() mood.Mood {
	application.mu.Lock()
	defer application.mu.Unlock()
	return application.mood
}

// SetInitialMood restores a mood without touching the music.
func (application *App) SetInitialMood(value mood.Mood) {
	application.mu.Lock()
	application.mood = mood.Parse(string(value))
	current := application.mood
	application.mu.Unlock()
	application.timer.SetMood(current)
}

// ChangeMood switches theme and music. It is refused while celebrating.
func (application *App) ChangeMood(value mood.Mood) error {
	if application.audio.IsCelebrating() {
		return ErrCelebrationInProgress
	}
	value = mood.Parse(string(value))

	application.mu.Lock()
	application.mood = value
	application.mu.Unlock()

	application.timer.SetMood(value)
	application.audio.PlayMood(value)
	return nil
}

// AddTask adds a task to the list.
func (application *App) AddTask(text string, category tasks.Category) (tasks.Task, error) {
	return application.tasks.Add(text, category)
}

// DeleteTask removes a task from the list.
func (application *App) DeleteTask(id string) error {
	return application.tasks.Delete(id)
}

// ToggleTask flips a task and celebrates a fresh completion.
func (application *App) ToggleTask(id string) (tasks.Task, error) {
	task, completed, err := application.tasks.Toggle(id)
	if err != nil {
		return tasks.Task{}, err
	}
	if completed {
		application.startCelebration(ReasonTaskCompleted)
	}
	return task, nil
}

// TimerCompleted celebrates the end of a countdown.
func (application *App) TimerCompleted() {
	application.logger.Info("timer completed", "kind", application.timer.Kind())
	application.startCelebration(ReasonTimerCompleted)
}

// CloseCelebration dismisses the celebration and stops its sound.
func (application *App) CloseCelebration() {
	application.audio.StopCelebration()
}

// ToggleMute flips the mute flag and returns the new value.
func (application *App) ToggleMute() bool {
	return application.audio.ToggleMute()
}

// SetVolume applies the master volume.
func (application *App) SetVolume(level float64) {
	application.audio.SetVolume(level)
}

// Greeting returns the dashboard header greeting.
func (application *App) Greeting() string {
	user, _ := application.User()
	return fmt.Sprintf("Hello, %s! 👋", user.DisplayName())
}

// StatusLine describes what the speakers are doing.
func (application *App) StatusLine() string {
	state := application.audio.State()
	switch {
	case state.Celebrating:
		return "🎵 Playing celebration"
	case state.Muted:
		return "🔇 Muted"
	default:
		return "🔊 Music on"
	}
}

// TimerStatusLine describes the timer's music underneath the countdown.
func (application *App) TimerStatusLine() string {
	state := application.audio.State()
	switch {
	case state.Celebrating:
		return "🎉 Playing celebration!"
	case state.Muted:
		return "Music is muted"
	case application.timer.Running():
		return fmt.Sprintf("Playing %s music 🎶", application.Mood())
	default:
		return "Music paused"
	}
}

func (application *App) setUser(user session.Session) {
	application.mu.Lock()
	defer application.mu.Unlock()
	application.user = user
	application.signedIn = true
	application.logger.Info("signed in", "user", user.DisplayName())
}

func (application *App) startCelebration(reason CelebrationReason) {
	application.audio.PlayCelebration(false)

	application.mu.Lock()
	listener := application.celebrate
	application.mu.Unlock()

	if listener != nil {
		listener(reason)
	}
}
