package app

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtodo/internal/core/audio"
	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/model"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/core/tasks"
	"moodtodo/internal/session"
	"moodtodo/internal/testutil"
)

type testApp struct {
	app      *App
	backend  *testutil.FakeBackend
	sessions *session.Store
	reasons  []CelebrationReason
}

func newTestApp(t *testing.T, dir string) *testApp {
	t.Helper()
	backend := testutil.NewFakeBackend()
	coordinator := audio.NewCoordinator(backend, audio.Options{})
	coordinator.Preload(context.Background())
	t.Cleanup(coordinator.Close)

	timer := countdown.New(model.DefaultTimerConfig(), countdown.Config{TickInterval: time.Hour}, coordinator)
	store := tasks.NewStore()
	require.NoError(t, store.Seed())
	sessions := session.NewStore(dir, nil)

	fixture := &testApp{backend: backend, sessions: sessions}
	fixture.app = New(Dependencies{
		Audio:    coordinator,
		Timer:    timer,
		Tasks:    store,
		Sessions: sessions,
	})
	fixture.app.SetCelebrationListener(func(reason CelebrationReason) {
		fixture.reasons = append(fixture.reasons, reason)
	})
	return fixture
}

func firstActive(t *testing.T, store *tasks.Store) tasks.Task {
	t.Helper()
	active := store.Filter(tasks.FilterActive)
	require.NotEmpty(t, active)
	return active[0]
}

func TestInitialScreenFollowsSession(t *testing.T) {
	dir := t.TempDir()
	fixture := newTestApp(t, dir)
	assert.Equal(t, session.ScreenSplash, fixture.app.InitialScreen())

	require.NoError(t, fixture.app.Login("ann@example.com", "secret"))
	assert.Equal(t, session.ScreenDashboard, fixture.app.InitialScreen())

	restarted := newTestApp(t, dir)
	assert.Equal(t, session.ScreenDashboard, restarted.app.InitialScreen())
	user, ok := restarted.app.User()
	require.True(t, ok)
	assert.Equal(t, "ann@example.com", user.Email)
}

func TestLoginRejectsEmptyEmail(t *testing.T) {
	fixture := newTestApp(t, t.TempDir())

	err := fixture.app.Login("   ", "secret")
	assert.ErrorIs(t, err, session.ErrEmptyCredentials)
	assert.Equal(t, session.ScreenSplash, fixture.app.InitialScreen())
}

func TestGreetingUsesName(t *testing.T) {
	fixture := newTestApp(t, t.TempDir())
	assert.Equal(t, "Hello, Cutie! 👋", fixture.app.Greeting())

	require.NoError(t, fixture.app.Signup("Ann", "ann@example.com", "secret"))
	assert.Equal(t, "Hello, Ann! 👋", fixture.app.Greeting())
}

func TestToggleTaskCelebratesFreshCompletion(t *testing.T) {
	fixture := newTestApp(t, t.TempDir())
	fixture.app.EnterDashboard()
	task := firstActive(t, fixture.app.Tasks())

	toggled, err := fixture.app.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.Equal(t, []CelebrationReason{ReasonTaskCompleted}, fixture.reasons)
	assert.True(t, fixture.app.Audio().IsCelebrating())
	assert.Equal(t, audio.PhaseCelebration, fixture.app.Audio().State().Phase)

	fixture.app.CloseCelebration()
	assert.False(t, fixture.app.Audio().IsCelebrating())
	assert.Equal(t, audio.PhaseBackgroundPlaying, fixture.app.Audio().State().Phase)

	toggled, err = fixture.app.ToggleTask(task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
	assert.Len(t, fixture.reasons, 1)
}

func TestToggleUnknownTask(t *testing.T) {
	fixture := newTestApp(t, t.TempDir())

	_, err := fixture.app.ToggleTask("missing")
	assert.ErrorIs(t, err, tasks.ErrNotFound)
	assert.Empty(t, fixture.reasons)
}

func TestChangeMoodRefusedWhileCelebrating(t *testing.T) {
	fixture := newTestApp(t, t.TempDir())
	fixture.app.EnterDashboard()

	require.NoError(t, fixture.app.ChangeMood(mood.Focused))
	assert.Equal(t, audio.SoundMusic3, fixture.app.Audio().State().ActiveTrack)

	fixture.app.TimerCompleted()
	assert.ErrorIs(t, fixture.app.ChangeMood(mood.Relaxed), ErrCelebrationInProgress)
	assert.Equal(t, mood.Focused, fixture.app.Mood())
	assert.Equal(t, []CelebrationReason{ReasonTimerCompleted}, fixture.reasons)
}

func TestChangeMoodUnknownFallsBack(t *testing.T) {
	fixture := newTestApp(t, t.TempDir())

	require.NoError(t, fixture.app.ChangeMood(mood.Mood("sleepy")))
	assert.Equal(t, mood.Happy, fixture.app.Mood())
}

func TestLogoutSilencesAndForgetsUser(t *testing.T) {
	dir := t.TempDir()
	fixture := newTestApp(t, dir)
	require.NoError(t, fixture.app.Login("ann@example.com", "secret"))
	fixture.app.EnterDashboard()
	fixture.app.Timer().Start()
	task := firstActive(t, fixture.app.Tasks())
	_, err := fixture.app.ToggleTask(task.ID)
	require.NoError(t, err)

	next, err := fixture.app.Logout()
	require.NoError(t, err)
	assert.Equal(t, session.ScreenLogin, next)

	state := fixture.app.Audio().State()
	assert.Equal(t, audio.PhaseIdle, state.Phase)
	assert.Empty(t, fixture.backend.Audible())
	assert.False(t, fixture.app.Timer().Running())
	assert.Equal(t, session.ScreenSplash, fixture.app.InitialScreen())
	_, statErr := os.Stat(fixture.sessions.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestStatusLines(t *testing.T) {
	fixture := newTestApp(t, t.TempDir())
	fixture.app.EnterDashboard()
	assert.Equal(t, "🔊 Music on", fixture.app.StatusLine())
	assert.Equal(t, "Music paused", fixture.app.TimerStatusLine())

	fixture.app.Timer().Start()
	assert.Equal(t, "Playing happy music 🎶", fixture.app.TimerStatusLine())

	assert.True(t, fixture.app.ToggleMute())
	assert.Equal(t, "🔇 Muted", fixture.app.StatusLine())
	assert.Equal(t, "Music is muted", fixture.app.TimerStatusLine())

	assert.False(t, fixture.app.ToggleMute())
	fixture.app.TimerCompleted()
	assert.Equal(t, "🎵 Playing celebration", fixture.app.StatusLine())
	assert.Equal(t, "🎉 Playing celebration!", fixture.app.TimerStatusLine())
}

func TestSetVolumeReachesBackend(t *testing.T) {
	fixture := newTestApp(t, t.TempDir())

	fixture.app.SetVolume(0.3)
	assert.Equal(t, 0.3, fixture.backend.Volume())
}
