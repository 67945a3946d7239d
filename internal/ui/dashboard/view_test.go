package dashboard

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtodo/internal/app"
	"moodtodo/internal/core/audio"
	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/model"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/core/tasks"
	"moodtodo/internal/session"
	"moodtodo/internal/testutil"
)

func newTestView(t *testing.T) (*View, *app.App) {
	t.Helper()
	test.NewTempApp(t)

	coordinator := audio.NewCoordinator(testutil.NewFakeBackend(), audio.Options{})
	coordinator.Preload(context.Background())
	t.Cleanup(coordinator.Close)

	store := tasks.NewStore()
	require.NoError(t, store.Seed())
	application := app.New(app.Dependencies{
		Audio:    coordinator,
		Timer:    countdown.New(model.DefaultTimerConfig(), countdown.Config{TickInterval: time.Hour}, coordinator),
		Tasks:    store,
		Sessions: session.NewStore(t.TempDir(), nil),
	})
	return New(application, Callbacks{}, nil), application
}

func TestViewShowsSeededStats(t *testing.T) {
	view, _ := newTestView(t)

	assert.Len(t, view.visible, 4)
	assert.Equal(t, "4\nTotal", view.statsTotal.Text)
	assert.Equal(t, "1\nDone ✅", view.statsDone.Text)
	assert.Equal(t, "25% Complete · 3 to go", view.progressText.Text)
	assert.Equal(t, "Hello, Cutie! 👋", view.greeting.Text)
}

func TestViewAddTaskClearsInput(t *testing.T) {
	view, application := newTestView(t)

	view.category = tasks.CategoryWork
	view.input.SetText("Write report")
	view.addTask()

	assert.Empty(t, view.input.Text)
	assert.Len(t, view.visible, 5)
	assert.Equal(t, tasks.CategoryWork, application.Tasks().List()[4].Category)

	view.addTask()
	assert.Len(t, view.visible, 5)
}

func TestViewToggleCelebratesAndLocksMoods(t *testing.T) {
	view, application := newTestView(t)
	celebrations := 0
	application.SetCelebrationListener(func(app.CelebrationReason) { celebrations++ })

	view.filter = tasks.FilterActive
	view.RefreshTasks()
	view.toggleTask(view.visible[0].ID)
	view.ApplyAudio(application.Audio().State())

	assert.Equal(t, 1, celebrations)
	assert.Len(t, view.visible, 2)
	assert.True(t, view.moodButtons[mood.Relaxed].Disabled())
	assert.Equal(t, "🎉 Celebration in progress!", view.subtitle.Text)

	view.changeMood(mood.Relaxed)
	assert.Equal(t, mood.Happy, application.Mood())

	application.CloseCelebration()
	view.ApplyAudio(application.Audio().State())
	view.changeMood(mood.Relaxed)
	assert.Equal(t, mood.Relaxed, application.Mood())
	assert.Equal(t, mood.ThemeFor(mood.Relaxed).Color, view.background.FillColor)
}

func TestViewTimerControls(t *testing.T) {
	view, application := newTestView(t)

	test.Tap(view.kindButtons[countdown.KindShortBreak])
	view.ApplyTimer(countdown.Event{Kind: application.Timer().Kind(), Remaining: application.Timer().Remaining()})
	assert.Equal(t, "05:00", view.timerLabel.Text)

	test.Tap(view.startButton)
	assert.True(t, application.Timer().Running())
	view.ApplyTimer(countdown.Event{Kind: countdown.KindShortBreak, Running: true, Remaining: application.Timer().Remaining()})
	assert.Equal(t, "Pause ⏸️", view.startButton.Text)

	test.Tap(view.startButton)
	assert.False(t, application.Timer().Running())
}
