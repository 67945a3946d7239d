package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtodo/internal/core/audio"
	"moodtodo/internal/core/model"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/testutil"
)

type fakeMusic struct {
	muted       bool
	celebrating bool
	played      []mood.Mood
	pauses      int
	stops       int
}

func (music *fakeMusic) PlayMood(value mood.Mood) { music.played = append(music.played, value) }
func (music *fakeMusic) PauseBackground()         { music.pauses++ }
func (music *fakeMusic) StopBackground()          { music.stops++ }
func (music *fakeMusic) IsMuted() bool            { return music.muted }
func (music *fakeMusic) IsCelebrating() bool      { return music.celebrating }

func newTestTimer(config model.TimerConfig, music MusicController) *Timer {
	return New(config, Config{TickInterval: time.Hour}, music)
}

func tickN(timer *Timer, n int) {
	for i := 0; i < n; i++ {
		timer.tick(time.Now())
	}
}

func TestNewTimerDefaults(t *testing.T) {
	timer := newTestTimer(model.DefaultTimerConfig(), nil)

	assert.Equal(t, KindPomodoro, timer.Kind())
	assert.Equal(t, 25*time.Minute, timer.Remaining())
	assert.False(t, timer.Running())
}

func TestCountdownCompletesOnce(t *testing.T) {
	timer := newTestTimer(model.TimerConfig{Pomodoro: 5 * time.Second}, nil)
	fired := 0
	timer.SetOnComplete(func() { fired++ })

	timer.Start()
	require.True(t, timer.Running())

	tickN(timer, 4)
	assert.Equal(t, time.Second, timer.Remaining())
	assert.Equal(t, 0, fired)

	tickN(timer, 1)
	assert.False(t, timer.Running())
	assert.Equal(t, time.Duration(0), timer.Remaining())
	assert.Equal(t, 1, fired)

	tickN(timer, 3)
	assert.Equal(t, 1, fired)
}

func TestStartAtZeroIsNoop(t *testing.T) {
	timer := newTestTimer(model.TimerConfig{Pomodoro: time.Second}, nil)
	timer.Start()
	tickN(timer, 1)

	timer.Start()
	assert.False(t, timer.Running())
}

func TestTicksIgnoredWhilePaused(t *testing.T) {
	music := &fakeMusic{}
	timer := newTestTimer(model.TimerConfig{Pomodoro: 10 * time.Second}, music)

	timer.Start()
	tickN(timer, 2)
	timer.Pause()
	tickN(timer, 5)

	assert.Equal(t, 8*time.Second, timer.Remaining())
	assert.Equal(t, 1, music.pauses)

	timer.Pause()
	assert.Equal(t, 1, music.pauses)
}

func TestStartPlaysMoodMusic(t *testing.T) {
	music := &fakeMusic{}
	timer := newTestTimer(model.DefaultTimerConfig(), music)
	timer.SetMood(mood.Focused)

	timer.Start()
	timer.Start()
	assert.Equal(t, []mood.Mood{mood.Focused}, music.played)
}

func TestStartSkipsMusicWhenMutedOrCelebrating(t *testing.T) {
	music := &fakeMusic{muted: true}
	timer := newTestTimer(model.DefaultTimerConfig(), music)
	timer.Start()
	timer.Pause()

	music.muted = false
	music.celebrating = true
	timer.Start()
	timer.Pause()

	assert.Empty(t, music.played)
	assert.Equal(t, 1, music.pauses)
}

func TestResetRestoresDurationAndStopsMusic(t *testing.T) {
	music := &fakeMusic{}
	timer := newTestTimer(model.DefaultTimerConfig(), music)
	timer.SelectKind(KindLongBreak)
	timer.Start()
	tickN(timer, 30)

	timer.Reset()
	assert.False(t, timer.Running())
	assert.Equal(t, 15*time.Minute, timer.Remaining())
	assert.Equal(t, 2, music.stops)
}

func TestSelectKindUnknownFallsBack(t *testing.T) {
	timer := newTestTimer(model.DefaultTimerConfig(), nil)
	timer.SelectKind(KindShortBreak)
	timer.SelectKind(Kind("nap"))

	assert.Equal(t, KindPomodoro, timer.Kind())
	assert.Equal(t, 25*time.Minute, timer.Remaining())
}

func TestUpdateConfigAppliesWhenStopped(t *testing.T) {
	timer := newTestTimer(model.DefaultTimerConfig(), nil)
	timer.UpdateConfig(model.TimerConfig{Pomodoro: 50 * time.Minute})

	assert.Equal(t, 50*time.Minute, timer.Remaining())

	timer.Start()
	tickN(timer, 1)
	timer.UpdateConfig(model.TimerConfig{Pomodoro: 10 * time.Minute})
	assert.Equal(t, 50*time.Minute-time.Second, timer.Remaining())
}

func TestSubscribeReceivesProgressAndCompletion(t *testing.T) {
	timer := newTestTimer(model.TimerConfig{Pomodoro: 2 * time.Second}, nil)
	events := timer.Subscribe(8)

	timer.Start()
	tickN(timer, 2)

	started := <-events
	assert.Equal(t, EventStateChange, started.Type)
	assert.True(t, started.Running)

	progress := <-events
	assert.Equal(t, EventProgress, progress.Type)
	assert.Equal(t, time.Second, progress.Remaining)
	assert.InDelta(t, 0.5, progress.Progress, 0.001)

	complete := <-events
	assert.Equal(t, EventComplete, complete.Type)
	assert.False(t, complete.Running)

	timer.Stop()
	_, open := <-events
	assert.False(t, open)
}

func TestShortBreakCompletionStartsCelebration(t *testing.T) {
	backend := testutil.NewFakeBackend()
	coordinator := audio.NewCoordinator(backend, audio.Options{})
	coordinator.Preload(context.Background())
	t.Cleanup(coordinator.Close)

	timer := newTestTimer(model.DefaultTimerConfig(), coordinator)
	fired := 0
	timer.SetOnComplete(func() {
		fired++
		coordinator.PlayCelebration(false)
	})

	timer.SelectKind(KindShortBreak)
	assert.Equal(t, 300*time.Second, timer.Remaining())

	timer.Start()
	require.True(t, timer.Running())
	assert.Equal(t, audio.PhaseBackgroundPlaying, coordinator.State().Phase)

	tickN(timer, 300)
	assert.False(t, timer.Running())
	assert.Equal(t, time.Duration(0), timer.Remaining())
	assert.Equal(t, 1, fired)
	assert.Equal(t, audio.PhaseCelebration, coordinator.State().Phase)
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "25:00", FormatRemaining(25*time.Minute))
	assert.Equal(t, "04:05", FormatRemaining(4*time.Minute+5*time.Second))
	assert.Equal(t, "00:00", FormatRemaining(-time.Second))
}

func TestStartTickingAdvancesCountdown(t *testing.T) {
	timer := New(model.TimerConfig{Pomodoro: 2 * time.Second}, Config{TickInterval: 5 * time.Millisecond}, nil)
	done := make(chan struct{})
	timer.SetOnComplete(func() { close(done) })

	timer.StartTicking()
	defer timer.Stop()
	timer.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not complete")
	}
	assert.False(t, timer.Running())
}

func TestTickLoopRestartsAfterStop(t *testing.T) {
	timer := New(model.TimerConfig{Pomodoro: 2 * time.Second}, Config{TickInterval: 5 * time.Millisecond}, nil)
	done := make(chan struct{})
	timer.SetOnComplete(func() { close(done) })

	timer.StartTicking()
	timer.Stop()

	timer.StartTicking()
	defer timer.Stop()
	events := timer.Subscribe(4)
	timer.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not complete after restarting the tick loop")
	}
	assert.Zero(t, timer.Remaining())

	timer.Stop()
	for range events {
	}
}
