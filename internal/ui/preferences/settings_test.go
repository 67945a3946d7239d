package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/mood"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, 25*time.Minute, settings.TimerConfig().Pomodoro)
	assert.Equal(t, 5*time.Minute, settings.TimerConfig().ShortBreak)
	assert.Equal(t, 15*time.Minute, settings.TimerConfig().LongBreak)
	assert.Equal(t, countdown.KindPomodoro, settings.TimerKind)
	assert.Equal(t, mood.Happy, settings.Mood)
	assert.Equal(t, 1.0, settings.AudioConfig().Volume)
	assert.False(t, settings.AudioConfig().Muted)
}

func TestApplyForm(t *testing.T) {
	settings := Apply(DefaultSettings(), Form{
		Pomodoro:      " 50 ",
		ShortBreak:    "abc",
		LongBreak:     "-3",
		VolumePercent: 40,
		Muted:         true,
		LaunchAtLogin: true,
	})

	assert.Equal(t, 50*time.Minute, settings.Pomodoro)
	assert.Equal(t, 5*time.Minute, settings.ShortBreak)
	assert.Equal(t, 15*time.Minute, settings.LongBreak)
	assert.InDelta(t, 0.4, settings.Volume, 0.0001)
	assert.True(t, settings.Muted)
	assert.True(t, settings.LaunchAtLogin)
}

func TestApplyClampsVolume(t *testing.T) {
	assert.Equal(t, 1.0, Apply(DefaultSettings(), Form{VolumePercent: 250}).Volume)
	assert.Equal(t, 0.0, Apply(DefaultSettings(), Form{VolumePercent: -5}).Volume)
}
