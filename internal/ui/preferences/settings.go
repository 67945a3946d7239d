package preferences

import (
	"time"

	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/model"
	"moodtodo/internal/core/mood"
)

// Settings defines editable user preferences.
type Settings struct {
	Pomodoro   time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
	TimerKind  countdown.Kind

	Volume float64
	Muted  bool
	Mood   mood.Mood

	LaunchAtLogin bool
}

// DefaultSettings returns default settings for the dashboard.
func DefaultSettings() Settings {
	timer := model.DefaultTimerConfig()
	return Settings{
		Pomodoro:   timer.Pomodoro,
		ShortBreak: timer.ShortBreak,
		LongBreak:  timer.LongBreak,
		TimerKind:  countdown.KindPomodoro,
		Volume:     1,
		Muted:      false,
		Mood:       mood.Default,
	}
}

// TimerConfig converts settings to the countdown durations.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Pomodoro:   settings.Pomodoro,
		ShortBreak: settings.ShortBreak,
		LongBreak:  settings.LongBreak,
	}
}

// AudioConfig converts settings to the audio preferences.
func (settings Settings) AudioConfig() model.AudioConfig {
	return model.AudioConfig{
		Volume: settings.Volume,
		Muted:  settings.Muted,
	}
}
