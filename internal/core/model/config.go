package model

import "time"

// TimerConfig defines the length of each countdown kind.
type TimerConfig struct {
	Pomodoro   time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultTimerConfig returns the classic pomodoro schedule.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Pomodoro:   25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// AudioConfig contains the persisted audio preferences.
type AudioConfig struct {
	Volume float64
	Muted  bool
}
