package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PomodoroMinutes   int      `yaml:"pomodoro_minutes"`
	ShortBreakMinutes int      `yaml:"short_break_minutes"`
	LongBreakMinutes  int      `yaml:"long_break_minutes"`
	TimerKind         string   `yaml:"timer_kind"`
	Volume            *float64 `yaml:"volume,omitempty"`
	Muted             bool     `yaml:"muted"`
	Mood              string   `yaml:"mood"`
	LaunchAtLogin     bool     `yaml:"launch_at_login"`
}

// LoadSettings reads user preferences from YAML in configDir.
// If the config file does not exist, default settings are returned.
func LoadSettings(configDir string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	configPath := settingsPath(configDir)

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML in configDir.
func SaveSettings(configDir string, settings preferences.Settings) error {
	configPath := settingsPath(configDir)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		PomodoroMinutes:   int(settings.Pomodoro / time.Minute),
		ShortBreakMinutes: int(settings.ShortBreak / time.Minute),
		LongBreakMinutes:  int(settings.LongBreak / time.Minute),
		TimerKind:         string(settings.TimerKind),
		Volume:            &settings.Volume,
		Muted:             settings.Muted,
		Mood:              string(settings.Mood),
		LaunchAtLogin:     settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func settingsPath(configDir string) string {
	return filepath.Join(configDir, settingsFileName)
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.PomodoroMinutes > 0 {
		settings.Pomodoro = time.Duration(fileData.PomodoroMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreak = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreak = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.TimerKind != "" {
		settings.TimerKind = countdown.ParseKind(fileData.TimerKind)
	}

	if fileData.Volume != nil && *fileData.Volume >= 0 && *fileData.Volume <= 1 {
		settings.Volume = *fileData.Volume
	}
	if fileData.Mood != "" {
		settings.Mood = mood.Parse(fileData.Mood)
	}

	settings.Muted = fileData.Muted
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
