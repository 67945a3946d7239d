package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtodo/internal/core/countdown"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/ui/preferences"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	want := preferences.DefaultSettings()
	want.Pomodoro = 50 * time.Minute
	want.ShortBreak = 10 * time.Minute
	want.TimerKind = countdown.KindLongBreak
	want.Volume = 0.3
	want.Muted = true
	want.Mood = mood.Relaxed
	want.LaunchAtLogin = true

	require.NoError(t, SaveSettings(dir, want))
	got, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsIgnoresInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := []byte("pomodoro_minutes: -5\nvolume: 3\nmood: grumpy\ntimer_kind: nap\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), content, 0o644))

	settings, err := LoadSettings(dir)
	require.NoError(t, err)
	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.Pomodoro, settings.Pomodoro)
	assert.Equal(t, defaults.Volume, settings.Volume)
	assert.Equal(t, mood.Happy, settings.Mood)
	assert.Equal(t, countdown.KindPomodoro, settings.TimerKind)
}

func TestLoadSettingsMalformedYaml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("volume: [oops"), 0o644))

	settings, err := LoadSettings(dir)
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSilentVolumeSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	want := preferences.DefaultSettings()
	want.Volume = 0

	require.NoError(t, SaveSettings(dir, want))
	got, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Zero(t, got.Volume)
}
