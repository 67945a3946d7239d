package mood

import (
	"image/color"
	"strings"
)

// Mood is a named theme that selects a background track and dashboard colours.
type Mood string

const (
	Happy     Mood = "happy"
	Studying  Mood = "studying"
	Focused   Mood = "focused"
	Relaxed   Mood = "relaxed"
	Energetic Mood = "energetic"
)

// Default is used for unknown mood keys.
const Default = Happy

// Theme describes how a mood is presented.
type Theme struct {
	Mood        Mood
	Emoji       string
	Label       string
	Description string
	Color       color.NRGBA
	Track       string
}

var themes = []Theme{
	{Mood: Happy, Emoji: "😊", Label: "Happy", Description: "Upbeat & cheerful", Color: color.NRGBA{R: 0xFF, G: 0xD6, B: 0xE0, A: 0xFF}, Track: "music1"},
	{Mood: Studying, Emoji: "📚", Label: "Study", Description: "Focus & concentration", Color: color.NRGBA{R: 0xD6, G: 0xE5, B: 0xFF, A: 0xFF}, Track: "music2"},
	{Mood: Focused, Emoji: "🎯", Label: "Focus", Description: "Deep work mode", Color: color.NRGBA{R: 0xD6, G: 0xFF, B: 0xDF, A: 0xFF}, Track: "music3"},
	{Mood: Relaxed, Emoji: "🌸", Label: "Relax", Description: "Calm & peaceful", Color: color.NRGBA{R: 0xFF, G: 0xF9, B: 0xD6, A: 0xFF}, Track: "music6"},
	{Mood: Energetic, Emoji: "⚡", Label: "Energy", Description: "High energy boost", Color: color.NRGBA{R: 0xFF, G: 0xD6, B: 0xFF, A: 0xFF}, Track: "music5"},
}

// All returns every mood in display order.
func All() []Theme {
	return append([]Theme(nil), themes...)
}

// Parse maps a key to a known mood, falling back to Default.
func Parse(key string) Mood {
	candidate := Mood(strings.ToLower(strings.TrimSpace(key)))
	for _, theme := range themes {
		if theme.Mood == candidate {
			return candidate
		}
	}
	return Default
}

// ThemeFor returns the theme for a mood; unknown moods get the default theme.
func ThemeFor(value Mood) Theme {
	for _, theme := range themes {
		if theme.Mood == value {
			return theme
		}
	}
	return themes[0]
}

// TrackFor returns the sound key of the mood's background track.
func TrackFor(value Mood) string {
	return ThemeFor(value).Track
}
