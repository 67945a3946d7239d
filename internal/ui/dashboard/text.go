package dashboard

import (
	"fmt"
	"strings"

	"moodtodo/internal/core/audio"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/core/tasks"
)

// CategoryLabel returns the picker caption for a category.
func CategoryLabel(category tasks.Category) string {
	name := string(category)
	if name == "" {
		return category.Emoji()
	}
	return category.Emoji() + " " + strings.ToUpper(name[:1]) + name[1:]
}

// FilterFromLabel maps a filter caption to a filter.
func FilterFromLabel(label string) tasks.Filter {
	switch strings.ToLower(label) {
	case string(tasks.FilterActive):
		return tasks.FilterActive
	case string(tasks.FilterCompleted):
		return tasks.FilterCompleted
	default:
		return tasks.FilterAll
	}
}

// TaskLine renders a task row.
func TaskLine(task tasks.Task) string {
	return fmt.Sprintf("%s %s", task.Category.Emoji(), task.Text)
}

// ProgressCaption renders the line under the progress bar.
func ProgressCaption(stats tasks.Stats) string {
	return fmt.Sprintf("%d%% Complete · %d to go", stats.Percent, stats.Active)
}

// Subtitle renders the header line under the greeting.
func Subtitle(snapshot audio.Snapshot) string {
	if snapshot.Celebrating {
		return "🎉 Celebration in progress!"
	}
	return "Have a productive day! ✨"
}

// Footer renders the progress and music summary at the bottom.
func Footer(stats tasks.Stats, snapshot audio.Snapshot, current mood.Mood) string {
	music := fmt.Sprintf("Music is playing in %s mode 🎵", current)
	if snapshot.Celebrating {
		music = "🎉 Celebration mode active! Background music paused."
	}
	return fmt.Sprintf("Made with ❤️ and cute animations | Progress: %d/%d | %s", stats.Completed, stats.Total, music)
}
