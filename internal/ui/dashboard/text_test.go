package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moodtodo/internal/core/audio"
	"moodtodo/internal/core/mood"
	"moodtodo/internal/core/tasks"
)

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "🛒 Shopping", CategoryLabel(tasks.CategoryShopping))
	assert.Equal(t, "🪙 Personal", CategoryLabel(tasks.CategoryPersonal))
}

func TestFilterFromLabel(t *testing.T) {
	assert.Equal(t, tasks.FilterActive, FilterFromLabel("Active"))
	assert.Equal(t, tasks.FilterCompleted, FilterFromLabel("Completed"))
	assert.Equal(t, tasks.FilterAll, FilterFromLabel("All"))
	assert.Equal(t, tasks.FilterAll, FilterFromLabel("whatever"))
}

func TestTaskLineAndProgress(t *testing.T) {
	task := tasks.Task{Text: "Water the plants", Category: tasks.CategoryHome}
	assert.Equal(t, "🏠 Water the plants", TaskLine(task))

	caption := ProgressCaption(tasks.Stats{Total: 4, Completed: 1, Active: 3, Percent: 25})
	assert.Equal(t, "25% Complete · 3 to go", caption)
}

func TestSubtitleAndFooterFollowCelebration(t *testing.T) {
	stats := tasks.Stats{Total: 4, Completed: 1, Active: 3, Percent: 25}

	assert.Equal(t, "Have a productive day! ✨", Subtitle(audio.Snapshot{}))
	assert.Contains(t, Footer(stats, audio.Snapshot{}, mood.Relaxed), "relaxed mode")
	assert.Contains(t, Footer(stats, audio.Snapshot{}, mood.Relaxed), "1/4")

	celebrating := audio.Snapshot{Celebrating: true}
	assert.Equal(t, "🎉 Celebration in progress!", Subtitle(celebrating))
	assert.Contains(t, Footer(stats, celebrating, mood.Relaxed), "Background music paused")
}
