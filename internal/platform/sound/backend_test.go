package sound

import (
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"moodtodo/internal/core/audio"
	"moodtodo/resources"
)

func TestEffectiveVolume(t *testing.T) {
	assert.Equal(t, 0.25, effectiveVolume(0.5, 0.5, false))
	assert.Equal(t, 0.0, effectiveVolume(0.5, 1, true))
	assert.Equal(t, 1.0, effectiveVolume(3, 2, false))
	assert.Equal(t, 0.0, effectiveVolume(0.5, -1, false))
}

func TestLoadMissingAsset(t *testing.T) {
	backend := &Backend{
		loader: resources.NewLoader(fstest.MapFS{}),
		logger: slog.Default(),
		volume: 1,
	}

	_, err := backend.Load(audio.Asset{Key: audio.SoundSuccess, Path: "sounds/success-sound.mp3"})
	assert.ErrorIs(t, err, audio.ErrAssetMissing)
}

func TestLoadUndecodableAsset(t *testing.T) {
	backend := &Backend{
		loader: resources.NewLoader(fstest.MapFS{
			"sounds/click.mp3": {Data: []byte("not an mp3")},
		}),
		logger: slog.Default(),
		volume: 1,
	}

	_, err := backend.Load(audio.Asset{Key: audio.SoundClick, Path: "sounds/click.mp3"})
	assert.ErrorIs(t, err, audio.ErrAssetMissing)
}
