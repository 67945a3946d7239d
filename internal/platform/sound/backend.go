// Package sound plays the decoded mp3 assets through the ebiten audio
// context.
package sound

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"moodtodo/internal/core/audio"
	"moodtodo/resources"
)

// SampleRate is the output sample rate every asset is resampled to.
const SampleRate = 44100

const defaultPollInterval = 50 * time.Millisecond

// Backend implements audio.Backend on top of ebiten's audio context.
type Backend struct {
	mu           sync.Mutex
	context      *ebitenaudio.Context
	loader       *resources.Loader
	logger       *slog.Logger
	sounds       []*Sound
	muted        bool
	volume       float64
	pollInterval time.Duration
}

// NewBackend creates the process-wide audio context on first use.
func NewBackend(loader *resources.Loader, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	audioContext := ebitenaudio.CurrentContext()
	if audioContext == nil {
		audioContext = ebitenaudio.NewContext(SampleRate)
	}
	return &Backend{
		context:      audioContext,
		loader:       loader,
		logger:       logger.With("component", "sound"),
		volume:       1,
		pollInterval: defaultPollInterval,
	}
}

// Load decodes asset into a ready player. Looping assets repeat forever.
func (backend *Backend) Load(asset audio.Asset) (audio.Sound, error) {
	data, err := backend.loader.Bytes(asset.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrAssetMissing, err)
	}

	stream, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", audio.ErrAssetMissing, asset.Path, err)
	}

	var source io.Reader = stream
	if asset.Loop {
		source = ebitenaudio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := backend.context.NewPlayer(source)
	if err != nil {
		return nil, fmt.Errorf("create player for %s: %w", asset.Path, err)
	}

	sound := &Sound{
		player:       player,
		volume:       clampVolume(asset.Volume),
		pollInterval: backend.pollInterval,
	}

	backend.mu.Lock()
	sound.apply(backend.muted, backend.volume)
	backend.sounds = append(backend.sounds, sound)
	backend.mu.Unlock()

	backend.logger.Debug("decoded sound", "key", asset.Key, "path", asset.Path, "loop", asset.Loop)
	return sound, nil
}

// SetMuted silences every player without changing its playback state.
func (backend *Backend) SetMuted(muted bool) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.muted = muted
	backend.applyLocked()
}

// SetVolume scales every player by level.
func (backend *Backend) SetVolume(level float64) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.volume = clampVolume(level)
	backend.applyLocked()
}

// Close releases every player.
func (backend *Backend) Close() error {
	backend.mu.Lock()
	sounds := backend.sounds
	backend.sounds = nil
	backend.mu.Unlock()

	for _, sound := range sounds {
		if err := sound.player.Close(); err != nil {
			return fmt.Errorf("close player: %w", err)
		}
	}
	return nil
}

func (backend *Backend) applyLocked() {
	for _, sound := range backend.sounds {
		sound.apply(backend.muted, backend.volume)
	}
}

// Sound wraps a single ebiten player.
type Sound struct {
	mu           sync.Mutex
	player       *ebitenaudio.Player
	volume       float64
	paused       bool
	pollInterval time.Duration
}

// Play starts or resumes playback from the current position.
func (sound *Sound) Play() {
	sound.mu.Lock()
	sound.paused = false
	sound.mu.Unlock()
	sound.player.Play()
}

// Pause stops playback and keeps the position.
func (sound *Sound) Pause() {
	sound.mu.Lock()
	sound.paused = true
	sound.mu.Unlock()
	sound.player.Pause()
}

// Rewind moves the position to the start.
func (sound *Sound) Rewind() error {
	return sound.player.Rewind()
}

// IsPlaying reports whether the player is producing output.
func (sound *Sound) IsPlaying() bool {
	return sound.player.IsPlaying()
}

// Wait blocks until the player stops on its own. A paused player keeps
// Wait blocked until ctx is done.
func (sound *Sound) Wait(ctx context.Context) error {
	ticker := time.NewTicker(sound.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if sound.finished() {
				return nil
			}
		}
	}
}

func (sound *Sound) finished() bool {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	return !sound.paused && !sound.player.IsPlaying()
}

func (sound *Sound) apply(muted bool, master float64) {
	sound.player.SetVolume(effectiveVolume(sound.volume, master, muted))
}

func effectiveVolume(asset, master float64, muted bool) float64 {
	if muted {
		return 0
	}
	return clampVolume(asset) * clampVolume(master)
}

func clampVolume(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}
