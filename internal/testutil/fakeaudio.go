// Package testutil provides fakes shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"moodtodo/internal/core/audio"
)

// FakeBackend is an in-memory audio.Backend that records what would be heard.
type FakeBackend struct {
	mu      sync.Mutex
	sounds  map[audio.SoundKey]*FakeSound
	missing map[audio.SoundKey]bool
	muted   bool
	volume  float64
	loads   int
}

// NewFakeBackend creates a backend; keys listed in missing fail to load.
func NewFakeBackend(missing ...audio.SoundKey) *FakeBackend {
	backend := &FakeBackend{
		sounds:  make(map[audio.SoundKey]*FakeSound),
		missing: make(map[audio.SoundKey]bool),
		volume:  1,
	}
	for _, key := range missing {
		backend.missing[key] = true
	}
	return backend
}

// Load implements audio.Backend.
func (backend *FakeBackend) Load(asset audio.Asset) (audio.Sound, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	backend.loads++
	if backend.missing[asset.Key] {
		return nil, fmt.Errorf("load %s: %w", asset.Path, audio.ErrAssetMissing)
	}
	sound := &FakeSound{Key: asset.Key, Loop: asset.Loop, ended: make(chan struct{})}
	backend.sounds[asset.Key] = sound
	return sound, nil
}

// SetMuted implements audio.Backend.
func (backend *FakeBackend) SetMuted(muted bool) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.muted = muted
}

// SetVolume implements audio.Backend.
func (backend *FakeBackend) SetVolume(level float64) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.volume = level
}

// Muted reports the backend mute flag.
func (backend *FakeBackend) Muted() bool {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return backend.muted
}

// Volume reports the backend master volume.
func (backend *FakeBackend) Volume() float64 {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return backend.volume
}

// Loads counts Load calls.
func (backend *FakeBackend) Loads() int {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return backend.loads
}

// Sound returns the loaded fake for key, or nil.
func (backend *FakeBackend) Sound(key audio.SoundKey) *FakeSound {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return backend.sounds[key]
}

// Audible lists the keys that are playing while the output is not muted.
func (backend *FakeBackend) Audible() []audio.SoundKey {
	backend.mu.Lock()
	muted := backend.muted || backend.volume == 0
	sounds := make([]*FakeSound, 0, len(backend.sounds))
	for _, sound := range backend.sounds {
		sounds = append(sounds, sound)
	}
	backend.mu.Unlock()

	if muted {
		return nil
	}
	var audible []audio.SoundKey
	for _, sound := range sounds {
		if sound.IsPlaying() {
			audible = append(audible, sound.Key)
		}
	}
	return audible
}

// FakeSound is a controllable audio.Sound.
type FakeSound struct {
	Key  audio.SoundKey
	Loop bool

	mu       sync.Mutex
	playing  bool
	position int
	plays    int
	rewinds  int
	ended    chan struct{}
	finished bool
}

// Play implements audio.Sound.
func (sound *FakeSound) Play() {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	sound.playing = true
	sound.plays++
	if sound.finished {
		sound.ended = make(chan struct{})
		sound.finished = false
	}
}

// Pause implements audio.Sound.
func (sound *FakeSound) Pause() {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	sound.playing = false
}

// Rewind implements audio.Sound.
func (sound *FakeSound) Rewind() error {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	sound.position = 0
	sound.rewinds++
	return nil
}

// IsPlaying implements audio.Sound.
func (sound *FakeSound) IsPlaying() bool {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	return sound.playing
}

// Wait implements audio.Sound; it returns once End is called for the
// current playback.
func (sound *FakeSound) Wait(ctx context.Context) error {
	sound.mu.Lock()
	ended := sound.ended
	sound.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ended:
		return nil
	}
}

// Advance moves the playback position, standing in for elapsed audio.
func (sound *FakeSound) Advance(steps int) {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	sound.position += steps
}

// End simulates the current playback reaching its natural end.
func (sound *FakeSound) End() {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	sound.playing = false
	if !sound.finished {
		close(sound.ended)
		sound.finished = true
	}
}

// Position returns the playback position.
func (sound *FakeSound) Position() int {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	return sound.position
}

// Plays counts Play calls.
func (sound *FakeSound) Plays() int {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	return sound.plays
}

// Rewinds counts Rewind calls.
func (sound *FakeSound) Rewinds() int {
	sound.mu.Lock()
	defer sound.mu.Unlock()
	return sound.rewinds
}
