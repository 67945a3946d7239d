package audio

import (
	"context"
	"errors"
)

// ErrAssetMissing indicates an asset could not be found or decoded.
var ErrAssetMissing = errors.New("audio asset missing")

// SoundKey names an audio asset. Keys are the contract between the
// coordinator and the rest of the application.
type SoundKey string

const (
	SoundSuccess SoundKey = "success"
	SoundMusic1  SoundKey = "music1"
	SoundMusic2  SoundKey = "music2"
	SoundMusic3  SoundKey = "music3"
	SoundMusic4  SoundKey = "music4"
	SoundMusic5  SoundKey = "music5"
	SoundMusic6  SoundKey = "music6"
	SoundClick   SoundKey = "click"
)

// DefaultTrack is played when a mood has no usable track.
const DefaultTrack = SoundMusic1

// Asset describes where a sound lives under the assets root and how it plays.
type Asset struct {
	Key    SoundKey
	Path   string
	Loop   bool
	Volume float64
}

// Assets lists every sound loaded by Preload.
var Assets = []Asset{
	{Key: SoundSuccess, Path: "sounds/success-sound.mp3", Volume: 0.5},
	{Key: SoundMusic1, Path: "sounds/study-music-1.mp3", Loop: true, Volume: 0.5},
	{Key: SoundMusic2, Path: "sounds/study-music-2.mp3", Loop: true, Volume: 0.5},
	{Key: SoundMusic3, Path: "sounds/study-music-3.mp3", Loop: true, Volume: 0.5},
	{Key: SoundMusic4, Path: "sounds/study-music-4.mp3", Loop: true, Volume: 0.5},
	{Key: SoundMusic5, Path: "sounds/study-music-5.mp3", Loop: true, Volume: 0.5},
	{Key: SoundMusic6, Path: "sounds/study-music-6.mp3", Loop: true, Volume: 0.5},
	{Key: SoundClick, Path: "sounds/click.mp3", Volume: 0.5},
}

// Sound is a decoded asset ready for playback.
type Sound interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	// Wait blocks until playback reaches its natural end or ctx is done.
	Wait(ctx context.Context) error
}

// Backend decodes assets and owns the process-wide output settings.
type Backend interface {
	Load(asset Asset) (Sound, error)
	SetMuted(muted bool)
	SetVolume(level float64)
}
