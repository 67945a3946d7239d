package audio

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"moodtodo/internal/core/mood"
)

// DefaultQuickDelay is how long a quick celebration suspends the background.
const DefaultQuickDelay = 1500 * time.Millisecond

// Options contains runtime options for Coordinator.
type Options struct {
	QuickDelay time.Duration
	// Volume is the initial master volume; nil means full volume.
	Volume *float64
	Logger *slog.Logger
	// After replaces time.After, mainly for tests.
	After func(time.Duration) <-chan time.Time
}

// Coordinator arbitrates between looping mood tracks and the one-shot
// celebration sound. A celebration always suspends the background track.
type Coordinator struct {
	mu      sync.Mutex
	backend Backend
	options Options
	logger  *slog.Logger

	sounds    map[SoundKey]Sound
	preloaded bool

	muted      bool
	volume     float64
	background backgroundState
	activeKey  SoundKey
	active     Sound

	celebrating bool
	resumeAfter bool
	generation  uint64
	cancel      context.CancelFunc
	done        chan struct{}

	events []chan Snapshot
	closed bool
}

// NewCoordinator creates a coordinator on top of backend.
func NewCoordinator(backend Backend, options Options) *Coordinator {
	if options.QuickDelay <= 0 {
		options.QuickDelay = DefaultQuickDelay
	}
	if options.After == nil {
		options.After = time.After
	}
	volume := 1.0
	if options.Volume != nil {
		volume = clampLevel(*options.Volume)
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	coordinator := &Coordinator{
		backend: backend,
		options: options,
		logger:  logger.With("component", "audio"),
		sounds:  make(map[SoundKey]Sound),
		volume:  volume,
	}
	backend.SetVolume(coordinator.volume)
	return coordinator
}

// Preload decodes every known asset. Missing or broken assets are skipped and
// the operations that need them become no-ops.
func (coordinator *Coordinator) Preload(ctx context.Context) {
	coordinator.mu.Lock()
	if coordinator.preloaded || coordinator.closed {
		coordinator.mu.Unlock()
		return
	}
	coordinator.preloaded = true
	coordinator.mu.Unlock()

	loaded := make(map[SoundKey]Sound, len(Assets))
	for _, asset := range Assets {
		if ctx.Err() != nil {
			break
		}
		sound, err := coordinator.backend.Load(asset)
		if err != nil {
			coordinator.logger.Debug("skip audio asset", "key", asset.Key, "path", asset.Path, "error", err)
			continue
		}
		loaded[asset.Key] = sound
	}

	coordinator.mu.Lock()
	for key, sound := range loaded {
		coordinator.sounds[key] = sound
	}
	coordinator.mu.Unlock()
	coordinator.logger.Debug("audio preloaded", "loaded", len(loaded), "known", len(Assets))
}

// Subscribe registers an observer channel that receives a snapshot on every
// state change. Slow observers miss updates instead of blocking.
func (coordinator *Coordinator) Subscribe(buffer int) <-chan Snapshot {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Snapshot, buffer)
	coordinator.mu.Lock()
	if coordinator.closed {
		close(ch)
	} else {
		coordinator.events = append(coordinator.events, ch)
	}
	coordinator.mu.Unlock()
	return ch
}

// PlayMood makes the mood's track the active background track. While a
// celebration is playing the request is dropped. When muted the track is
// recorded but not started.
func (coordinator *Coordinator) PlayMood(value mood.Mood) {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	if coordinator.celebrating {
		coordinator.logger.Debug("mood change dropped during celebration", "mood", value)
		return
	}

	key := SoundKey(mood.TrackFor(value))
	sound, ok := coordinator.sounds[key]
	if !ok {
		key = DefaultTrack
		sound, ok = coordinator.sounds[key]
	}

	coordinator.stopActiveLocked()
	if !ok {
		coordinator.emitLocked()
		return
	}

	coordinator.active = sound
	coordinator.activeKey = key
	if coordinator.muted {
		coordinator.background = backgroundPaused
	} else {
		sound.Play()
		coordinator.background = backgroundPlaying
	}
	coordinator.emitLocked()
}

// PauseBackground pauses a playing background track.
func (coordinator *Coordinator) PauseBackground() {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	if coordinator.background != backgroundPlaying {
		return
	}
	coordinator.active.Pause()
	coordinator.background = backgroundPaused
	coordinator.emitLocked()
}

// ResumeBackground resumes a paused background track unless muted or
// celebrating.
func (coordinator *Coordinator) ResumeBackground() {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	if coordinator.resumeLocked() {
		coordinator.emitLocked()
	}
}

// StopBackground stops and forgets the active background track.
func (coordinator *Coordinator) StopBackground() {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	if coordinator.active == nil {
		return
	}
	coordinator.stopActiveLocked()
	if coordinator.celebrating {
		coordinator.resumeAfter = false
	}
	coordinator.emitLocked()
}

// PlayCelebration plays the success sound and suspends the background track
// until it completes. Quick celebrations complete after the quick delay,
// others when the sound ends. The returned channel is closed once the
// celebration is over; it is already closed when nothing was played.
func (coordinator *Coordinator) PlayCelebration(quick bool) <-chan struct{} {
	coordinator.mu.Lock()
	success, ok := coordinator.sounds[SoundSuccess]
	if coordinator.closed || coordinator.muted || !ok {
		coordinator.mu.Unlock()
		return closedChannel()
	}

	if coordinator.celebrating {
		coordinator.releaseCelebrationLocked()
	} else {
		coordinator.resumeAfter = coordinator.background == backgroundPlaying
		if coordinator.background == backgroundPlaying {
			coordinator.active.Pause()
			coordinator.background = backgroundPaused
		}
	}

	coordinator.celebrating = true
	coordinator.generation++
	generation := coordinator.generation
	ctx, cancel := context.WithCancel(context.Background())
	coordinator.cancel = cancel
	done := make(chan struct{})
	coordinator.done = done

	if err := success.Rewind(); err != nil {
		coordinator.logger.Debug("rewind success sound", "error", err)
	}
	success.Play()
	coordinator.emitLocked()
	coordinator.mu.Unlock()

	go coordinator.awaitCelebration(ctx, generation, quick, success)
	return done
}

// StopCelebration ends a celebration early and resumes the background track.
// It may be called at any time; repeated calls have no further effect.
func (coordinator *Coordinator) StopCelebration() {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	if success, ok := coordinator.sounds[SoundSuccess]; ok && success.IsPlaying() {
		success.Pause()
		if err := success.Rewind(); err != nil {
			coordinator.logger.Debug("rewind success sound", "error", err)
		}
	}
	if !coordinator.celebrating {
		return
	}
	coordinator.endCelebrationLocked()
	coordinator.emitLocked()
}

// ToggleMute flips the mute flag and returns the new value. Muting keeps the
// logical state; unmuting resumes the background unless celebrating.
func (coordinator *Coordinator) ToggleMute() bool {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	coordinator.muted = !coordinator.muted
	coordinator.backend.SetMuted(coordinator.muted)
	if !coordinator.muted {
		coordinator.resumeLocked()
	}
	coordinator.emitLocked()
	return coordinator.muted
}

// SetVolume applies a master volume in [0,1].
func (coordinator *Coordinator) SetVolume(level float64) {
	level = clampLevel(level)
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	coordinator.volume = level
	coordinator.backend.SetVolume(level)
	coordinator.emitLocked()
}

// Volume returns the master volume.
func (coordinator *Coordinator) Volume() float64 {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()
	return coordinator.volume
}

// IsMuted reports the mute flag.
func (coordinator *Coordinator) IsMuted() bool {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()
	return coordinator.muted
}

// IsCelebrating reports whether the celebration sound holds the output.
func (coordinator *Coordinator) IsCelebrating() bool {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()
	return coordinator.celebrating
}

// State returns the current snapshot.
func (coordinator *Coordinator) State() Snapshot {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()
	return coordinator.snapshotLocked()
}

// Close stops all playback and closes observer channels.
func (coordinator *Coordinator) Close() {
	coordinator.mu.Lock()
	if coordinator.closed {
		coordinator.mu.Unlock()
		return
	}
	coordinator.closed = true
	if coordinator.celebrating {
		coordinator.celebrating = false
		coordinator.releaseCelebrationLocked()
	}
	coordinator.stopActiveLocked()
	if success, ok := coordinator.sounds[SoundSuccess]; ok {
		success.Pause()
	}
	events := coordinator.events
	coordinator.events = nil
	coordinator.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (coordinator *Coordinator) awaitCelebration(ctx context.Context, generation uint64, quick bool, sound Sound) {
	if quick {
		select {
		case <-ctx.Done():
			return
		case <-coordinator.options.After(coordinator.options.QuickDelay):
		}
	} else if err := sound.Wait(ctx); err != nil {
		return
	}
	coordinator.finishCelebration(generation)
}

func (coordinator *Coordinator) finishCelebration(generation uint64) {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()

	if !coordinator.celebrating || generation != coordinator.generation {
		return
	}
	coordinator.endCelebrationLocked()
	coordinator.emitLocked()
}

func (coordinator *Coordinator) endCelebrationLocked() {
	coordinator.celebrating = false
	coordinator.releaseCelebrationLocked()
	if coordinator.resumeAfter {
		coordinator.resumeLocked()
	}
	coordinator.resumeAfter = false
}

// releaseCelebrationLocked cancels the pending completion and closes its
// done channel exactly once.
func (coordinator *Coordinator) releaseCelebrationLocked() {
	if coordinator.cancel != nil {
		coordinator.cancel()
		coordinator.cancel = nil
	}
	if coordinator.done != nil {
		close(coordinator.done)
		coordinator.done = nil
	}
}

func (coordinator *Coordinator) resumeLocked() bool {
	if coordinator.background != backgroundPaused || coordinator.muted || coordinator.celebrating {
		return false
	}
	coordinator.active.Play()
	coordinator.background = backgroundPlaying
	return true
}

func (coordinator *Coordinator) stopActiveLocked() {
	if coordinator.active != nil {
		coordinator.active.Pause()
		if err := coordinator.active.Rewind(); err != nil {
			coordinator.logger.Debug("rewind background track", "key", coordinator.activeKey, "error", err)
		}
	}
	coordinator.active = nil
	coordinator.activeKey = ""
	coordinator.background = backgroundIdle
}

func (coordinator *Coordinator) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		Muted:             coordinator.muted,
		Celebrating:       coordinator.celebrating,
		BackgroundPlaying: coordinator.background == backgroundPlaying,
		ActiveTrack:       coordinator.activeKey,
		Volume:            coordinator.volume,
	}
	switch {
	case coordinator.celebrating:
		snapshot.Phase = PhaseCelebration
	case coordinator.background == backgroundPlaying:
		snapshot.Phase = PhaseBackgroundPlaying
	case coordinator.background == backgroundPaused:
		snapshot.Phase = PhaseBackgroundPaused
	default:
		snapshot.Phase = PhaseIdle
	}
	return snapshot
}

func (coordinator *Coordinator) emitLocked() {
	snapshot := coordinator.snapshotLocked()
	for _, ch := range coordinator.events {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

func closedChannel() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func clampLevel(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}
