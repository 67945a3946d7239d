package countdown

import (
	"fmt"
	"sync"
	"time"

	"moodtodo/internal/core/model"
	"moodtodo/internal/core/mood"
)

// MusicController is the part of the audio coordinator the timer drives.
type MusicController interface {
	PlayMood(value mood.Mood)
	PauseBackground()
	StopBackground()
	IsMuted() bool
	IsCelebrating() bool
}

// Config contains runtime options for Timer.
type Config struct {
	TickInterval time.Duration
}

// Timer is a second-granularity countdown with pomodoro and break kinds.
type Timer struct {
	mu         sync.Mutex
	config     model.TimerConfig
	options    Config
	music      MusicController
	onComplete func()
	kind       Kind
	remaining  int
	running    bool
	mood       mood.Mood
	events     []chan Event
	stopCh     chan struct{}
	ticking    bool
}

// New creates a stopped pomodoro timer.
func New(config model.TimerConfig, options Config, music MusicController) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	timer := &Timer{
		config:  normalizeConfig(config),
		options: options,
		music:   music,
		kind:    KindPomodoro,
		mood:    mood.Default,
	}
	timer.remaining = timer.durationLocked(KindPomodoro)
	return timer
}

// SetOnComplete sets the handler fired when the countdown reaches zero.
func (timer *Timer) SetOnComplete(handler func()) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.onComplete = handler
}

// SetMood sets the mood whose music plays when the timer starts.
func (timer *Timer) SetMood(value mood.Mood) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.mood = value
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// StartTicking launches the tick loop.
func (timer *Timer) StartTicking() {
	timer.mu.Lock()
	if timer.ticking {
		timer.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	timer.stopCh = stop
	timer.ticking = true
	timer.mu.Unlock()

	go timer.run(stop)
}

// Stop terminates the tick loop and closes observers. The loop can be
// started again; channels subscribed after Stop are closed by the next Stop.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	if !timer.ticking {
		events := timer.events
		timer.events = nil
		timer.mu.Unlock()
		closeAll(events)
		return
	}
	close(timer.stopCh)
	timer.stopCh = nil
	timer.ticking = false
	timer.running = false
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	closeAll(events)
}

// Start begins counting down and starts the mood music.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.running || timer.remaining <= 0 {
		timer.mu.Unlock()
		return
	}
	timer.running = true
	current := timer.mood
	timer.emitStateLocked()
	timer.mu.Unlock()

	if timer.music != nil && !timer.music.IsCelebrating() && !timer.music.IsMuted() {
		timer.music.PlayMood(current)
	}
}

// Pause freezes the countdown and pauses the background music.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		return
	}
	timer.running = false
	timer.emitStateLocked()
	timer.mu.Unlock()

	if timer.music != nil && !timer.music.IsCelebrating() {
		timer.music.PauseBackground()
	}
}

// Reset stops the countdown and restores the full duration of the kind.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.running = false
	timer.remaining = timer.durationLocked(timer.kind)
	timer.emitStateLocked()
	timer.mu.Unlock()

	timer.stopMusic()
}

// SelectKind switches the countdown kind and stops the countdown.
func (timer *Timer) SelectKind(kind Kind) {
	kind = ParseKind(string(kind))

	timer.mu.Lock()
	timer.kind = kind
	timer.running = false
	timer.remaining = timer.durationLocked(kind)
	timer.emitStateLocked()
	timer.mu.Unlock()

	timer.stopMusic()
}

// UpdateConfig replaces the durations. A stopped timer picks up the new
// duration of its kind immediately.
func (timer *Timer) UpdateConfig(config model.TimerConfig) {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	timer.config = normalizeConfig(config)
	if !timer.running {
		timer.remaining = timer.durationLocked(timer.kind)
		timer.emitStateLocked()
	}
}

// Kind returns the selected kind.
func (timer *Timer) Kind() Kind {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.kind
}

// Remaining returns the time left.
func (timer *Timer) Remaining() time.Duration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return time.Duration(timer.remaining) * time.Second
}

// Running reports whether the countdown is active.
func (timer *Timer) Running() bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.running
}

func (timer *Timer) run(stop <-chan struct{}) {
	ticker := time.NewTicker(timer.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case tickTime := <-ticker.C:
			timer.tick(tickTime)
		}
	}
}

func (timer *Timer) tick(tickTime time.Time) {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		return
	}

	timer.remaining--
	if timer.remaining > 0 {
		timer.emitLocked(Event{
			Type:      EventProgress,
			Kind:      timer.kind,
			Running:   true,
			Remaining: time.Duration(timer.remaining) * time.Second,
			Progress:  timer.progressLocked(),
			At:        tickTime,
		})
		timer.mu.Unlock()
		return
	}

	timer.remaining = 0
	timer.running = false
	timer.emitLocked(Event{
		Type:     EventComplete,
		Kind:     timer.kind,
		Progress: 1,
		At:       tickTime,
	})
	handler := timer.onComplete
	timer.mu.Unlock()

	if handler != nil {
		handler()
	}
}

func (timer *Timer) stopMusic() {
	if timer.music != nil && !timer.music.IsCelebrating() {
		timer.music.StopBackground()
	}
}

func (timer *Timer) durationLocked(kind Kind) int {
	var duration time.Duration
	switch kind {
	case KindShortBreak:
		duration = timer.config.ShortBreak
	case KindLongBreak:
		duration = timer.config.LongBreak
	default:
		duration = timer.config.Pomodoro
	}
	return int(duration / time.Second)
}

func (timer *Timer) progressLocked() float64 {
	total := timer.durationLocked(timer.kind)
	if total <= 0 {
		return 1
	}
	progress := float64(total-timer.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (timer *Timer) emitStateLocked() {
	timer.emitLocked(Event{
		Type:      EventStateChange,
		Kind:      timer.kind,
		Running:   timer.running,
		Remaining: time.Duration(timer.remaining) * time.Second,
		Progress:  timer.progressLocked(),
		At:        time.Now(),
	})
}

func (timer *Timer) emitLocked(event Event) {
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func closeAll(events []chan Event) {
	for _, ch := range events {
		close(ch)
	}
}

func normalizeConfig(config model.TimerConfig) model.TimerConfig {
	defaults := model.DefaultTimerConfig()
	if config.Pomodoro < time.Second {
		config.Pomodoro = defaults.Pomodoro
	}
	if config.ShortBreak < time.Second {
		config.ShortBreak = defaults.ShortBreak
	}
	if config.LongBreak < time.Second {
		config.LongBreak = defaults.LongBreak
	}
	return config
}

// FormatRemaining renders a duration as mm:ss.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
