package animation

import (
	"context"
	"image/color"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// FloatRange defines a size range with random sampling.
type FloatRange struct {
	Min float32
	Max float32
}

// Random returns a random value within the range.
func (value FloatRange) Random(rng *rand.Rand) float32 {
	if value.Max <= value.Min {
		return value.Min
	}
	return value.Min + rng.Float32()*(value.Max-value.Min)
}

// Config contains confetti timing and look.
type Config struct {
	Count         int
	Colors        []color.NRGBA
	Size          FloatRange
	FallDuration  Range
	Delay         Range
	FrameInterval time.Duration
	AutoClose     time.Duration
}

// Frame is a single drawing step of a running burst.
type Frame struct {
	Elapsed   time.Duration
	Particles []Particle
}

// Engine drives a confetti burst on a background goroutine.
type Engine struct {
	mu     sync.Mutex
	config Config
	draw   func(Frame)
	cancel context.CancelFunc
	rng    *rand.Rand
}

// New creates a new animation engine. draw is called from the engine
// goroutine for every frame.
func New(config Config, draw func(Frame)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	return &Engine{
		config: config,
		draw:   draw,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Config returns the engine configuration.
func (engine *Engine) Config() Config {
	return engine.config
}

// Start launches a new burst, replacing a running one. onFinish runs once
// the auto-close delay passes without the burst being stopped.
func (engine *Engine) Start(ctx context.Context, onFinish func()) []Particle {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	particles := Generate(engine.config, engine.rng)
	engine.mu.Unlock()

	go engine.run(runCtx, particles, onFinish)
	return particles
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) run(ctx context.Context, particles []Particle, onFinish func()) {
	ticker := time.NewTicker(engine.config.FrameInterval)
	defer ticker.Stop()

	started := time.Now()
	deadline := time.NewTimer(engine.config.AutoClose)
	defer deadline.Stop()

	engine.draw(Frame{Particles: particles})
	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			if onFinish != nil && ctx.Err() == nil {
				onFinish()
			}
			return
		case now := <-ticker.C:
			engine.draw(Frame{Elapsed: now.Sub(started), Particles: particles})
		}
	}
}
