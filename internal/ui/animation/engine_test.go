package animation

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFollowsConfig(t *testing.T) {
	config := DefaultConfig()
	particles := Generate(config, rand.New(rand.NewSource(1)))

	require.Len(t, particles, 50)
	for _, particle := range particles {
		assert.GreaterOrEqual(t, particle.Size, float32(3))
		assert.LessOrEqual(t, particle.Size, float32(11))
		assert.Contains(t, config.Colors, particle.Color)
		assert.GreaterOrEqual(t, particle.X, float32(0))
		assert.Less(t, particle.X, float32(1))
	}
}

func TestParticleFalls(t *testing.T) {
	particle := Particle{X: 0.5, Drift: 0.1, Delay: time.Second, Fall: 2 * time.Second}

	_, _, visible := particle.At(500 * time.Millisecond)
	assert.False(t, visible)

	x, y, visible := particle.At(2 * time.Second)
	assert.True(t, visible)
	assert.InDelta(t, 0.55, x, 0.0001)
	assert.InDelta(t, 0.5, y, 0.0001)

	_, _, visible = particle.At(4 * time.Second)
	assert.False(t, visible)
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	fixed := Range{Min: time.Second, Max: time.Second}
	assert.Equal(t, time.Second, fixed.Random(rng))

	value := Range{Min: time.Second, Max: 2 * time.Second}.Random(rng)
	assert.GreaterOrEqual(t, value, time.Second)
	assert.Less(t, value, 2*time.Second)
}

func TestEngineAutoCloses(t *testing.T) {
	config := DefaultConfig()
	config.FrameInterval = time.Millisecond
	config.AutoClose = 20 * time.Millisecond

	var frames atomic.Int32
	engine := New(config, func(Frame) { frames.Add(1) })
	finished := make(chan struct{})
	particles := engine.Start(context.Background(), func() { close(finished) })
	assert.Len(t, particles, config.Count)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("burst did not finish")
	}
	assert.Positive(t, frames.Load())
}

func TestEngineStopSkipsFinish(t *testing.T) {
	config := DefaultConfig()
	config.AutoClose = 30 * time.Millisecond

	var finished atomic.Bool
	engine := New(config, func(Frame) {})
	engine.Start(context.Background(), func() { finished.Store(true) })
	engine.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.False(t, finished.Load())
}
