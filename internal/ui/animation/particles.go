package animation

import (
	"image/color"
	"math/rand"
	"time"
)

// Particle is a single confetti piece. Positions are fractions of the
// overlay size so the same burst fits any window.
type Particle struct {
	X     float32
	Drift float32
	Size  float32
	Color color.NRGBA
	Delay time.Duration
	Fall  time.Duration
}

// Generate creates config.Count particles spread across the width.
func Generate(config Config, rng *rand.Rand) []Particle {
	particles := make([]Particle, 0, config.Count)
	for i := 0; i < config.Count; i++ {
		particle := Particle{
			X:     rng.Float32(),
			Drift: (rng.Float32() - 0.5) * 0.2,
			Size:  config.Size.Random(rng),
			Delay: config.Delay.Random(rng),
			Fall:  config.FallDuration.Random(rng),
		}
		if len(config.Colors) > 0 {
			particle.Color = config.Colors[rng.Intn(len(config.Colors))]
		}
		particles = append(particles, particle)
	}
	return particles
}

// At returns the particle position at elapsed as fractions of the overlay.
// Particles start above the top edge and fall past the bottom.
func (particle Particle) At(elapsed time.Duration) (x, y float32, visible bool) {
	if elapsed < particle.Delay || particle.Fall <= 0 {
		return particle.X, -0.1, false
	}
	progress := float32(elapsed-particle.Delay) / float32(particle.Fall)
	if progress > 1 {
		return particle.X + particle.Drift, 1.1, false
	}
	return particle.X + particle.Drift*progress, -0.1 + 1.2*progress, true
}
