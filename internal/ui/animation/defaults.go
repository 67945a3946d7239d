package animation

import (
	"image/color"
	"time"
)

// DefaultConfig returns the confetti burst shown on a celebration.
func DefaultConfig() Config {
	return Config{
		Count: 50,
		Colors: []color.NRGBA{
			{R: 0xff, G: 0x85, B: 0xa2, A: 0xff},
			{R: 0x6b, G: 0xff, B: 0x93, A: 0xff},
			{R: 0xff, G: 0xd6, B: 0x6b, A: 0xff},
			{R: 0x6b, G: 0x93, B: 0xff, A: 0xff},
		},
		Size: FloatRange{Min: 3, Max: 11},
		FallDuration: Range{
			Min: 1500 * time.Millisecond,
			Max: 2500 * time.Millisecond,
		},
		Delay: Range{
			Min: 0,
			Max: 500 * time.Millisecond,
		},
		FrameInterval: 33 * time.Millisecond,
		AutoClose:     2500 * time.Millisecond,
	}
}
