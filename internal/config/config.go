package config

import (
	"os"
	"time"
)

const (
	// Initial window dimensions; the window itself is resizable and the
	// drawing surface follows it.
	WindowWidth  = 960
	WindowHeight = 600

	// Viewports narrower than this at startup get the compact profile.
	CompactWidth = 600

	// Alpha multiplier applied to every heart once an answer is given.
	DimFactor = 0.3

	// Delay between answering and the message reveal, in update ticks
	// (1.2s at ebiten's 60 TPS).
	RevealDelayTicks = 72

	// Fixed playback gain for the background track.
	TrackGain = 0.3

	// Glow halo is drawn only above this intensity.
	GlowThreshold = 0.6

	SmoothingFactor = 0.6
)

// Range is a closed interval attributes are drawn from uniformly.
type Range struct {
	Min, Max float64
}

// Profile holds the viewport-dependent particle tunables. Keeping both
// variants in one record keyed by the compact flag avoids the two parameter
// tables drifting apart.
type Profile struct {
	Compact       bool
	ParticleCount int

	Size          Range
	Speed         Range
	Opacity       Range
	RotationSpeed Range
	Glow          Range

	GlowEnabled bool

	// Hue band for the heart fill, degrees.
	Hue Range
}

// ProfileFor returns the particle tunables for the given layout. Compact
// viewports get fewer, smaller, slower, dimmer hearts and no glow pass.
func ProfileFor(compact bool) Profile {
	if compact {
		return Profile{
			Compact:       true,
			ParticleCount: 25,
			Size:          Range{6, 14},
			Speed:         Range{0.4, 1.4},
			Opacity:       Range{0.2, 0.7},
			RotationSpeed: Range{-0.8, 0.8},
			Glow:          Range{0, 0.95},
			GlowEnabled:   false,
			Hue:           Range{330, 355},
		}
	}
	return Profile{
		ParticleCount: 50,
		Size:          Range{8, 20},
		Speed:         Range{0.5, 2.0},
		Opacity:       Range{0.25, 0.9},
		RotationSpeed: Range{-1.2, 1.2},
		Glow:          Range{0, 0.95},
		GlowEnabled:   true,
		Hue:           Range{330, 355},
	}
}

// RevealDelay is the reveal delay as wall time, for anything not counting
// ticks.
const RevealDelay = 1200 * time.Millisecond

// ReducedMotion reports whether decorative transitions should be skipped.
// Read once per session; it gates the reveal springs and the title pulse,
// not the particle field.
func ReducedMotion() bool {
	v := os.Getenv("HEARTCARD_REDUCE_MOTION")
	return v != "" && v != "0"
}
