package game

import (
	"math/rand"

	"github.com/iburimskiy/heartcard/internal/config"
)

// Particle is one floating heart. Position origin is the top-left of the
// surface; hearts drift upward, so Y decreases every tick while alive.
type Particle struct {
	ID int

	X, Y float64

	Size          float64 // half-extent of the rendered glyph
	Speed         float64 // upward displacement per tick
	Opacity       float64
	Rotation      float64 // degrees
	RotationSpeed float64 // degrees per tick
	Glow          float64
	Hue           float64
}

func randIn(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// newParticle draws fresh attributes from the profile's ranges. Initial
// spawns spread y across the full height so the field looks populated
// immediately; recycled spawns start below the bottom edge.
func newParticle(id int, rng *rand.Rand, prof config.Profile, w, h float64, initial bool) Particle {
	p := Particle{
		ID:            id,
		X:             rng.Float64() * w,
		Size:          randIn(rng, prof.Size),
		Speed:         randIn(rng, prof.Speed),
		Opacity:       randIn(rng, prof.Opacity),
		Rotation:      rng.Float64() * 360,
		RotationSpeed: randIn(rng, prof.RotationSpeed),
		Hue:           randIn(rng, prof.Hue),
	}
	if prof.GlowEnabled {
		p.Glow = randIn(rng, prof.Glow)
	}
	if initial {
		p.Y = rng.Float64() * h
	} else {
		p.Y = h + p.Size*2 + rng.Float64()*40
	}
	return p
}
