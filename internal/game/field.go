package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heartcard/internal/config"
)

// Field owns a fixed population of hearts and advances them once per tick.
// The slice is updated in place; recycling replaces an element rather than
// shrinking or growing the population.
type Field struct {
	w, h   float64
	prof   config.Profile
	rng    *rand.Rand
	hearts []Particle
	nextID int
}

func NewField(w, h int, prof config.Profile, seed int64) *Field {
	f := &Field{
		w:    float64(w),
		h:    float64(h),
		prof: prof,
		rng:  rand.New(rand.NewSource(seed)),
	}
	f.hearts = make([]Particle, prof.ParticleCount)
	for i := range f.hearts {
		f.hearts[i] = newParticle(f.nextID, f.rng, f.prof, f.w, f.h, true)
		f.nextID++
	}
	return f
}

// Update moves every heart one tick and recycles the ones that scrolled
// fully off the top edge. Pure arithmetic; never errors.
func (f *Field) Update() {
	for i := range f.hearts {
		p := &f.hearts[i]
		p.Y -= p.Speed
		p.Rotation += p.RotationSpeed
		if p.Y < -p.Size*2 {
			f.hearts[i] = newParticle(f.nextID, f.rng, f.prof, f.w, f.h, false)
			f.nextID++
		}
	}
}

// Resize updates the bounds only. Existing hearts keep their absolute
// positions; the recycle policy pulls strays back on screen.
func (f *Field) Resize(w, h int) {
	f.w = float64(w)
	f.h = float64(h)
}

func (f *Field) Count() int { return len(f.hearts) }

// Draw renders every heart. dim is the answer-state alpha multiplier;
// pulse in [0,1] scales the glow halo with the music level.
func (f *Field) Draw(dst *ebiten.Image, dim, pulse float64) {
	for i := range f.hearts {
		p := &f.hearts[i]
		r, g, b := hsvToRgb(p.Hue, 0.75, 0.95)
		if f.prof.GlowEnabled && p.Glow > config.GlowThreshold {
			halo := clamp01(p.Opacity*p.Glow*(0.2+0.35*pulse)) * dim
			fillHeart(dst, p.X, p.Y, p.Size*1.6, p.Rotation, r, g, b, halo)
		}
		fillHeart(dst, p.X, p.Y, p.Size, p.Rotation, r, g, b, clamp01(p.Opacity)*dim)
	}
}
