package mood

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Viewport is the display surface a scene is mounted on. A zero Width means
// the surface is unknown and viewport-relative travel stays in vw units.
type Viewport struct {
	Width int // CSS pixels
}

// Particle is one mounted glyph.
type Particle struct {
	Index int
	Cell  Cell
	Left  float64 // percent
	Top   float64 // percent
	Delay time.Duration
}

// Group is a particle config together with its mounted particles.
type Group struct {
	Config    ParticleConfig
	Particles []Particle
}

// Scene is everything drawn for one mood on one mount.
type Scene struct {
	Key       string
	Mood      Mood
	Gradient  GradientStyle
	Ambient   Group
	Secondary []Group
}

// Compose builds the scene for m. Unknown moods compose the default scene,
// which has no secondary groups.
func Compose(m Mood, vp Viewport) Scene {
	if !m.Known() {
		m = Default
	}
	return Scene{
		Key:      m.Key() + "-" + uuid.NewString(),
		Mood:     m,
		Gradient: Gradient(m),
		Ambient:  mount(Ambient(), vp),
		Secondary: lo.Map(Particles(m), func(c ParticleConfig, _ int) Group {
			return mount(c, vp)
		}),
	}
}

// Groups returns the ambient group followed by the secondary groups.
func (s Scene) Groups() []Group {
	return append([]Group{s.Ambient}, s.Secondary...)
}

// clone returns a deep copy of s so callers cannot reach the stage's scenes.
func (s Scene) clone() Scene {
	s.Ambient = s.Ambient.clone()
	s.Secondary = lo.Map(s.Secondary, func(g Group, _ int) Group {
		return g.clone()
	})
	return s
}

func (g Group) clone() Group {
	g.Config = g.Config.clone()
	g.Particles = slices.Clone(g.Particles)
	return g
}

func mount(c ParticleConfig, vp Viewport) Group {
	c.Keyframes = lo.Map(c.Keyframes, func(k Keyframe, _ int) Keyframe {
		k.X = vp.resolve(k.X)
		k.Y = vp.resolve(k.Y)
		return k
	})

	grid := Grid{RowWidth: c.RowWidth, Rows: c.Rows()}
	particles := make([]Particle, c.Count)
	for i := range particles {
		cell := Place(i, c.RowWidth)
		left, top := grid.Position(cell)
		particles[i] = Particle{
			Index: i,
			Cell:  cell,
			Left:  left,
			Top:   top,
			Delay: c.Delay(i),
		}
	}
	return Group{Config: c, Particles: particles}
}

// resolve converts a viewport-fraction length into pixels when the width is
// known, or into vw units otherwise.
func (vp Viewport) resolve(l Length) Length {
	if l.Unit != VW {
		return l
	}
	if vp.Width > 0 {
		return px(l.Value * float64(vp.Width))
	}
	return Length{Value: l.Value * 100, Unit: VW}
}
