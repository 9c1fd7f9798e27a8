package mood

import (
	"slices"
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Easing names an animation timing curve.
type Easing string

const (
	Linear    Easing = "linear"
	EaseIn    Easing = "easeIn"
	EaseOut   Easing = "easeOut"
	EaseInOut Easing = "easeInOut"
)

// Unit is the CSS unit of a Length.
type Unit string

const (
	Px Unit = "px"
	VH Unit = "vh"
	VW Unit = "vw" // resolved against the viewport at mount time when known
)

// Length is a keyframe offset.
type Length struct {
	Value float64
	Unit  Unit
}

// String formats the length as CSS, e.g. "-100vh".
func (l Length) String() string {
	if l.Value == 0 {
		return "0"
	}
	unit := l.Unit
	if unit == "" {
		unit = Px
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + string(unit)
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func px(v float64) Length { return Length{Value: v, Unit: Px} }
func vh(v float64) Length { return Length{Value: v, Unit: VH} }
func vw(v float64) Length { return Length{Value: v, Unit: VW} }

// Keyframe is one point on a particle's motion path.
type Keyframe struct {
	Offset  float64 // 0..1 within the cycle
	X, Y    Length
	Rotate  float64 // degrees
	Scale   float64
	Opacity float64
}

// ParticleConfig describes one group of identical animated glyphs.
type ParticleConfig struct {
	Name      string
	Glyph     string
	Count     int
	Keyframes []Keyframe
	Duration  time.Duration
	Stagger   time.Duration // delay added per particle index
	Easing    Easing
	Repeat    bool // loop forever
	RowWidth  int  // particles per grid row
	FontSize  float64
	Color     colorful.Color
	Alpha     float64 // opacity of Color; zero leaves the glyph uncolored
}

// Rows is the number of grid rows needed for Count particles.
func (c ParticleConfig) Rows() int {
	if c.RowWidth <= 0 {
		return 0
	}
	return (c.Count + c.RowWidth - 1) / c.RowWidth
}

// Delay is the animation delay for the particle at index i.
func (c ParticleConfig) Delay(i int) time.Duration {
	return time.Duration(i) * c.Stagger
}

// Valid reports whether the config can be rendered.
func (c ParticleConfig) Valid() bool {
	return c.Glyph != "" && c.Count > 0 && len(c.Keyframes) > 0 &&
		c.Duration > 0 && c.Stagger >= 0 && c.RowWidth > 0
}

func (c ParticleConfig) clone() ParticleConfig {
	c.Keyframes = slices.Clone(c.Keyframes)
	return c
}

// Layer is the ordered set of particle groups drawn for a mood.
// An empty Layer means nothing is drawn.
type Layer []ParticleConfig

// Empty reports whether the layer draws nothing.
func (l Layer) Empty() bool { return len(l) == 0 }

func (l Layer) clone() Layer {
	if l == nil {
		return nil
	}
	out := make(Layer, len(l))
	for i, c := range l {
		out[i] = c.clone()
	}
	return out
}

var ambient = ParticleConfig{
	Name:  "notes",
	Glyph: "♪",
	Count: 24,
	Keyframes: []Keyframe{
		{Offset: 0, Y: vh(0), Rotate: 0, Scale: 1, Opacity: 0},
		{Offset: 0.1, Y: vh(-10), Rotate: 20, Scale: 1, Opacity: 0.15},
		{Offset: 0.9, Y: vh(-90), Rotate: 340, Scale: 1, Opacity: 0.15},
		{Offset: 1, Y: vh(-100), Rotate: 360, Scale: 1, Opacity: 0},
	},
	Duration: 20 * time.Second,
	Stagger:  800 * time.Millisecond,
	Easing:   Linear,
	Repeat:   true,
	RowWidth: 6,
	FontSize: 1.5,
	Color:    rgb(255, 255, 255),
	Alpha:    0.5,
}

// Ambient returns the floating-note layer that is drawn for every mood.
func Ambient() ParticleConfig {
	return ambient.clone()
}

// layers is keyed by every Mood including Default.
var layers = map[Mood]Layer{
	Default: nil,
	Romantic: {{
		Name:  "hearts",
		Glyph: "♥",
		Count: 48,
		Keyframes: []Keyframe{
			{Offset: 0, Y: vh(0), Rotate: 0, Scale: 0.5, Opacity: 0},
			{Offset: 0.5, Y: vh(-50), X: px(20), Rotate: 15, Scale: 1, Opacity: 0.6},
			{Offset: 1, Y: vh(-100), X: px(-20), Rotate: -15, Scale: 0.5, Opacity: 0},
		},
		Duration: 25 * time.Second,
		Stagger:  500 * time.Millisecond,
		Easing:   EaseInOut,
		Repeat:   true,
		RowWidth: 8,
		FontSize: 1.25,
		Color:    rgb(244, 63, 94),
		Alpha:    0.6,
	}},
	Happy: {
		{
			Name:  "suns",
			Glyph: "☀",
			Count: 6,
			Keyframes: []Keyframe{
				{Offset: 0, Rotate: 0, Scale: 0.9, Opacity: 0.2},
				{Offset: 0.5, Rotate: 180, Scale: 1.1, Opacity: 0.45},
				{Offset: 1, Rotate: 360, Scale: 0.9, Opacity: 0.2},
			},
			Duration: 20 * time.Second,
			Stagger:  3 * time.Second,
			Easing:   Linear,
			Repeat:   true,
			RowWidth: 3,
			FontSize: 4,
			Color:    rgb(253, 224, 71),
			Alpha:    0.5,
		},
		{
			Name:  "sparkles",
			Glyph: "✦",
			Count: 40,
			Keyframes: []Keyframe{
				{Offset: 0, Rotate: 0, Scale: 0, Opacity: 0},
				{Offset: 0.5, Rotate: 180, Scale: 1.2, Opacity: 0.8},
				{Offset: 1, Rotate: 360, Scale: 0, Opacity: 0},
			},
			Duration: 6 * time.Second,
			Stagger:  150 * time.Millisecond,
			Easing:   EaseInOut,
			Repeat:   true,
			RowWidth: 8,
			FontSize: 1,
			Color:    rgb(250, 204, 21),
			Alpha:    0.7,
		},
	},
	Sad: {
		{
			Name:  "raindrops",
			Glyph: "💧",
			Count: 100,
			Keyframes: []Keyframe{
				{Offset: 0, Y: vh(-10), Scale: 1, Opacity: 0},
				{Offset: 0.1, Y: vh(0), Scale: 1, Opacity: 0.5},
				{Offset: 1, Y: vh(100), Scale: 1, Opacity: 0},
			},
			Duration: 2 * time.Second,
			Stagger:  20 * time.Millisecond,
			Easing:   EaseIn,
			Repeat:   true,
			RowWidth: 20,
			FontSize: 0.75,
			Color:    rgb(96, 165, 250),
			Alpha:    0.5,
		},
		{
			Name:  "clouds",
			Glyph: "☁",
			Count: 24,
			Keyframes: []Keyframe{
				{Offset: 0, X: px(-100), Scale: 1, Opacity: 0},
				{Offset: 0.2, X: px(-60), Scale: 1, Opacity: 0.3},
				{Offset: 0.8, X: px(60), Scale: 1, Opacity: 0.3},
				{Offset: 1, X: px(100), Scale: 1, Opacity: 0},
			},
			Duration: 30 * time.Second,
			Stagger:  1250 * time.Millisecond,
			Easing:   Linear,
			Repeat:   true,
			RowWidth: 4,
			FontSize: 3,
			Color:    rgb(148, 163, 184),
			Alpha:    0.4,
		},
	},
	Motivational: {{
		Name:  "flames",
		Glyph: "🔥",
		Count: 36,
		Keyframes: []Keyframe{
			{Offset: 0, Y: vh(10), Scale: 0.6, Opacity: 0},
			{Offset: 0.3, Y: vh(0), Scale: 1.1, Opacity: 0.7},
			{Offset: 1, Y: vh(-40), Scale: 0.4, Opacity: 0},
		},
		Duration: 4 * time.Second,
		Stagger:  100 * time.Millisecond,
		Easing:   EaseOut,
		Repeat:   true,
		RowWidth: 12,
		FontSize: 1.5,
		Color:    rgb(249, 115, 22),
		Alpha:    0.7,
	}},
	Party: {
		{
			Name:  "confetti",
			Glyph: "■",
			Count: 60,
			Keyframes: []Keyframe{
				{Offset: 0, Y: vh(-10), Rotate: 0, Scale: 1, Opacity: 1},
				{Offset: 1, Y: vh(110), Rotate: 720, Scale: 1, Opacity: 0.2},
			},
			Duration: 5 * time.Second,
			Stagger:  80 * time.Millisecond,
			Easing:   Linear,
			Repeat:   true,
			RowWidth: 12,
			FontSize: 0.6,
			Color:    rgb(217, 70, 239),
			Alpha:    0.8,
		},
		{
			Name:  "fireworks",
			Glyph: "✺",
			Count: 12,
			Keyframes: []Keyframe{
				{Offset: 0, X: vw(0), Scale: 0, Opacity: 0},
				{Offset: 0.4, X: vw(0.5), Scale: 1.5, Opacity: 1},
				{Offset: 1, X: vw(1), Scale: 2.5, Opacity: 0},
			},
			Duration: 3 * time.Second,
			Stagger:  250 * time.Millisecond,
			Easing:   EaseOut,
			Repeat:   true,
			RowWidth: 4,
			FontSize: 2,
			Color:    rgb(192, 132, 252),
			Alpha:    0.9,
		},
	},
}

// Particles returns the mood-specific layer for m. Default and unknown
// moods return an empty layer.
func Particles(m Mood) Layer {
	return layers[m].clone()
}
