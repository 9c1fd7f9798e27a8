package mood

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// palette holds the concrete colors behind the stop names.
var palette = map[string]string{
	"rose-950":    "#4c0519",
	"pink-950":    "#500724",
	"yellow-950":  "#422006",
	"amber-950":   "#451a03",
	"blue-950":    "#172554",
	"indigo-950":  "#1e1b4b",
	"green-950":   "#052e16",
	"emerald-950": "#022c22",
	"purple-950":  "#3b0764",
	"fuchsia-950": "#4a044e",
	"slate-900":   "#0f172a",
	"slate-800":   "#1e293b",
}

// ColorStop is one end of a gradient.
type ColorStop struct {
	Name    string  // Palette token, e.g. "rose-950"
	Opacity float64 // 0..1
}

// Token returns the utility token, e.g. "rose-950/30".
func (c ColorStop) Token() string {
	if c.Opacity >= 1 {
		return c.Name
	}
	return c.Name + "/" + strconv.Itoa(int(c.Opacity*100+0.5))
}

// Color resolves the stop to a concrete color, ignoring opacity.
// Unknown names resolve to black.
func (c ColorStop) Color() colorful.Color {
	hex, ok := palette[c.Name]
	if !ok {
		return colorful.Color{}
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return col
}

// RGBA returns a CSS rgba() expression for the stop.
func (c ColorStop) RGBA() string {
	return RGBA(c.Color(), c.Opacity)
}

// RGBA formats col with the given alpha as a CSS rgba() expression.
func RGBA(col colorful.Color, alpha float64) string {
	r, g, b := col.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// GradientStyle is the background gradient for a mood.
type GradientStyle struct {
	From ColorStop
	To   ColorStop
}

// Class returns the gradient as a pair of utility class tokens.
func (g GradientStyle) Class() string {
	return "from-" + g.From.Token() + " to-" + g.To.Token()
}

// CSS returns the gradient as a CSS background-image value.
func (g GradientStyle) CSS() string {
	return fmt.Sprintf("linear-gradient(to bottom right, %s, %s)", g.From.RGBA(), g.To.RGBA())
}

// Blend returns the color t of the way from From to To (t in 0..1),
// with both stops composited over the default background.
func (g GradientStyle) Blend(t float64) colorful.Color {
	base := gradients[Default].From.Color()
	from := base.BlendRgb(g.From.Color(), g.From.Opacity)
	to := base.BlendRgb(g.To.Color(), g.To.Opacity)
	return from.BlendLab(to, t).Clamped()
}

func stop(name string, opacity float64) ColorStop {
	return ColorStop{Name: name, Opacity: opacity}
}

// gradients is keyed by every Mood including Default.
var gradients = map[Mood]GradientStyle{
	Default:      {From: stop("slate-900", 1), To: stop("slate-800", 1)},
	Romantic:     {From: stop("rose-950", 0.3), To: stop("pink-950", 0.3)},
	Happy:        {From: stop("yellow-950", 0.3), To: stop("amber-950", 0.3)},
	Sad:          {From: stop("blue-950", 0.3), To: stop("indigo-950", 0.3)},
	Motivational: {From: stop("green-950", 0.3), To: stop("emerald-950", 0.3)},
	Party:        {From: stop("purple-950", 0.3), To: stop("fuchsia-950", 0.3)},
}

// Gradient returns the gradient for m. Unknown moods get the default gradient.
func Gradient(m Mood) GradientStyle {
	if g, ok := gradients[m]; ok {
		return g
	}
	return gradients[Default]
}
