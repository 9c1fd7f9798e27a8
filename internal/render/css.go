// Package render turns composed mood scenes into CSS.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/justestif/moodjukebox/internal/mood"
)

// timingFunctions maps easing names to CSS timing functions.
var timingFunctions = map[mood.Easing]string{
	mood.Linear:    "linear",
	mood.EaseIn:    "cubic-bezier(0.42, 0, 1, 1)",
	mood.EaseOut:   "cubic-bezier(0, 0, 0.58, 1)",
	mood.EaseInOut: "cubic-bezier(0.42, 0, 0.58, 1)",
}

// TimingFunction returns the CSS timing function for e, falling back to linear.
func TimingFunction(e mood.Easing) string {
	if fn, ok := timingFunctions[e]; ok {
		return fn
	}
	return "linear"
}

// AnimationName is the @keyframes name for a group mounted in a scene.
func AnimationName(s mood.Scene, g mood.Group) string {
	return "mj-" + s.Key + "-" + g.Config.Name
}

// Keyframes renders one @keyframes block.
func Keyframes(name string, frames []mood.Keyframe) string {
	var sb strings.Builder
	sb.WriteString("@keyframes ")
	sb.WriteString(name)
	sb.WriteString(" {\n")
	for _, k := range frames {
		fmt.Fprintf(&sb, "  %s%% { transform: translate(%s, %s) rotate(%sdeg) scale(%s); opacity: %s; }\n",
			num(k.Offset*100), k.X, k.Y, num(k.Rotate), num(k.Scale), num(k.Opacity))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Stylesheet renders the keyframes for every group in the scene.
func Stylesheet(s mood.Scene) string {
	blocks := lo.Map(s.Groups(), func(g mood.Group, _ int) string {
		return Keyframes(AnimationName(s, g), g.Config.Keyframes)
	})
	return strings.Join(blocks, "")
}

// Animation renders the animation shorthand for one particle.
func Animation(name string, c mood.ParticleConfig, delay time.Duration) string {
	iterations := "1"
	if c.Repeat {
		iterations = "infinite"
	}
	return fmt.Sprintf("%s %s %s %s %s both", name, seconds(c.Duration), TimingFunction(c.Easing), seconds(delay), iterations)
}

// ParticleStyle renders the inline style of one particle.
func ParticleStyle(s mood.Scene, g mood.Group, p mood.Particle) string {
	parts := []string{
		"left: " + num(p.Left) + "%",
		"top: " + num(p.Top) + "%",
		"animation: " + Animation(AnimationName(s, g), g.Config, p.Delay),
	}
	if g.Config.FontSize > 0 {
		parts = append(parts, "font-size: "+num(g.Config.FontSize)+"rem")
	}
	if g.Config.Alpha > 0 {
		parts = append(parts, "color: "+mood.RGBA(g.Config.Color, g.Config.Alpha))
	}
	return strings.Join(parts, "; ")
}

// FadeOffset renders a negative animation-delay that starts a cross-fade
// animation elapsed into its run.
func FadeOffset(elapsed time.Duration) string {
	if elapsed <= 0 {
		return "animation-delay: 0s"
	}
	return "animation-delay: " + seconds(-elapsed)
}

// num formats f with at most four decimals.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*1e4)/1e4, 'f', -1, 64)
}

func seconds(d time.Duration) string {
	return num(d.Seconds()) + "s"
}
