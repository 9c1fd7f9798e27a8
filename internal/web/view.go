package web

import (
	"html/template"
	"time"

	"github.com/samber/lo"

	"github.com/justestif/moodjukebox/internal/mood"
	"github.com/justestif/moodjukebox/internal/render"
)

// newBackgroundData converts a stage frame into template data. The outgoing
// scene, if any, comes first so the incoming one paints over it. A settled
// frame mounts the current scene without a fade; a frame caught mid-fade
// resumes both fades where they are instead of restarting them.
func newBackgroundData(f mood.Frame) BackgroundData {
	if f.Outgoing == nil {
		return BackgroundData{Scenes: []SceneData{newSceneData(f.Current, sceneSettled, 0)}}
	}
	return BackgroundData{Scenes: []SceneData{
		newSceneData(*f.Outgoing, sceneExiting, f.Elapsed),
		newSceneData(f.Current, sceneEntering, f.Elapsed),
	}}
}

type sceneState int

const (
	sceneSettled sceneState = iota
	sceneEntering
	sceneExiting
)

func newSceneData(s mood.Scene, state sceneState, elapsed time.Duration) SceneData {
	var fade template.CSS
	if state != sceneSettled {
		fade = template.CSS(render.FadeOffset(elapsed))
	}
	return SceneData{
		Key:           s.Key,
		Mood:          s.Mood.Key(),
		Class:         s.Gradient.Class(),
		Entering:      state == sceneEntering,
		Exiting:       state == sceneExiting,
		FadeStyle:     fade,
		GradientStyle: template.CSS("background-image: " + s.Gradient.CSS()),
		Stylesheet:    template.CSS(render.Stylesheet(s)), //nolint:gosec // Generated from fixed tables
		Groups: lo.Map(s.Groups(), func(g mood.Group, _ int) GroupData {
			return GroupData{
				Name:  g.Config.Name,
				Glyph: g.Config.Glyph,
				Particles: lo.Map(g.Particles, func(p mood.Particle, _ int) template.CSS {
					return template.CSS(render.ParticleStyle(s, g, p)) //nolint:gosec // Generated from fixed tables
				}),
			}
		}),
	}
}

// moodLinks lists every mood, default first, for the picker.
func moodLinks(current mood.Mood) []MoodLink {
	all := append([]mood.Mood{mood.Default}, mood.All...)
	return lo.Map(all, func(m mood.Mood, _ int) MoodLink {
		g := mood.Gradient(m)
		return MoodLink{
			Key:    m.Key(),
			Label:  m.Label(),
			Active: m == current,
			Swatch: template.CSS("background-image: " + g.CSS()),
		}
	})
}
