package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justestif/moodjukebox/internal/mood"
)

func TestRenderRomantic(t *testing.T) {
	out := Render(mood.Romantic, 10)

	assert.Contains(t, out, "MoodJukebox")
	assert.Contains(t, out, "Mood: Romantic")
	assert.Contains(t, out, "from-rose-950/30 to-pink-950/30")
	assert.Contains(t, out, "hearts ♥ ×48")
	assert.Contains(t, out, "notes ♪ ×24")
	assert.Equal(t, 48, strings.Count(out, "♥")-1)
}

func TestRenderDefaultHasOnlyAmbient(t *testing.T) {
	out := Render(mood.Mood("meh"), 0)

	assert.Contains(t, out, "Mood: Default")
	assert.Contains(t, out, "notes ♪")
	assert.NotContains(t, out, "hearts")
	assert.NotContains(t, out, "raindrops")
}

func TestGroupGridFillsCells(t *testing.T) {
	scene := mood.Compose(mood.Sad, mood.Viewport{})
	clouds := Group(scene.Secondary[1])

	lines := strings.Split(clouds, "\n")
	assert.Len(t, lines, 1+6)
	assert.Equal(t, "☁ ☁ ☁ ☁", lines[1])
}

func TestGlyphHex(t *testing.T) {
	hearts := mood.Particles(mood.Romantic)[0]
	assert.Equal(t, "#f43f5e", glyphHex(hearts))

	hearts.Alpha = 0
	assert.Equal(t, "#ffffff", glyphHex(hearts))
}
