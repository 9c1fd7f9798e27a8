package mood

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticlesNamedMoods(t *testing.T) {
	for _, m := range All {
		t.Run(string(m), func(t *testing.T) {
			layer := Particles(m)
			require.False(t, layer.Empty())
			for _, c := range layer {
				assert.True(t, c.Valid(), "group %q", c.Name)
				assert.Positive(t, c.Count)
				assert.NotEmpty(t, c.Keyframes)
				assert.True(t, c.Repeat)
			}
		})
	}
}

func TestParticlesDefaultHasNoLayer(t *testing.T) {
	assert.True(t, Particles(Default).Empty())
	assert.True(t, Particles(Mood("unknown")).Empty())
}

func TestParticlesRomantic(t *testing.T) {
	layer := Particles(Romantic)
	require.Len(t, layer, 1)
	hearts := layer[0]
	assert.Equal(t, "♥", hearts.Glyph)
	assert.Equal(t, 48, hearts.Count)
	assert.Equal(t, 25*time.Second, hearts.Duration)
	assert.True(t, hearts.Repeat)
}

func TestParticlesSad(t *testing.T) {
	layer := Particles(Sad)
	require.Len(t, layer, 2)

	assert.Equal(t, "raindrops", layer[0].Name)
	assert.Equal(t, 100, layer[0].Count)
	assert.Equal(t, 2*time.Second, layer[0].Duration)

	assert.Equal(t, "clouds", layer[1].Name)
	assert.Equal(t, 24, layer[1].Count)
	assert.Equal(t, 30*time.Second, layer[1].Duration)
}

func TestParticlesReturnsCopies(t *testing.T) {
	first := Particles(Party)
	first[0].Count = 1
	first[0].Keyframes[0].Opacity = 42

	second := Particles(Party)
	assert.Equal(t, 60, second[0].Count)
	assert.NotEqual(t, 42.0, second[0].Keyframes[0].Opacity)
	assert.Equal(t, Particles(Party), second)
}

func TestAmbient(t *testing.T) {
	a := Ambient()
	assert.True(t, a.Valid())
	assert.Equal(t, "♪", a.Glyph)
	assert.True(t, a.Repeat)
	assert.Equal(t, 4, a.Rows())
}

func TestKeyframeOffsetsAscend(t *testing.T) {
	configs := []ParticleConfig{Ambient()}
	for _, m := range All {
		configs = append(configs, Particles(m)...)
	}
	for _, c := range configs {
		assert.Equal(t, 0.0, c.Keyframes[0].Offset, "group %q", c.Name)
		assert.Equal(t, 1.0, c.Keyframes[len(c.Keyframes)-1].Offset, "group %q", c.Name)
		for i := 1; i < len(c.Keyframes); i++ {
			assert.Greater(t, c.Keyframes[i].Offset, c.Keyframes[i-1].Offset, "group %q", c.Name)
		}
	}
}

func TestDelay(t *testing.T) {
	c := ParticleConfig{Stagger: 250 * time.Millisecond}
	assert.Equal(t, time.Duration(0), c.Delay(0))
	assert.Equal(t, time.Second, c.Delay(4))
}

func TestLengthString(t *testing.T) {
	assert.Equal(t, "0", Length{}.String())
	assert.Equal(t, "-100vh", vh(-100).String())
	assert.Equal(t, "20px", px(20).String())
	assert.Equal(t, "7.5px", Length{Value: 7.5}.String())
}

func TestParticlesHappy(t *testing.T) {
	layer := Particles(Happy)
	require.Len(t, layer, 2)

	assert.Equal(t, "suns", layer[0].Name)
	assert.Equal(t, "☀", layer[0].Glyph)
	assert.Equal(t, "sparkles", layer[1].Name)
	assert.Equal(t, "✦", layer[1].Glyph)
	assert.Equal(t, 40, layer[1].Count)
}

func TestParticleColors(t *testing.T) {
	hearts := Particles(Romantic)[0]
	assert.Equal(t, "#f43f5e", hearts.Color.Hex())
	assert.Equal(t, "rgba(244, 63, 94, 0.6)", RGBA(hearts.Color, hearts.Alpha))
}
