// Package preview draws a mood's background in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justestif/moodjukebox/internal/mood"
)

// DefaultWidth is the swatch width used when none is given.
const DefaultWidth = 48

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f8fafc")).
			Background(lipgloss.Color("#020617")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	groupStyle = lipgloss.NewStyle().
			Bold(true)
)

// Render returns the preview of m: header, gradient swatch, and the particle
// grid of every layer. Unknown moods render the default preview.
func Render(m mood.Mood, width int) string {
	if width <= 1 {
		width = DefaultWidth
	}

	scene := mood.Compose(m, mood.Viewport{})

	sections := []string{
		titleStyle.Render("♫ MoodJukebox"),
		labelStyle.Render(fmt.Sprintf("Mood: %s  %s", scene.Mood.Label(), scene.Gradient.Class())),
		Swatch(scene.Gradient, width),
	}
	for _, g := range scene.Groups() {
		sections = append(sections, "", Group(g))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Swatch draws the gradient as a row of width colored cells.
func Swatch(g mood.GradientStyle, width int) string {
	var sb strings.Builder
	for i := 0; i < width; i++ {
		t := float64(i) / float64(width-1)
		cell := lipgloss.NewStyle().Background(lipgloss.Color(g.Blend(t).Hex()))
		sb.WriteString(cell.Render(" "))
	}
	return sb.String()
}

// Group describes a particle group and draws its placement grid.
func Group(g mood.Group) string {
	c := g.Config
	loop := "once"
	if c.Repeat {
		loop = "loop"
	}
	header := groupStyle.
		Foreground(lipgloss.Color(glyphHex(c))).
		Render(fmt.Sprintf("%s %s ×%d", c.Name, c.Glyph, c.Count))
	detail := labelStyle.Render(fmt.Sprintf("%s %s stagger %s %s", c.Duration, c.Easing, c.Stagger, loop))

	rows := make([][]string, c.Rows())
	for i := range rows {
		rows[i] = make([]string, c.RowWidth)
		for j := range rows[i] {
			rows[i][j] = "·"
		}
	}
	for _, p := range g.Particles {
		rows[p.Cell.Row][p.Cell.Col] = c.Glyph
	}

	lines := []string{header + " " + detail}
	for _, row := range rows {
		lines = append(lines, strings.Join(row, " "))
	}
	return strings.Join(lines, "\n")
}

// glyphHex is the hex color of a group's glyphs, white when uncolored.
func glyphHex(c mood.ParticleConfig) string {
	if c.Alpha <= 0 {
		return "#ffffff"
	}
	return c.Color.Hex()
}
