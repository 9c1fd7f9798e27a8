// Package mood maps a listening mood to the presentation of the player
// background: a gradient and the particle layers drawn over it.
package mood

import "strings"

// Mood is the theme selected by whoever is driving the player.
type Mood string

// Known moods. Default is the unset state.
const (
	Default      Mood = ""
	Romantic     Mood = "romantic"
	Happy        Mood = "happy"
	Sad          Mood = "sad"
	Motivational Mood = "motivational"
	Party        Mood = "party"
)

// All lists the named moods in display order. Default is not included.
var All = []Mood{Romantic, Happy, Sad, Motivational, Party}

// Parse maps arbitrary input onto the closed mood set.
// Empty or unrecognized values become Default.
func Parse(s string) Mood {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if m.Known() {
		return m
	}
	return Default
}

// Known reports whether m is one of the named moods.
func (m Mood) Known() bool {
	switch m {
	case Romantic, Happy, Sad, Motivational, Party:
		return true
	}
	return false
}

// Key is the identifier used for mounting: the mood name, or "default".
func (m Mood) Key() string {
	if !m.Known() {
		return "default"
	}
	return string(m)
}

// Label returns a capitalized display name.
func (m Mood) Label() string {
	k := m.Key()
	return strings.ToUpper(k[:1]) + k[1:]
}
