package mood

import (
	"sync"
	"time"
)

// CrossFade is how long outgoing and incoming scenes overlap.
const CrossFade = 500 * time.Millisecond

// Frame is what a stage shows at one instant.
type Frame struct {
	Current  Scene
	Outgoing *Scene        // nil once the cross-fade has finished
	Elapsed  time.Duration // time into the cross-fade, zero when settled
	Progress float64       // opacity of Current, 0..1
}

// Scenes returns the visible scenes, outgoing first.
func (f Frame) Scenes() []Scene {
	if f.Outgoing == nil {
		return []Scene{f.Current}
	}
	return []Scene{*f.Outgoing, f.Current}
}

// Stage holds the currently displayed mood and, during a cross-fade, the
// scene it replaced.
type Stage struct {
	mu        sync.Mutex
	fade      time.Duration
	now       func() time.Time
	current   Scene
	outgoing  *Scene
	changedAt time.Time
}

// NewStage returns a stage showing the default scene. A nil clock uses
// time.Now; a non-positive fade uses CrossFade.
func NewStage(fade time.Duration, now func() time.Time) *Stage {
	if fade <= 0 {
		fade = CrossFade
	}
	if now == nil {
		now = time.Now
	}
	return &Stage{
		fade:    fade,
		now:     now,
		current: Compose(Default, Viewport{}),
	}
}

// Mood returns the currently displayed mood.
func (s *Stage) Mood() Mood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Mood
}

// Set switches the stage to m, mounting a fresh scene composed for vp.
// Setting the mood already shown does nothing and returns false. A switch
// during a running cross-fade drops the older outgoing scene.
func (s *Stage) Set(m Mood, vp Viewport) bool {
	if !m.Known() {
		m = Default
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m == s.current.Mood {
		return false
	}

	prev := s.current
	s.outgoing = &prev
	s.current = Compose(m, vp)
	s.changedAt = s.now()
	return true
}

// Frame returns a copy of what is visible now.
func (s *Stage) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outgoing == nil {
		return Frame{Current: s.current.clone(), Progress: 1}
	}

	elapsed := max(s.now().Sub(s.changedAt), 0)
	if elapsed >= s.fade {
		s.outgoing = nil
		return Frame{Current: s.current.clone(), Progress: 1}
	}

	out := s.outgoing.clone()
	return Frame{
		Current:  s.current.clone(),
		Outgoing: &out,
		Elapsed:  elapsed,
		Progress: float64(elapsed) / float64(s.fade),
	}
}
