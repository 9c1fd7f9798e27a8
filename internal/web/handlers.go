package web

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/hlog"

	"github.com/justestif/moodjukebox/internal/mood"
)

const maxViewportWidth = 16384

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	sessions  *SessionStore
	templates *Templates
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(sessions *SessionStore, templates *Templates) *Handlers {
	return &Handlers{
		sessions:  sessions,
		templates: templates,
	}
}

// Home renders the player page for the requested mood (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	current, frame := h.advance(w, r)

	data := HomePageData{
		PageData: PageData{
			Title:      "MoodJukebox",
			Background: newBackgroundData(frame),
		},
		Current: current,
		Moods:   moodLinks(current),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "home", data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("rendering home")
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// Background renders only the background fragment (GET /background).
// Outgoing and incoming scenes are both included while they cross-fade.
func (h *Handlers) Background(w http.ResponseWriter, r *http.Request) {
	_, frame := h.advance(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.RenderPartial(w, "background", newBackgroundData(frame)); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("rendering background")
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// Reset forgets the display session and redirects home (POST /reset).
func (h *Handlers) Reset(w http.ResponseWriter, r *http.Request) {
	if session := h.sessions.GetFromRequest(r); session != nil {
		h.sessions.Delete(session.ID)
	}

	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Healthz reports liveness (GET /healthz).
func (h *Handlers) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// advance moves the request's stage to the requested mood and returns what
// should be on screen.
func (h *Handlers) advance(w http.ResponseWriter, r *http.Request) (mood.Mood, mood.Frame) {
	session := h.sessions.Resolve(w, r)
	requested := mood.Parse(r.URL.Query().Get("mood"))

	w.Header().Set("Accept-CH", "Sec-CH-Viewport-Width")
	w.Header().Add("Vary", "Sec-CH-Viewport-Width")

	if session.Stage.Set(requested, viewportFromRequest(r)) {
		hlog.FromRequest(r).Debug().
			Str("session", session.ID).
			Str("mood", requested.Key()).
			Msg("mood changed")
	}
	return requested, session.Stage.Frame()
}

// viewportFromRequest reads the display width from the vw query parameter or
// the viewport client hints. An unknown width yields a zero Viewport.
func viewportFromRequest(r *http.Request) mood.Viewport {
	candidates := []string{
		r.URL.Query().Get("vw"),
		r.Header.Get("Sec-CH-Viewport-Width"),
		r.Header.Get("Viewport-Width"),
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		width, err := strconv.Atoi(c)
		if err != nil || width <= 0 || width > maxViewportWidth {
			continue
		}
		return mood.Viewport{Width: width}
	}
	return mood.Viewport{}
}
