// Package web provides the HTTP server and web UI for MoodJukebox.
package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/justestif/moodjukebox/internal/mood"
)

const (
	sessionCookieName = "mj_session"
	sessionTTL        = 24 * time.Hour
)

// Session is one display session: a browser tab showing the background.
// Nothing about it outlives the process.
type Session struct {
	ID       string
	Stage    *mood.Stage
	LastSeen time.Time
}

// SessionStore keeps display sessions in memory.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	fade     time.Duration
	now      func() time.Time
}

// NewSessionStore creates a new in-memory session store whose stages
// cross-fade over fade. A nil clock uses time.Now.
func NewSessionStore(fade time.Duration, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		fade:     fade,
		now:      now,
	}
}

// Create starts a new session showing the default scene.
func (s *SessionStore) Create() *Session {
	session := &Session{
		ID:       uuid.NewString(),
		Stage:    mood.NewStage(s.fade, s.now),
		LastSeen: s.now(),
	}

	s.mu.Lock()
	s.pruneLocked()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get retrieves a session by ID and marks it as seen.
func (s *SessionStore) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil
	}

	now := s.now()
	if now.Sub(session.LastSeen) > sessionTTL {
		delete(s.sessions, id)
		return nil
	}

	session.LastSeen = now
	return session
}

// Delete removes a session by ID.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// GetFromRequest extracts the session from the request cookie.
func (s *SessionStore) GetFromRequest(r *http.Request) *Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	return s.Get(cookie.Value)
}

// Resolve returns the request's session, creating one and setting its
// cookie when the request has none.
func (s *SessionStore) Resolve(w http.ResponseWriter, r *http.Request) *Session {
	if session := s.GetFromRequest(r); session != nil {
		return session
	}
	session := s.Create()
	s.SetCookie(w, session)
	return session
}

// SetCookie sets the session cookie on the response.
func (s *SessionStore) SetCookie(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})
}

// ClearCookie removes the session cookie from the response.
func (s *SessionStore) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// pruneLocked drops expired sessions. Callers must hold s.mu.
func (s *SessionStore) pruneLocked() {
	now := s.now()
	for id, session := range s.sessions {
		if now.Sub(session.LastSeen) > sessionTTL {
			delete(s.sessions, id)
		}
	}
}
