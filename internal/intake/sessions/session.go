// Package sessions tracks login state with a signed, encrypted browser
// cookie. Only the user id is stored; the full user row is re-fetched on
// every request that needs identity, so a deleted user is logged out on
// their next access.
package sessions

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "intake_session"
	userIDKey   = "user_id"
)

type Manager struct {
	store *sessions.CookieStore
}

// NewManager derives a signing key and an encryption key from the session
// secret. MaxAge doubles as the idle expiry: securecookie refuses to decode
// cookies older than it, so an expired session reads as anonymous.
func NewManager(secret string, idle time.Duration, secure bool) *Manager {
	auth := sha256.Sum256([]byte("auth:" + secret))
	enc := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(auth[:], enc[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(idle.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}

	return &Manager{store: store}
}

func (m *Manager) get(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, sessionName)
}

// SetUserID marks the session authenticated as the given user.
func (m *Manager) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	s, err := m.get(r)
	if err != nil {
		return err
	}
	s.Values[userIDKey] = userID
	return s.Save(r, w)
}

// UserID returns the authenticated user id, or false for anonymous (including
// expired or tampered cookies).
func (m *Manager) UserID(r *http.Request) (string, bool) {
	s, err := m.get(r)
	if err != nil {
		return "", false
	}
	if v, ok := s.Values[userIDKey].(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// Clear logs the session out.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, err := m.get(r)
	if err != nil {
		return err
	}
	delete(s.Values, userIDKey)
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

// AddFlash queues a one-shot message for the next render (e.g. the generic
// failed-login notice).
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, msg string) error {
	s, err := m.get(r)
	if err != nil {
		return err
	}
	s.AddFlash(msg)
	return s.Save(r, w)
}

// Flashes drains queued messages, saving the session so they show once.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	s, err := m.get(r)
	if err != nil {
		return nil
	}

	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save(r, w)

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
