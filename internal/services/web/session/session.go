// Package session keeps per-visitor UI state keyed by a browser cookie.
package session

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/boyalintegrated/boyalintegrated.com/internal/platform/id"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/chat"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/forms"
)

// CookieName is the visitor session cookie.
const CookieName = "bis_session"

// State is the interactive UI state for one visitor: the form drafts and
// the chat session. Page navigation itself lives in the URL.
type State struct {
	mu sync.Mutex

	Booking forms.BookingForm
	Contact forms.ContactForm
	Chat    *chat.Session

	lastSeen time.Time
}

// WithLock runs fn while holding the state lock.
func (s *State) WithLock(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// Registry tracks visitor states in memory.
type Registry struct {
	mu     sync.Mutex
	states map[string]*State

	chatAvailable bool
	ttl           time.Duration
	now           func() time.Time
}

// NewRegistry builds a registry. chatAvailable seeds new chat sessions.
func NewRegistry(chatAvailable bool) *Registry {
	return &Registry{
		states:        make(map[string]*State),
		chatAvailable: chatAvailable,
		ttl:           12 * time.Hour,
		now:           time.Now,
	}
}

// Ensure returns the visitor's state, minting a session cookie when absent.
func (r *Registry) Ensure(w http.ResponseWriter, req *http.Request) *State {
	sessionID, ok := readCookie(req)
	if !ok {
		sessionID = newSessionID()
		writeCookie(w, req, sessionID)
		// Later Ensure calls in the same request must resolve to the
		// same state, so the minted cookie is attached to the request too.
		req.AddCookie(&http.Cookie{Name: CookieName, Value: sessionID})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state, exists := r.states[sessionID]
	if !exists {
		state = &State{Chat: chat.NewSession(r.chatAvailable)}
		r.states[sessionID] = state
	}
	state.lastSeen = r.now()
	return state
}

// Prune drops states idle past the TTL and returns how many were removed.
func (r *Registry) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for sessionID, state := range r.states {
		if state.lastSeen.Before(cutoff) {
			delete(r.states, sessionID)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// newSessionID mints a random identifier, falling back to an
// arrival-time key when the entropy source fails.
func newSessionID() string {
	sessionID, err := id.NewID()
	if err != nil {
		return fmt.Sprintf("t%d", time.Now().UnixNano())
	}
	return sessionID
}

func readCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

func writeCookie(w http.ResponseWriter, r *http.Request, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
