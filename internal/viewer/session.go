package viewer

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an idle visitor keeps their overlay state.
const DefaultSessionTTL = 30 * time.Minute

// surface mirrors the browser's overlay element for one visitor: which
// video is loaded, whether it should be playing, and whether the page
// scroll is locked. The rendered fragment is derived from it.
type surface struct {
	src     string
	playing bool
	locked  bool
}

func (s *surface) Load(src string) { s.src, s.playing = src, false }
func (s *surface) Play() error     { s.playing = true; return nil }
func (s *surface) Stop()           { s.playing = false }
func (s *surface) Lock()           { s.locked = true }
func (s *surface) Unlock()         { s.locked = false }

// Session is one visitor's overlay. Every access goes through Do so that
// a request finishes its state change before another request for the same
// visitor can observe it.
type Session struct {
	ID string

	mu       sync.Mutex
	viewer   *Viewer
	dedup    *Deduper
	surface  *surface
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	s := &surface{}
	return &Session{
		ID:       id,
		viewer:   New(WithPlayer(s), WithScrollLocker(s)),
		dedup:    NewDeduper(DefaultDedupWindow),
		surface:  s,
		lastSeen: now,
	}
}

// Do runs fn with exclusive access to the session's viewer and deduper
// and returns the resulting view.
func (s *Session) Do(fn func(v *Viewer, d *Deduper)) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fn != nil {
		fn(s.viewer, s.dedup)
	}
	view := s.viewer.View()
	view.Autoplay = view.IsVideo && s.surface.playing
	view.ScrollLocked = s.surface.locked
	return view
}

// Registry holds one Session per visitor.
type Registry struct {
	TTL time.Duration
	Now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry returns an empty registry whose sessions expire after ttl of
// inactivity, or DefaultSessionTTL if ttl is zero.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Registry{TTL: ttl, Now: time.Now, sessions: make(map[string]*Session)}
}

// Session returns the live session for id, or a new one with a fresh id
// when id is empty, unknown or expired.
func (r *Registry) Session(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.Now()
	if s, ok := r.sessions[id]; ok && now.Sub(s.lastSeen) < r.TTL {
		s.lastSeen = now
		return s
	}
	if id != "" {
		delete(r.sessions, id)
	}
	s := newSession(uuid.NewString(), now)
	r.sessions[s.ID] = s
	return s
}

// Len returns the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.Now()
	removed := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) >= r.TTL {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("Viewer cleanup: removed %d idle sessions", n)
			}
		}
	}
}
