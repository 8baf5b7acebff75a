package session

import (
	"strconv"
	"sync"
	"time"
)

// Registry keeps live sessions in memory, keyed by an opaque id. Nothing is
// persisted; a session lives exactly as long as the process, or until it is
// closed.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	seq      uint64
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Open registers a new session for s and returns its id.
func (r *Registry) Open(s *Session) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatUint(r.seq, 36)
	r.sessions[id] = s
	return id
}

// Get looks up a session by id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Close drops the session. Closing an unknown id is a no-op.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len reports how many sessions are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
