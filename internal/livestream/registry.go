package livestream

import "sync"

// Registry is the process-wide map from channel identifier to its running
// session. It enforces at most one session per channel; everything else the
// sessions own privately, so this mutex is the only synchronization in the
// pipeline. State is in-memory only and resets with the process, which is
// correct because the external capture processes die with it too.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// TryRegister creates and registers a session for the channel. It returns
// false, without touching the existing entry, when one is already present;
// the caller must not start a duplicate loop.
func (r *Registry) TryRegister(channelID string, politicalOnly bool) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[channelID]; exists {
		return nil, false
	}

	sess := newSession(channelID, politicalOnly)
	r.sessions[channelID] = sess
	return sess, true
}

func (r *Registry) Unregister(channelID string) {
	r.mu.Lock()
	delete(r.sessions, channelID)
	r.mu.Unlock()
}

func (r *Registry) IsRunning(channelID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[channelID]
	return ok && sess.Running()
}

// Stop flags the channel's session to shut down. No-op when absent; the
// loop itself unregisters on exit.
func (r *Registry) Stop(channelID string) bool {
	r.mu.Lock()
	sess, ok := r.sessions[channelID]
	r.mu.Unlock()

	if !ok {
		return false
	}
	sess.Stop()
	return true
}

func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) StopAll() {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	for _, s := range sessions {
		s.Stop()
	}
}
