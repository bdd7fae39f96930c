package livestream

import (
	"sync"
	"sync/atomic"
)

// Session is one continuous transcription run for a single live channel.
// It is created by the registry and mutated only by its own orchestration
// loop, except for Stop.
type Session struct {
	channelID     string
	politicalOnly bool

	running atomic.Bool
	stopped sync.Once
	done    chan struct{}

	mu        sync.RWMutex
	streamURL string
	chunk     int64
}

func newSession(channelID string, politicalOnly bool) *Session {
	s := &Session{
		channelID:     channelID,
		politicalOnly: politicalOnly,
		done:          make(chan struct{}),
	}
	s.running.Store(true)
	return s
}

func (s *Session) ChannelID() string {
	return s.channelID
}

func (s *Session) PoliticalOnly() bool {
	return s.politicalOnly
}

func (s *Session) Running() bool {
	return s.running.Load()
}

// Done is closed when a stop has been requested, so pauses can be cut short.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Stop requests cooperative shutdown. The loop observes it at the top of its
// next iteration; in-flight external work for the current chunk finishes.
func (s *Session) Stop() {
	s.stopped.Do(func() {
		s.running.Store(false)
		close(s.done)
	})
}

func (s *Session) StreamURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.streamURL
}

func (s *Session) SetStreamURL(url string) {
	s.mu.Lock()
	s.streamURL = url
	s.mu.Unlock()
}

func (s *Session) Chunk() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chunk
}

func (s *Session) NextChunk() {
	s.mu.Lock()
	s.chunk++
	s.mu.Unlock()
}
