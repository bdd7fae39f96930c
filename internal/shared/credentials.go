package shared

import "sync"

// Credentials holds the process-wide API key for the speech and translation
// capability. It starts empty and can be set from configuration at boot or
// from a client start request; later sets simply replace the key.
type Credentials struct {
	mu  sync.RWMutex
	key string
}

func NewCredentials(key string) *Credentials {
	return &Credentials{key: key}
}

func (c *Credentials) Set(key string) {
	c.mu.Lock()
	c.key = key
	c.mu.Unlock()
}

func (c *Credentials) Get() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key, c.key != ""
}

func (c *Credentials) IsSet() bool {
	_, ok := c.Get()
	return ok
}
