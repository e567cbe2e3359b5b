package concurrency

import "sync"

// Guard tracks in-progress operations by key so a second concurrent
// invocation for the same key can be rejected instead of queued.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewGuard creates a new Guard
func NewGuard() *Guard {
	return &Guard{active: make(map[string]struct{})}
}

// Acquire marks the key as in progress. Returns false if it already is.
func (g *Guard) Acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

// Release clears the key.
func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}
