// Package cooldown rate-limits command invocations per user. Cooldowns are a
// caller concern: a failed action still burns its cooldown, and some actions
// deliberately share one bucket (steal and bankrob both draw from ActionRob).
package cooldown

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Action keys. Steal and bankrob share ActionRob on purpose: one heist
// attempt of either kind per window.
const (
	ActionRob  = "rob"
	ActionWork = "work"
)

// Default windows.
const (
	RobCooldown  = 120 * time.Minute
	WorkCooldown = 15 * time.Minute
)

// DefaultCacheSize bounds how many (user, action) entries are tracked.
// Evicted entries simply forget their cooldown, which only ever favors the
// user.
const DefaultCacheSize = 4096

// Tracker remembers the last use of each (user, action) pair in a bounded
// LRU cache.
type Tracker struct {
	cache *lru.Cache[string, time.Time]
	now   func() time.Time
}

// NewTracker creates a Tracker holding at most size entries.
func NewTracker(size int) (*Tracker, error) {
	cache, err := lru.New[string, time.Time](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cooldown cache: %w", err)
	}
	return &Tracker{cache: cache, now: time.Now}, nil
}

func key(userID, action string) string {
	return userID + ":" + action
}

// Try attempts to use an action. When the action is off cooldown it records
// the use and returns (0, true); otherwise it returns the remaining wait and
// false without extending the window.
func (t *Tracker) Try(userID, action string, window time.Duration) (time.Duration, bool) {
	k := key(userID, action)
	if last, ok := t.cache.Get(k); ok {
		elapsed := t.now().Sub(last)
		if elapsed < window {
			return window - elapsed, false
		}
	}
	t.cache.Add(k, t.now())
	return 0, true
}

// Reset clears a user's cooldown for an action.
func (t *Tracker) Reset(userID, action string) {
	t.cache.Remove(key(userID, action))
}
