package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTracker returns a tracker on a fake clock plus the function to
// advance it.
func newTestTracker(t *testing.T) (*Tracker, func(time.Duration)) {
	t.Helper()

	tracker, err := NewTracker(DefaultCacheSize)
	require.NoError(t, err)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return now }
	return tracker, func(d time.Duration) { now = now.Add(d) }
}

func TestTry(t *testing.T) {
	tracker, advance := newTestTracker(t)

	remaining, ok := tracker.Try("alice", ActionWork, WorkCooldown)
	assert.True(t, ok)
	assert.Zero(t, remaining)

	// Immediately blocked for the full window.
	remaining, ok = tracker.Try("alice", ActionWork, WorkCooldown)
	assert.False(t, ok)
	assert.Equal(t, WorkCooldown, remaining)

	advance(WorkCooldown - time.Second)
	remaining, ok = tracker.Try("alice", ActionWork, WorkCooldown)
	assert.False(t, ok)
	assert.Equal(t, time.Second, remaining)

	advance(time.Second)
	_, ok = tracker.Try("alice", ActionWork, WorkCooldown)
	assert.True(t, ok)
}

func TestTry_FailedAttemptDoesNotExtendWindow(t *testing.T) {
	tracker, advance := newTestTracker(t)

	_, ok := tracker.Try("alice", ActionWork, WorkCooldown)
	require.True(t, ok)

	// Hammering the command while blocked must not push the expiry out.
	advance(WorkCooldown / 2)
	_, ok = tracker.Try("alice", ActionWork, WorkCooldown)
	require.False(t, ok)

	advance(WorkCooldown / 2)
	_, ok = tracker.Try("alice", ActionWork, WorkCooldown)
	assert.True(t, ok)
}

func TestTry_UsersAreIndependent(t *testing.T) {
	tracker, _ := newTestTracker(t)

	_, ok := tracker.Try("alice", ActionRob, RobCooldown)
	require.True(t, ok)

	_, ok = tracker.Try("bob", ActionRob, RobCooldown)
	assert.True(t, ok)
}

func TestTry_ActionsAreIndependent(t *testing.T) {
	tracker, _ := newTestTracker(t)

	_, ok := tracker.Try("alice", ActionRob, RobCooldown)
	require.True(t, ok)

	// Working is not a crime.
	_, ok = tracker.Try("alice", ActionWork, WorkCooldown)
	assert.True(t, ok)
}

func TestTry_SharedRobBucket(t *testing.T) {
	tracker, _ := newTestTracker(t)

	// Both crimes draw from the same ActionRob bucket, so one steal locks
	// out a follow-up bankrob for the same window.
	_, ok := tracker.Try("alice", ActionRob, RobCooldown)
	require.True(t, ok)

	remaining, ok := tracker.Try("alice", ActionRob, RobCooldown)
	assert.False(t, ok)
	assert.Equal(t, RobCooldown, remaining)
}

func TestReset(t *testing.T) {
	tracker, _ := newTestTracker(t)

	_, ok := tracker.Try("alice", ActionWork, WorkCooldown)
	require.True(t, ok)

	tracker.Reset("alice", ActionWork)
	_, ok = tracker.Try("alice", ActionWork, WorkCooldown)
	assert.True(t, ok)
}

func TestTracker_EvictionForgivesOldest(t *testing.T) {
	tracker, err := NewTracker(2)
	require.NoError(t, err)

	_, ok := tracker.Try("alice", ActionWork, WorkCooldown)
	require.True(t, ok)
	_, ok = tracker.Try("bob", ActionWork, WorkCooldown)
	require.True(t, ok)

	// A third entry evicts alice's; she is off cooldown again.
	_, ok = tracker.Try("carol", ActionWork, WorkCooldown)
	require.True(t, ok)
	_, ok = tracker.Try("alice", ActionWork, WorkCooldown)
	assert.True(t, ok)
}
