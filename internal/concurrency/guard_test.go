package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_RejectsWhileHeld(t *testing.T) {
	g := NewGuard()

	require.True(t, g.Acquire("g1"))
	assert.False(t, g.Acquire("g1"))

	g.Release("g1")
	assert.True(t, g.Acquire("g1"))
}

func TestGuard_KeysAreIndependent(t *testing.T) {
	g := NewGuard()

	require.True(t, g.Acquire("g1"))
	assert.True(t, g.Acquire("g2"))
}

func TestGuard_SingleWinnerUnderContention(t *testing.T) {
	g := NewGuard()

	const attempts = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, attempts)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Acquire("g1") {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1)
}
