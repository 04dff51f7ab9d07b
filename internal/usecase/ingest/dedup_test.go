package ingest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyTracker_AcquireRelease(t *testing.T) {
	tracker := newKeyTracker(10)

	assert.True(t, tracker.acquire("a"))
	// In flight: a concurrent claim for the same key fails.
	assert.False(t, tracker.acquire("a"))

	tracker.release("a", true)
	// Committed: still not claimable.
	assert.False(t, tracker.acquire("a"))

	assert.True(t, tracker.acquire("b"))
	tracker.release("b", false)
	// Not committed: the key is claimable again.
	assert.True(t, tracker.acquire("b"))
}

func TestKeyTracker_EvictsOldestAtCapacity(t *testing.T) {
	tracker := newKeyTracker(2)

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("k%d", i)
		assert.True(t, tracker.acquire(key))
		tracker.release(key, true)
	}

	// k0 aged out of the bounded set, k1 and k2 are still remembered.
	assert.True(t, tracker.acquire("k0"))
	assert.False(t, tracker.acquire("k1"))
	assert.False(t, tracker.acquire("k2"))
}
