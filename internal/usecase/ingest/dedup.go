package ingest

import "sync"

// keyTracker is the coordinator's idempotence guard. It remembers which
// record keys have been committed (bounded FIFO) and which are mid-write,
// so at most one storage write is ever issued per unique key even when
// schedules overlap.
type keyTracker struct {
	mu       sync.Mutex
	limit    int
	order    []string
	seen     map[string]struct{}
	inFlight map[string]struct{}
}

func newKeyTracker(limit int) *keyTracker {
	return &keyTracker{
		limit:    limit,
		seen:     make(map[string]struct{}),
		inFlight: make(map[string]struct{}),
	}
}

// acquire claims a key for writing. It returns false when the key was
// already committed or another write for it is in flight.
func (t *keyTracker) acquire(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[key]; ok {
		return false
	}
	if _, ok := t.inFlight[key]; ok {
		return false
	}
	t.inFlight[key] = struct{}{}
	return true
}

// release drops the in-flight claim. When committed is true the key joins
// the seen set; a failed write leaves the key claimable again.
func (t *keyTracker) release(key string, committed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.inFlight, key)
	if !committed {
		return
	}
	t.markSeenLocked(key)
}

func (t *keyTracker) markSeenLocked(key string) {
	if _, ok := t.seen[key]; ok {
		return
	}
	if t.limit > 0 && len(t.order) >= t.limit {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.seen, oldest)
	}
	t.seen[key] = struct{}{}
	t.order = append(t.order, key)
}
