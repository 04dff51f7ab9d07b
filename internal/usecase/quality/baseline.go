package quality

import (
	"math"
	"sort"
	"sync"
	"time"
)

// sampleWindow is a bounded FIFO of observations with a sorted index kept
// incrementally, so percentile lookups never rescan the full history.
type sampleWindow struct {
	values []float64 // arrival order, oldest first
	sorted []float64
	limit  int
}

func newSampleWindow(limit int) *sampleWindow {
	return &sampleWindow{limit: limit}
}

func (w *sampleWindow) len() int {
	return len(w.values)
}

func (w *sampleWindow) push(v float64) {
	if w.limit > 0 && len(w.values) >= w.limit {
		oldest := w.values[0]
		w.values = w.values[1:]
		w.removeSorted(oldest)
	}

	w.values = append(w.values, v)
	idx := sort.SearchFloat64s(w.sorted, v)
	w.sorted = append(w.sorted, 0)
	copy(w.sorted[idx+1:], w.sorted[idx:])
	w.sorted[idx] = v
}

func (w *sampleWindow) removeSorted(v float64) {
	idx := sort.SearchFloat64s(w.sorted, v)
	if idx < len(w.sorted) && w.sorted[idx] == v {
		w.sorted = append(w.sorted[:idx], w.sorted[idx+1:]...)
	}
}

// percentile returns the nearest-rank p-th percentile of the window,
// 0 when the window is empty.
func (w *sampleWindow) percentile(p float64) float64 {
	n := len(w.sorted)
	if n == 0 {
		return 0
	}

	rank := int(math.Ceil(p / 100 * float64(n)))
	if rank < 1 {
		rank = 1
	}
	if rank > n {
		rank = n
	}
	return w.sorted[rank-1]
}

// baseline is the rolling statistical profile for one (symbol, timeframe)
// pair. Its mutex serializes updates per key; unrelated keys update fully in
// parallel.
type baseline struct {
	mu sync.Mutex

	volume *sampleWindow
	trades *sampleWindow

	// observed counts all samples ever accepted; it never decreases while
	// the process runs.
	observed      int64
	lastTimestamp time.Time
}

func newBaseline(windowSamples int) *baseline {
	return &baseline{
		volume: newSampleWindow(windowSamples),
		trades: newSampleWindow(windowSamples),
	}
}

// observe records one sample. Samples arriving out of timestamp order are
// dropped to keep the rolling statistics coherent.
func (b *baseline) observe(timestamp time.Time, volume, trades float64) bool {
	if timestamp.Before(b.lastTimestamp) {
		return false
	}

	b.volume.push(volume)
	b.trades.push(trades)
	b.observed++
	b.lastTimestamp = timestamp
	return true
}
