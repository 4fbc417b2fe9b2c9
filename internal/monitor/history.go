package monitor

import "sync"

// DefaultHistorySize is how many readings the chart retains.
const DefaultHistorySize = 50

// Sample is one charted reading.
type Sample struct {
	// Elapsed is seconds since monitoring started.
	Elapsed float64
	// PH is the reading value.
	PH float64
}

// History is a fixed-capacity FIFO of samples backing the chart.
// Oldest samples are evicted first. Thread-safe so the renderer can read
// while a tick pushes.
type History struct {
	mu    sync.RWMutex
	data  []Sample
	head  int
	count int
	size  int
}

// NewHistory creates a history with the given capacity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		data: make([]Sample, size),
		size: size,
	}
}

// Push appends a sample, evicting the oldest when full.
func (h *History) Push(s Sample) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.data[h.head] = s
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Samples returns all stored samples in chronological order (oldest first).
func (h *History) Samples() []Sample {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]Sample, h.count)

	// head points to the next write position, so the oldest sample is at
	// head when the buffer is full, index 0 otherwise.
	start := (h.head - h.count + h.size) % h.size
	for i := 0; i < h.count; i++ {
		result[i] = h.data[(start+i)%h.size]
	}

	return result
}

// Values returns just the pH values in chronological order.
func (h *History) Values() []float64 {
	samples := h.Samples()
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.PH
	}
	return values
}

// Last returns the most recent sample, if any.
func (h *History) Last() (Sample, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 {
		return Sample{}, false
	}
	return h.data[(h.head-1+h.size)%h.size], true
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Capacity returns the maximum number of samples retained.
func (h *History) Capacity() int {
	return h.size
}
