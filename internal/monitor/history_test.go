package monitor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"default size", 0, DefaultHistorySize},
		{"negative size", -1, DefaultHistorySize},
		{"custom size", 100, 100},
		{"small size", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.size)
			require.NotNil(t, h)
			assert.Equal(t, tt.expected, h.Capacity())
			assert.Equal(t, 0, h.Len())
		})
	}
}

func TestHistoryPushAndSamples(t *testing.T) {
	h := NewHistory(10)

	h.Push(Sample{Elapsed: 2, PH: 6.5})
	h.Push(Sample{Elapsed: 4, PH: 7.0})
	h.Push(Sample{Elapsed: 6, PH: 5.8})

	samples := h.Samples()
	require.Len(t, samples, 3)
	assert.Equal(t, 6.5, samples[0].PH)
	assert.Equal(t, 7.0, samples[1].PH)
	assert.Equal(t, 5.8, samples[2].PH)
	assert.Equal(t, 2.0, samples[0].Elapsed)
}

func TestHistoryEvictsOldestFirst(t *testing.T) {
	h := NewHistory(5)

	for i := 0; i < 8; i++ {
		h.Push(Sample{Elapsed: float64(i), PH: float64(i)})
	}

	assert.Equal(t, 5, h.Len())

	values := h.Values()
	assert.Equal(t, []float64{3, 4, 5, 6, 7}, values)
}

func TestHistoryLast(t *testing.T) {
	h := NewHistory(3)

	_, ok := h.Last()
	assert.False(t, ok)

	h.Push(Sample{Elapsed: 1, PH: 6.2})
	h.Push(Sample{Elapsed: 2, PH: 6.9})

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, 6.9, last.PH)

	// After wrapping around, Last still tracks the newest sample.
	h.Push(Sample{Elapsed: 3, PH: 7.1})
	h.Push(Sample{Elapsed: 4, PH: 7.3})
	last, ok = h.Last()
	require.True(t, ok)
	assert.Equal(t, 7.3, last.PH)
}

func TestHistoryValuesEmpty(t *testing.T) {
	h := NewHistory(10)
	assert.Empty(t, h.Values())
}

func TestHistoryConcurrentAccess(t *testing.T) {
	h := NewHistory(50)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				h.Push(Sample{Elapsed: float64(i), PH: 6.5})
				_ = h.Values()
				_, _ = h.Last()
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 50, h.Len())
}
