package monitor

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/phbuddy/internal/band"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestNewState(t *testing.T) {
	s := NewState(time.Now())
	assert.Equal(t, MaxHealth, s.Health)
	assert.Equal(t, 0, s.Stars)
	assert.Equal(t, 0, s.Consecutive)
	assert.False(t, s.HasReading)
}

func TestAdvanceScoringSequence(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	// One acidic reading followed by three healthy ones, 2s apart.
	readings := []float64{4.9, 7.0, 7.0, 7.0}
	wantHealth := []int{99, 100, 100, 100}

	var displays []Display
	for i, ph := range readings {
		now := start.Add(time.Duration(i+1) * 2 * time.Second)
		displays = append(displays, s.Advance(now, ph, rng))
		assert.Equal(t, wantHealth[i], s.Health, "health after reading %d", i+1)
	}

	// The acidic dip resets the streak, so advice needs three more
	// healthy ticks before it switches away from the placeholder.
	assert.Equal(t, placeholderAdvice, displays[0].Advice)
	assert.Equal(t, placeholderAdvice, displays[1].Advice)
	assert.Equal(t, placeholderAdvice, displays[2].Advice)
	assert.NotEqual(t, placeholderAdvice, displays[3].Advice)
	assert.Equal(t, band.Table[band.PerfectRainbow-1].Color, displays[3].AdviceColor)

	// One star: tick 2 (4s) is still inside the cooldown, tick 3 (6s)
	// awards, tick 4 (8s) is back inside it.
	assert.Equal(t, 1, s.Stars)
}

func TestAdvanceHealthClamps(t *testing.T) {
	start := time.Now()
	rng := testRand()

	t.Run("floor at zero", func(t *testing.T) {
		s := NewState(start)
		for i := 0; i < MaxHealth+20; i++ {
			s.Advance(start.Add(time.Duration(i)*time.Second), 4.2, rng)
		}
		assert.Equal(t, MinHealth, s.Health)
	})

	t.Run("cap at maximum", func(t *testing.T) {
		s := NewState(start)
		for i := 0; i < 20; i++ {
			s.Advance(start.Add(time.Duration(i)*time.Second), 7.0, rng)
		}
		assert.Equal(t, MaxHealth, s.Health)
	})
}

func TestAdvanceStarCooldown(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	// Healthy readings every 2s. The cooldown is seeded at start, so the
	// first award lands at 6s, the next at 12s, and so on.
	wantStars := []int{0, 0, 1, 1, 1, 2, 2, 2, 3}
	for i, want := range wantStars {
		now := start.Add(time.Duration(i+1) * 2 * time.Second)
		s.Advance(now, 7.0, rng)
		assert.Equal(t, want, s.Stars, "stars after tick %d", i+1)
	}
}

func TestAdvanceStarsMonotonic(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	prev := 0
	phs := []float64{7.0, 4.0, 7.0, 8.5, 7.1, 6.0, 7.2}
	for i, ph := range phs {
		s.Advance(start.Add(time.Duration(i)*10*time.Second), ph, rng)
		assert.GreaterOrEqual(t, s.Stars, prev)
		prev = s.Stars
	}
}

func TestAdvanceConsecutiveResets(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	tick := func(i int, ph float64) {
		s.Advance(start.Add(time.Duration(i)*2*time.Second), ph, rng)
	}

	tick(1, 7.0)
	tick(2, 7.1)
	require.Equal(t, 2, s.Consecutive)
	require.Equal(t, band.PerfectRainbow, s.LastBand)

	// Different band: streak restarts at 1, not 0.
	tick(3, 5.5)
	assert.Equal(t, 1, s.Consecutive)
	assert.Equal(t, band.SourLemon, s.LastBand)

	tick(4, 5.6)
	assert.Equal(t, 2, s.Consecutive)
}

func TestAdvanceAdviceThreshold(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	var d Display
	for i := 1; i <= adviceThreshold; i++ {
		d = s.Advance(start.Add(time.Duration(i)*2*time.Second), 5.5, rng)
		if i < adviceThreshold {
			assert.Equal(t, placeholderAdvice, d.Advice, "tick %d", i)
			assert.Equal(t, band.NeutralColor, d.AdviceColor)
		}
	}

	sour := band.Table[band.SourLemon-1]
	assert.Contains(t, sour.Advice, d.Advice)
	assert.Equal(t, sour.Color, d.AdviceColor)
}

func TestAdvanceAdviceResetOnBandChange(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	for i := 1; i <= 3; i++ {
		s.Advance(start.Add(time.Duration(i)*2*time.Second), 5.5, rng)
	}

	// Band change drops back to the placeholder until the new band holds.
	d := s.Advance(start.Add(8*time.Second), 7.0, rng)
	assert.Equal(t, placeholderAdvice, d.Advice)
}

func TestAdvanceAnnotation(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	// First reading anchors change detection, never annotates.
	d := s.Advance(start.Add(2*time.Second), 6.5, rng)
	assert.Empty(t, d.Annotation)
	assert.Equal(t, 6.5, s.LastReading)

	// 0.6 jump past the cooldown window fires an annotation and moves
	// the anchor.
	d = s.Advance(start.Add(10*time.Second), 7.1, rng)
	assert.Equal(t, "↑↑ 0.6 change!", d.Annotation)
	assert.Equal(t, 7.1, s.LastReading)

	// Another large jump 2s later is suppressed by the cooldown, and the
	// anchor stays where it was.
	d = s.Advance(start.Add(12*time.Second), 6.3, rng)
	assert.Empty(t, d.Annotation)
	assert.Equal(t, 7.1, s.LastReading)

	// Once the cooldown expires the drop annotates with the down arrow.
	d = s.Advance(start.Add(20*time.Second), 6.3, rng)
	assert.Equal(t, "↓↓ 0.8 change!", d.Annotation)
	assert.Equal(t, 6.3, s.LastReading)
}

func TestAdvanceAnnotationAnchoredNotPrevious(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	// Small per-tick drifts accumulate against the anchor, so the
	// annotation fires even though no single step exceeds the delta.
	s.Advance(start.Add(2*time.Second), 6.5, rng)
	d := s.Advance(start.Add(10*time.Second), 6.8, rng)
	assert.Empty(t, d.Annotation)

	d = s.Advance(start.Add(12*time.Second), 7.1, rng)
	assert.Equal(t, "↑↑ 0.6 change!", d.Annotation)
}

func TestAdvanceAnnotationExactDeltaDoesNotFire(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	s.Advance(start.Add(2*time.Second), 6.5, rng)
	d := s.Advance(start.Add(10*time.Second), 7.0, rng)
	assert.Empty(t, d.Annotation, "a change of exactly 0.5 is not significant")
}

func TestAdvanceUnknownBand(t *testing.T) {
	start := time.Now()
	s := NewState(start)
	rng := testRand()

	var d Display
	for i := 1; i <= 4; i++ {
		d = s.Advance(start.Add(time.Duration(i)*2*time.Second), 20.0, rng)
	}

	// Out-of-range readings never surface band advice and still cost health.
	assert.Equal(t, placeholderAdvice, d.Advice)
	assert.Equal(t, band.NeutralColor, d.AdviceColor)
	assert.Equal(t, MaxHealth-4, s.Health)
	assert.False(t, d.Band.Known())
}
