package sensor

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Simulator bounds and noise shape, matching the behavior of a real probe
// reading a child's saliva sample.
const (
	simBase      = 6.5
	simDrift     = 0.5 // amplitude of the slow sinusoidal drift
	simPeriodSec = 30  // seconds per radian of drift
	simNoise     = 0.2 // stdev of Gaussian jitter

	simMin = 4.0
	simMax = 9.0

	// Excursion events: a sugary drink drops pH, a healthy snack raises it.
	sugaryCooldown  = 20 * time.Second
	healthyCooldown = 40 * time.Second
	eventChance     = 0.1
)

// Simulator produces plausible pH readings without hardware.
// Not safe for concurrent use; the monitor loop is single-threaded.
type Simulator struct {
	rng       *rand.Rand
	now       func() time.Time
	start     time.Time
	lastEvent time.Time
}

// SimOption customizes a Simulator, mainly for deterministic tests.
type SimOption func(*Simulator)

// WithRand injects a seeded random source.
func WithRand(rng *rand.Rand) SimOption {
	return func(s *Simulator) { s.rng = rng }
}

// WithClock injects a clock for time-dependent behavior.
func WithClock(now func() time.Time) SimOption {
	return func(s *Simulator) { s.now = now }
}

// NewSimulator creates a simulated pH source.
func NewSimulator(opts ...SimOption) *Simulator {
	s := &Simulator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.start = s.now()
	s.lastEvent = s.start
	return s
}

// Read produces one simulated reading: slow sinusoidal drift, Gaussian
// jitter, and occasional dietary excursions, clamped to [4.0, 9.0] and
// rounded to 2 decimals.
func (s *Simulator) Read(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	now := s.now()
	elapsed := now.Sub(s.start).Seconds()
	sinceEvent := now.Sub(s.lastEvent)

	base := simBase + simDrift*math.Sin(elapsed/simPeriodSec)
	fluctuation := s.rng.NormFloat64() * simNoise

	// Sugary drink takes priority over healthy snack, as the shorter window
	// opens first.
	if sinceEvent > sugaryCooldown && s.rng.Float64() < eventChance {
		fluctuation -= 1.0 + s.rng.Float64()*1.0
		s.lastEvent = now
	} else if sinceEvent > healthyCooldown && s.rng.Float64() < eventChance {
		fluctuation += 0.5 + s.rng.Float64()*0.5
		s.lastEvent = now
	}

	ph := base + fluctuation
	ph = math.Max(simMin, math.Min(simMax, ph))
	return math.Round(ph*100) / 100, nil
}

// Describe labels the simulator for the dashboard header.
func (s *Simulator) Describe() string {
	return "simulated data"
}

// Close is a no-op; the simulator holds no resources.
func (s *Simulator) Close() error {
	return nil
}
