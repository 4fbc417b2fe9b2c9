package sensor

import (
	"context"

	"github.com/rileyhilliard/phbuddy/internal/logger"
)

// maxConsecutiveFailures is how many hardware reads in a row may fail
// before the run permanently switches to simulated data.
const maxConsecutiveFailures = 3

// Failover wraps a hardware source and a simulator. After three consecutive
// hardware failures it switches to the simulator for the rest of the run;
// the transition is one-way and never retried. Failed hardware reads still
// yield a simulated value so the caller's tick always gets a reading.
type Failover struct {
	hardware Source
	sim      *Simulator
	log      logger.Logger

	consecutive int
	totalErrors int
	fellBack    bool
}

// NewFailover creates a failover source over the given hardware source.
func NewFailover(hardware Source, sim *Simulator, log logger.Logger) *Failover {
	if log == nil {
		log = logger.NewEnvLogger("[sensor]")
	}
	return &Failover{hardware: hardware, sim: sim, log: log}
}

// Read returns a pH value, preferring hardware until the failover fires.
func (f *Failover) Read(ctx context.Context) (float64, error) {
	if f.fellBack {
		return f.sim.Read(ctx)
	}

	ph, err := f.hardware.Read(ctx)
	if err == nil {
		f.consecutive = 0
		return ph, nil
	}

	f.consecutive++
	f.totalErrors++
	f.log.Warn("sensor error (%d/%d): %v", f.consecutive, maxConsecutiveFailures, err)

	if f.consecutive >= maxConsecutiveFailures {
		f.log.Warn("switching to simulated data")
		f.fellBack = true
		if closeErr := f.hardware.Close(); closeErr != nil {
			f.log.Debug("closing failed sensor: %v", closeErr)
		}
	}

	// Cover this tick with a simulated value, like the probe never missed
	return f.sim.Read(ctx)
}

// FellBack reports whether the one-way switch to simulation has happened.
func (f *Failover) FellBack() bool {
	return f.fellBack
}

// TotalErrors returns the cumulative hardware error count for the run.
func (f *Failover) TotalErrors() int {
	return f.totalErrors
}

// Calibrate delegates to the hardware source while it is still active.
func (f *Failover) Calibrate(ctx context.Context) error {
	if f.fellBack {
		return ErrIO
	}
	if c, ok := f.hardware.(Calibrator); ok {
		return c.Calibrate(ctx)
	}
	return ErrIO
}

// Describe labels whichever source is currently active.
func (f *Failover) Describe() string {
	if f.fellBack {
		return f.sim.Describe() + " (sensor lost)"
	}
	return f.hardware.Describe()
}

// Close releases the hardware transport if it is still held.
func (f *Failover) Close() error {
	if f.fellBack {
		return f.sim.Close()
	}
	return f.hardware.Close()
}
