// Package sensor provides pH reading sources with hardware abstraction.
// The serial implementation talks to a real probe over a serial line.
// The simulator produces plausible readings without hardware, and the
// failover source switches from serial to simulation after repeated
// hardware errors.
package sensor

import (
	"context"
	"errors"
)

// Sentinel errors for classifying read failures.
var (
	// ErrIO indicates the serial transport failed (write, read, or timeout).
	ErrIO = errors.New("sensor transport error")
	// ErrParse indicates the sensor responded with an empty or malformed line.
	ErrParse = errors.New("unparseable sensor response")
)

// Source produces pH readings.
type Source interface {
	// Read returns one pH value. Blocking reads must respect ctx and the
	// transport's own read timeout so a stalled probe cannot stall the
	// caller's tick loop.
	Read(ctx context.Context) (float64, error)

	// Describe returns a short human-readable label for the header line.
	Describe() string

	// Close releases the underlying transport.
	Close() error
}

// Calibrator is implemented by sources that support a hardware
// calibration sequence.
type Calibrator interface {
	Calibrate(ctx context.Context) error
}
