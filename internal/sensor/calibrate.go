package sensor

import (
	"context"
	"time"

	"github.com/rileyhilliard/phbuddy/internal/logger"
)

// simulatedCalibration is the fixed settle delay when no hardware
// calibration is possible.
const simulatedCalibration = 2 * time.Second

// Calibrate runs the one-shot calibration sequence before monitoring starts.
// Hardware sources get the real calibration command; on transport failure,
// or when the source has no hardware, a simulated calibration runs instead.
// Calibration never fails from the caller's point of view; only the log
// line records which path was taken. Cancellation via ctx is the one
// exception and is returned so shutdown stays prompt.
func Calibrate(ctx context.Context, src Source, log logger.Logger) error {
	if log == nil {
		log = logger.NewEnvLogger("[sensor]")
	}

	log.Info("starting calibration...")

	if c, ok := src.(Calibrator); ok {
		err := c.Calibrate(ctx)
		if err == nil {
			log.Info("calibration complete")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn("calibration failed, simulating: %v", err)
	}

	select {
	case <-time.After(simulatedCalibration):
	case <-ctx.Done():
		return ctx.Err()
	}

	log.Info("simulated calibration complete")
	return nil
}
