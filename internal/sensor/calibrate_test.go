package sensor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/phbuddy/internal/logger"
)

// calibratableFake wraps FakeSource with a scripted calibration result.
type calibratableFake struct {
	FakeSource
	calibrateErr    error
	calibrateCalled bool
}

func (c *calibratableFake) Calibrate(ctx context.Context) error {
	c.calibrateCalled = true
	return c.calibrateErr
}

func TestCalibrateHardwarePath(t *testing.T) {
	src := &calibratableFake{}
	log := logger.NewBufferLogger()

	err := Calibrate(context.Background(), src, log)

	require.NoError(t, err)
	assert.True(t, src.calibrateCalled)
	assert.False(t, log.HasLevel("warn"))
}

func TestCalibrateFallsBackOnHardwareFailure(t *testing.T) {
	src := &calibratableFake{calibrateErr: ErrIO}
	log := logger.NewBufferLogger()

	start := time.Now()
	err := Calibrate(context.Background(), src, log)

	// Failure is swallowed: the caller still sees success, only the log
	// records the simulated path.
	require.NoError(t, err)
	assert.True(t, src.calibrateCalled)
	assert.True(t, log.HasLevel("warn"))
	assert.GreaterOrEqual(t, time.Since(start), simulatedCalibration)
}

func TestCalibrateSimulatedPathForPlainSource(t *testing.T) {
	src := NewFakeSource(7.0) // does not implement Calibrator
	log := logger.NewBufferLogger()

	start := time.Now()
	err := Calibrate(context.Background(), src, log)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), simulatedCalibration)
}

func TestCalibrateCancellation(t *testing.T) {
	src := NewFakeSource(7.0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Calibrate(ctx, src, logger.Noop())
	assert.ErrorIs(t, err, context.Canceled)
}
