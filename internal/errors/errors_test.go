package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Config file not found", "Run 'phbuddy init' first")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Config file not found", err.Message)
	assert.Equal(t, "Run 'phbuddy init' first", err.Suggestion)
	assert.Nil(t, err.Cause)
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "message only",
			err:      New(ErrSensor, "Sensor read failed", ""),
			contains: []string{"✗ Sensor read failed"},
		},
		{
			name:     "message and suggestion",
			err:      New(ErrConfig, "Invalid baud rate", "Use a positive integer like 9600"),
			contains: []string{"✗ Invalid baud rate", "Use a positive integer like 9600"},
		},
		{
			name:     "wrapped cause",
			err:      WrapWithCode(fmt.Errorf("read /dev/ttyUSB0: timeout"), ErrSensor, "Sensor did not respond", ""),
			contains: []string{"✗ Sensor did not respond", "read /dev/ttyUSB0: timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := WrapWithCode(cause, ErrStore, "Insert failed", "Check the database file is writable")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsCode(t *testing.T) {
	err := New(ErrCalibrate, "Calibration interrupted", "")

	assert.True(t, IsCode(err, ErrCalibrate))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrCalibrate))
	assert.False(t, IsCode(stderrors.New("plain"), ErrCalibrate))

	// Wrapped structured errors still match through errors.As
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsCode(wrapped, ErrCalibrate))
}
