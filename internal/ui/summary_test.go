package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderSessionSummary(t *testing.T) {
	out := RenderSessionSummary(SessionSummary{
		Duration:    3*time.Minute + 12*time.Second,
		Readings:    96,
		FinalHealth: 87,
		Stars:       4,
	})

	assert.Contains(t, out, "session complete")
	assert.Contains(t, out, "3m12s")
	assert.Contains(t, out, "96")
	assert.Contains(t, out, "87/100")
	assert.Contains(t, out, "×4")
	assert.NotContains(t, out, "sensor errors")
}

func TestRenderSessionSummaryNoStars(t *testing.T) {
	out := RenderSessionSummary(SessionSummary{
		Duration:    42 * time.Second,
		Readings:    21,
		FinalHealth: 20,
	})

	assert.Contains(t, out, "42s")
	assert.Contains(t, out, "none this time")
	assert.Contains(t, out, "20/100")
}

func TestRenderSessionSummarySensorErrors(t *testing.T) {
	out := RenderSessionSummary(SessionSummary{
		Duration:     time.Minute,
		Readings:     30,
		FinalHealth:  95,
		SensorErrors: 7,
	})

	assert.Contains(t, out, "7 sensor errors")
}

func TestFormatSessionDuration(t *testing.T) {
	assert.Equal(t, "9s", formatSessionDuration(9*time.Second))
	assert.Equal(t, "1m05s", formatSessionDuration(65*time.Second))
	assert.Equal(t, "10m00s", formatSessionDuration(10*time.Minute))
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Version: "v0.3.0", Tagline: "saliva pH monitor"})

	assert.Contains(t, out, "phbuddy")
	assert.Contains(t, out, "v0.3.0")
	assert.Contains(t, out, "saliva pH monitor")
}
