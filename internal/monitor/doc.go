// Package monitor implements the real-time TUI dashboard for saliva pH
// readings.
//
// The dashboard shows a rolling pH chart, the current acidity band with a
// child-friendly name and emoji, a tooth health score, earned stars, and an
// advice panel that reacts to sustained readings.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds dashboard state (display snapshot, history, health/stars)
//   - Update: Processes messages (keystrokes, tick events, new readings)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Model    - The Bubble Tea model containing all dashboard state
//	State    - Gamification state machine (health, stars, streaks, advice)
//	History  - Ring buffer storage for recent readings (chart rendering)
//	Sink     - Fan-out hook for recording or publishing each reading
//
// # Message Flow
//
// The dashboard operates on a tick-based refresh cycle:
//
//  1. tickMsg fires at the configured interval (default 2s)
//  2. readCmd() asks the sensor source for one reading
//  3. readingMsg arrives with the result, advancing State and History
//  4. View() re-renders the dashboard with the new display snapshot
//
// A failed reading is logged and skipped; the previous display is kept
// unchanged so transient sensor hiccups never blank the screen.
//
// # History and Chart
//
// The History type stores readings in a ring buffer for braille chart
// rendering. Default capacity is 50 samples, matching the chart window.
package monitor
