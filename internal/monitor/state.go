package monitor

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/phbuddy/internal/band"
)

// Scoring and cooldown rules for the tick handler.
const (
	// MaxHealth and MinHealth bound the cumulative health score.
	MaxHealth = 100
	MinHealth = 0

	// starCooldown is the minimum spacing between star awards.
	starCooldown = 5 * time.Second

	// annotationCooldown is the minimum spacing between change annotations.
	annotationCooldown = 5 * time.Second

	// annotationDelta is the pH jump that qualifies as a significant change.
	annotationDelta = 0.5

	// adviceThreshold is how many consecutive same-band ticks it takes
	// before band advice replaces the neutral placeholder.
	adviceThreshold = 3

	// MaxStarsShown caps the star row visually; the counter itself is unbounded.
	MaxStarsShown = 5
)

// placeholderAdvice is shown until a band has held for adviceThreshold ticks.
const placeholderAdvice = "Monitoring saliva health..."

// State is the rolling gamification state of a monitoring run.
// It is owned by a single tick loop; no locking.
type State struct {
	// LastReading anchors change detection. It holds the reading at the
	// last annotation (or the very first reading), not the previous tick's.
	LastReading float64
	HasReading  bool

	// LastBand and Consecutive track how long the current band has held.
	// Consecutive counts sequential ticks in the same band, including the
	// current one.
	LastBand    band.Kind
	Consecutive int

	// Health starts at MaxHealth and moves ±1 per tick, clamped.
	Health int

	// Stars is monotonic and uncapped.
	Stars int

	// SensorErrors mirrors the source's cumulative hardware error count.
	SensorErrors int

	lastStar       time.Time
	lastAnnotation time.Time
}

// Display is the payload one tick produces for rendering.
type Display struct {
	PH    float64
	Band  band.Band
	Emoji string

	// Advice is the advisor panel text, in AdviceColor.
	Advice      string
	AdviceColor lipgloss.Color

	// Annotation is an "↑↑ 0.6 change!" marker, empty when none fired.
	Annotation string
}

// NewState creates the run state. The start time seeds the star and
// annotation cooldowns so neither can fire in the first seconds.
func NewState(start time.Time) *State {
	return &State{
		Health:         MaxHealth,
		lastStar:       start,
		lastAnnotation: start,
	}
}

// Advance applies one reading to the state and returns the display payload.
// Steps run in a fixed order: classify, score health, award stars, track
// band streak, pick advice, detect significant changes.
func (s *State) Advance(now time.Time, ph float64, rng *rand.Rand) Display {
	b := band.Classify(ph)

	// Health: only the healthy band earns points
	if b.Kind == band.PerfectRainbow {
		s.Health = min(MaxHealth, s.Health+1)
	} else {
		s.Health = max(MinHealth, s.Health-1)
	}

	// Stars: healthy readings earn one, rate-limited
	if b.Kind == band.PerfectRainbow && now.Sub(s.lastStar) >= starCooldown {
		s.Stars++
		s.lastStar = now
	}

	// Band streak
	if b.Kind == s.LastBand && s.Consecutive > 0 {
		s.Consecutive++
	} else {
		s.Consecutive = 1
		s.LastBand = b.Kind
	}

	d := Display{
		PH:          ph,
		Band:        b,
		Emoji:       b.Emoji,
		Advice:      placeholderAdvice,
		AdviceColor: band.NeutralColor,
	}

	// Advice: wait for the band to hold before nagging
	if s.Consecutive >= adviceThreshold && b.Known() {
		d.Advice = b.PickAdvice(rng)
		d.AdviceColor = b.Color
	}

	// Change annotation: compare against the anchored reading, rate-limited
	if s.HasReading {
		delta := ph - s.LastReading
		if math.Abs(delta) > annotationDelta && now.Sub(s.lastAnnotation) >= annotationCooldown {
			arrow := "↑↑"
			if delta < 0 {
				arrow = "↓↓"
			}
			d.Annotation = fmt.Sprintf("%s %.1f change!", arrow, math.Abs(delta))
			s.LastReading = ph
			s.lastAnnotation = now
		}
	} else {
		s.LastReading = ph
		s.HasReading = true
	}

	return d
}
