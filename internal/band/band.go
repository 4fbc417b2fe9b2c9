// Package band classifies saliva pH readings into child-friendly bands.
//
// The five bands partition [0, 14) contiguously with half-open intervals,
// so every in-range reading maps to exactly one band. Hardware readings are
// unclamped and can fall outside that range; Classify returns an unknown
// band for those rather than panicking.
package band

import (
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

// Kind identifies a pH band.
type Kind int

const (
	// Unknown is returned for values outside [0, 14).
	Unknown Kind = iota
	DragonFire
	SourLemon
	TangyOrange
	PerfectRainbow
	BubbleTrouble
)

// String returns the child-friendly band name.
func (k Kind) String() string {
	switch k {
	case DragonFire:
		return "Dragon Fire!"
	case SourLemon:
		return "Sour Lemon!"
	case TangyOrange:
		return "Tangy Orange!"
	case PerfectRainbow:
		return "Perfect Rainbow!"
	case BubbleTrouble:
		return "Bubble Trouble!"
	default:
		return "Unknown"
	}
}

// Band is a named pH interval with display and advice metadata.
// The interval is half-open: Lo <= pH < Hi.
type Band struct {
	Kind   Kind
	Lo, Hi float64
	Advice []string
	Color  lipgloss.Color
	Emoji  string
	Face   string
}

// Known reports whether the band is one of the five real bands.
func (b Band) Known() bool {
	return b.Kind != Unknown
}

// Contains reports whether the pH value falls in the band's half-open interval.
func (b Band) Contains(ph float64) bool {
	return ph >= b.Lo && ph < b.Hi
}

// Table lists the bands in declared order, covering [0, 14) contiguously.
// Boundary values (5.0, 6.0, 6.8, 7.5) belong to the higher band.
var Table = []Band{
	{
		Kind: DragonFire,
		Lo:   0, Hi: 5.0,
		Advice: []string{
			"Drink water like a fish! 💧",
			"Crunch on veggies like a bunny! 🥕",
			"Say no to candy monsters! 🚫🍬",
		},
		Color: lipgloss.Color("#FF0000"),
		Emoji: "🔥",
		Face:  "😫",
	},
	{
		Kind: SourLemon,
		Lo:   5.0, Hi: 6.0,
		Advice: []string{
			"Banana power snacks! 🍌",
			"Cheese building blocks! 🧀",
			"Water adventures! 🚰",
		},
		Color: lipgloss.Color("#FFA500"),
		Emoji: "🍋",
		Face:  "😖",
	},
	{
		Kind: TangyOrange,
		Lo:   6.0, Hi: 6.8,
		Advice: []string{
			"Apple crunch time! 🍎",
			"Milk magic potion! 🥛",
			"Super tooth brushing! 🪥",
		},
		Color: lipgloss.Color("#FFD700"),
		Emoji: "🍊",
		Face:  "😕",
	},
	{
		Kind: PerfectRainbow,
		Lo:   6.8, Hi: 7.5,
		Advice: []string{
			"You're a health hero! 🦸",
			"Keep being awesome! 😎",
			"Water is your friend! 💧",
		},
		Color: lipgloss.Color("#00FF00"),
		Emoji: "🌈",
		Face:  "😃",
	},
	{
		Kind: BubbleTrouble,
		Lo:   7.5, Hi: 14,
		Advice: []string{
			"Nutty squirrel snacks! 🌰",
			"Water instead of juice! 💦",
			"Run and play outside! 🏃",
		},
		Color: lipgloss.Color("#00BFFF"),
		Emoji: "🫧",
		Face:  "🤢",
	},
}

// NeutralColor is used when no band advice applies.
const NeutralColor = lipgloss.Color("#FFFFFF")

// Classify returns the band containing the pH value.
// Scans the table in declared order and returns the first match; values
// outside [0, 14) yield a zero Band with Known() == false.
func Classify(ph float64) Band {
	for _, b := range Table {
		if b.Contains(ph) {
			return b
		}
	}
	return Band{}
}

// PickAdvice returns one advice string chosen uniformly at random.
// Returns empty for bands with no advice (the unknown band).
func (b Band) PickAdvice(rng *rand.Rand) string {
	if len(b.Advice) == 0 {
		return ""
	}
	return b.Advice[rng.Intn(len(b.Advice))]
}
