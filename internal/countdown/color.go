package countdown

import "math/rand"

// Palette is the set of card background colors new events are drawn from.
var Palette = []string{
	"#6366F1", // indigo
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#EF4444", // red
	"#F97316", // orange
	"#EAB308", // amber
	"#22C55E", // green
	"#14B8A6", // teal
	"#06B6D4", // cyan
	"#3B82F6", // blue
}

// ColorAssigner picks the background color of a new event.
type ColorAssigner interface {
	Assign() string
}

// RandomColors assigns colors uniformly at random from Palette.
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors returns an assigner. A nil rng uses the global source.
func NewRandomColors(rng *rand.Rand) *RandomColors {
	return &RandomColors{rng: rng}
}

// Assign implements ColorAssigner.
func (c *RandomColors) Assign() string {
	if c.rng == nil {
		return Palette[rand.Intn(len(Palette))]
	}
	return Palette[c.rng.Intn(len(Palette))]
}

// FixedColor always assigns the same color.
type FixedColor string

// Assign implements ColorAssigner.
func (c FixedColor) Assign() string {
	return string(c)
}
