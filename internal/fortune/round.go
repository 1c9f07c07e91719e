package fortune

import "math/rand"

const (
	// Slots is the number of colors and numbers in a round.
	Slots = 4

	MinNumber = 1
	MaxNumber = 9
)

// Round is the randomized content of one play-through.
type Round struct {
	Colors  [Slots]Color
	Numbers [Slots]int
	// HasNumbers is false until a color has been picked.
	HasNumbers bool
}

// NewRound samples Slots distinct palette colors in random order.
func NewRound(rng *rand.Rand) *Round {
	r := &Round{}
	perm := rng.Perm(len(Palette))
	for i := 0; i < Slots; i++ {
		r.Colors[i] = Palette[perm[i]]
	}
	return r
}

// DrawNumbers samples Slots distinct numbers from [MinNumber, MaxNumber].
func (r *Round) DrawNumbers(rng *rand.Rand) {
	perm := rng.Perm(MaxNumber - MinNumber + 1)
	for i := 0; i < Slots; i++ {
		r.Numbers[i] = perm[i] + MinNumber
	}
	r.HasNumbers = true
}
