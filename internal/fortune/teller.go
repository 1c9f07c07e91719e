package fortune

// Fortunes are shown in this order, wrapping around.
var Fortunes = []string{
	"You shall find your shrubbery—and it will be most impressive.",
	"On your quest, remember: it’s only a flesh wound!",
	"Spam, spam, spam, eggs and spam. Where's Mehran?",
	"A royal decree: Victory is nigh!",
	"You are worthy of Excalibur—lead on!",
	"Hop to it—beware the rabbit!",
	"Minstrels rejoice—your tale is one of bravery!",
	"None shall pass! Killer Bunny broke its leg, bled all over Easter Egg.",
}

// Grail replaces the regular fortune when the easter egg triggers.
const Grail = "Behold... The Holy Grail of Fortunes! 🏆"

const grailQuadrant = 1

// Teller hands out fortunes round-robin. The cursor survives across rounds.
type Teller struct {
	cursor int
}

func NewTeller() *Teller {
	return &Teller{}
}

// Cursor is the index of the next regular fortune.
func (t *Teller) Cursor() int {
	return t.cursor
}

// IsGrail reports whether picking quadrant with the given numbers triggers
// the easter egg: quadrant 1 showing a 1 or a 9.
func IsGrail(quadrant int, numbers [Slots]int) bool {
	if quadrant != grailQuadrant {
		return false
	}
	n := numbers[grailQuadrant]
	return n == MinNumber || n == MaxNumber
}

// Reveal returns the fortune for the picked quadrant. The cursor only
// advances for regular fortunes.
func (t *Teller) Reveal(quadrant int, numbers [Slots]int) string {
	if IsGrail(quadrant, numbers) {
		return Grail
	}
	f := Fortunes[t.cursor]
	t.cursor = (t.cursor + 1) % len(Fortunes)
	return f
}
