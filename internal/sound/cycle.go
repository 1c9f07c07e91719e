package sound

import "math/rand"

// Cycle yields files from a pool forever in shuffled order. Each pass is
// reshuffled and a pass never starts with the file that ended the last one.
type Cycle struct {
	files []string
	order []string
	pos   int
	last  string
	rng   *rand.Rand
}

func NewCycle(files []string, rng *rand.Rand) *Cycle {
	c := &Cycle{
		files: append([]string(nil), files...),
		rng:   rng,
	}
	c.shuffle()
	return c
}

func (c *Cycle) shuffle() {
	c.order = append(c.order[:0], c.files...)
	c.rng.Shuffle(len(c.order), func(i, j int) {
		c.order[i], c.order[j] = c.order[j], c.order[i]
	})
	if len(c.order) > 1 && c.order[0] == c.last {
		c.order[0], c.order[len(c.order)-1] = c.order[len(c.order)-1], c.order[0]
	}
	c.pos = 0
}

// Next returns the next file, or "" for an empty pool.
func (c *Cycle) Next() string {
	if len(c.files) == 0 {
		return ""
	}
	if c.pos >= len(c.order) {
		c.shuffle()
	}
	f := c.order[c.pos]
	c.pos++
	c.last = f
	return f
}
