package tetris

import (
	"fmt"
	"math/rand"
)

// Randomizer produces the stream of upcoming kinds.
type Randomizer interface {
	Next() PieceKind
}

// RandomGenerator draws each kind independently and uniformly.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a uniform generator seeded for determinism.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly random kind.
func (g *RandomGenerator) Next() PieceKind {
	return AllKinds[g.rng.Intn(len(AllKinds))]
}

// BagGenerator deals all seven kinds in shuffled order before repeating.
type BagGenerator struct {
	rng *rand.Rand
	bag []PieceKind
}

// NewBagGenerator creates a 7-bag generator seeded for determinism.
func NewBagGenerator(seed int64) *BagGenerator {
	return &BagGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next kind from the bag, refilling it when empty.
func (g *BagGenerator) Next() PieceKind {
	if len(g.bag) == 0 {
		g.bag = append(g.bag[:0], AllKinds[:]...)
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}

// NewRandomizer builds a randomizer by config name ("random" or "bag").
func NewRandomizer(name string, seed int64) (Randomizer, error) {
	switch name {
	case "random", "":
		return NewRandomGenerator(seed), nil
	case "bag":
		return NewBagGenerator(seed), nil
	default:
		return nil, fmt.Errorf("tetris: unknown randomizer %q", name)
	}
}

// Queue is the ordered list of upcoming pieces, refilled one-for-one.
type Queue struct {
	src     Randomizer
	items   []PieceKind
	preview int
}

// NewQueue fills a queue showing preview pieces. At least one piece is
// always buffered.
func NewQueue(src Randomizer, preview int) *Queue {
	q := &Queue{src: src, preview: max(preview, 0)}
	q.fill()
	return q
}

func (q *Queue) fill() {
	for len(q.items) < max(q.preview, 1) {
		q.items = append(q.items, q.src.Next())
	}
}

// Next removes and returns the front piece, drawing a new one for the tail.
func (q *Queue) Next() PieceKind {
	k := q.items[0]
	q.items = append(q.items[:0], q.items[1:]...)
	q.fill()
	return k
}

// Peek returns a copy of the visible upcoming pieces, front first.
func (q *Queue) Peek() []PieceKind {
	out := make([]PieceKind, q.preview)
	copy(out, q.items)
	return out
}

// Refill discards the buffered pieces and draws fresh ones from the
// randomizer's current position.
func (q *Queue) Refill() {
	q.items = q.items[:0]
	q.fill()
}
