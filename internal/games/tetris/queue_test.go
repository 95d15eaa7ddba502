package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagDealsEveryKindPerBag(t *testing.T) {
	g := NewBagGenerator(42)
	for bag := range 5 {
		seen := map[PieceKind]int{}
		for range len(AllKinds) {
			seen[g.Next()]++
		}
		assert.Len(t, seen, len(AllKinds), "bag %d", bag)
	}
}

func TestRandomizersAreDeterministic(t *testing.T) {
	for _, name := range []string{"random", "bag"} {
		t.Run(name, func(t *testing.T) {
			a, err := NewRandomizer(name, 7)
			require.NoError(t, err)
			b, err := NewRandomizer(name, 7)
			require.NoError(t, err)
			for i := range 50 {
				require.Equal(t, a.Next(), b.Next(), "draw %d", i)
			}
		})
	}
}

func TestUnknownRandomizer(t *testing.T) {
	_, err := NewRandomizer("shuffle", 1)
	assert.Error(t, err)
}

func TestQueueRefillsOneForOne(t *testing.T) {
	q := NewQueue(fixedSequence(KindI, KindJ, KindL, KindO, KindS, KindT, KindZ), 3)
	assert.Equal(t, []PieceKind{KindI, KindJ, KindL}, q.Peek())

	assert.Equal(t, KindI, q.Next())
	assert.Equal(t, []PieceKind{KindJ, KindL, KindO}, q.Peek())

	assert.Equal(t, KindJ, q.Next())
	assert.Equal(t, KindL, q.Next())
	assert.Equal(t, []PieceKind{KindO, KindS, KindT}, q.Peek())
}

func TestQueueWithoutPreview(t *testing.T) {
	q := NewQueue(fixedSequence(KindT, KindZ), 0)
	assert.Empty(t, q.Peek())
	assert.Equal(t, KindT, q.Next())
	assert.Equal(t, KindZ, q.Next())
}

func TestQueuePeekIsACopy(t *testing.T) {
	q := NewQueue(fixedSequence(KindT), 2)
	next := q.Peek()
	next[0] = KindZ
	assert.Equal(t, KindT, q.Peek()[0])
}
