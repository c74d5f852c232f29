package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New()

	t.Run("holds 108 cards", func(t *testing.T) {
		assert.Len(t, d, Size)
	})

	t.Run("has the right multiset per color", func(t *testing.T) {
		for color := Red; color <= Blue; color++ {
			numberCounts := map[int]int{}
			actionCounts := map[CardType]int{}

			for _, c := range d {
				if c.Color != color {
					continue
				}
				if c.Type == Numbered {
					numberCounts[c.Number]++
				} else {
					actionCounts[c.Type]++
				}
			}

			assert.Equal(t, 1, numberCounts[0], "one 0 of %s", color)
			for number := 1; number <= 9; number++ {
				assert.Equal(t, 2, numberCounts[number], "two %ds of %s", number, color)
			}
			for _, typ := range []CardType{Skip, Reverse, Draw} {
				assert.Equal(t, 2, actionCounts[typ], "two %ss of %s", typ, color)
			}
		}
	})

	t.Run("has four of each wild", func(t *testing.T) {
		wilds, wildDraws := 0, 0
		for _, c := range d {
			switch c.Type {
			case Wild:
				wilds++
			case WildDraw:
				wildDraws++
			}
		}
		assert.Equal(t, 4, wilds)
		assert.Equal(t, 4, wildDraws)
	})
}

func TestShuffle(t *testing.T) {
	t.Run("leaves the original deck untouched", func(t *testing.T) {
		d := New()
		d.Shuffle(NewShuffler(rand.New(rand.NewSource(7))))
		assert.Equal(t, New(), d)
	})

	t.Run("is a permutation", func(t *testing.T) {
		d := New()
		shuffled := d.Shuffle(NewShuffler(rand.New(rand.NewSource(7))))

		assert.Len(t, shuffled, Size)
		assert.ElementsMatch(t, d, shuffled)
		assert.NotEqual(t, d, shuffled)
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		first := New().Shuffle(NewShuffler(rand.New(rand.NewSource(7))))
		second := New().Shuffle(NewShuffler(rand.New(rand.NewSource(7))))
		assert.Equal(t, first, second)
	})
}

func TestDeal(t *testing.T) {
	pile := []Card{
		NewNumberCard(Red, 1),
		NewNumberCard(Yellow, 2),
		NewNumberCard(Green, 3),
	}

	t.Run("deals from the top of the pile", func(t *testing.T) {
		dealt, rest := Deal(2, pile)
		assert.Equal(t, pile[:2], dealt)
		assert.Equal(t, pile[2:], rest)
	})

	t.Run("deals fewer cards than asked from a short pile", func(t *testing.T) {
		dealt, rest := Deal(5, pile)
		assert.Len(t, dealt, 3)
		assert.Empty(t, rest)
	})

	t.Run("deals nothing for a non-positive count", func(t *testing.T) {
		dealt, rest := Deal(-1, pile)
		assert.Empty(t, dealt)
		assert.Len(t, rest, 3)
	})
}
