package uno

import (
	"math/rand"

	"github.com/SebastianHojer/functional-uno/deck"
)

// pin names a card that must end up at a given pile position
type pin struct {
	pos  int
	card deck.Card
}

// pinnedShuffler arranges the pinned cards on the first shuffle and
// leaves later shuffles untouched. Used in tests to rig deals.
func pinnedShuffler(pins ...pin) deck.Shuffler {
	done := false
	return func(cards []deck.Card) {
		if done {
			return
		}
		done = true

		taken := map[int]bool{}
		for _, p := range pins {
			for j := range cards {
				if taken[j] {
					continue
				}
				if cards[j] == p.card {
					cards[j], cards[p.pos] = cards[p.pos], cards[j]
					break
				}
			}
			taken[p.pos] = true
		}
	}
}

// shufflerSequence applies a different shuffler on each successive
// shuffle, then no-ops
func shufflerSequence(shufflers ...deck.Shuffler) deck.Shuffler {
	i := 0
	return func(cards []deck.Card) {
		if i < len(shufflers) {
			shufflers[i](cards)
			i++
		}
	}
}

func seededShuffler(seed int64) deck.Shuffler {
	return deck.NewShuffler(rand.New(rand.NewSource(seed)))
}

// testHand builds a small mid-game Hand for unit tests. Defaults: three
// players, player 0 in turn, a Red 3 on the discard pile.
func testHand(mods ...func(*Hand)) Hand {
	h := Hand{
		players:        []string{"Alice", "Bob", "Cara"},
		playerInTurn:   0,
		direction:      1,
		previousPlayer: -1,
		currentColor:   deck.Red,
		discardPile:    []deck.Card{deck.NewNumberCard(deck.Red, 3)},
		hands: [][]deck.Card{
			{deck.NewNumberCard(deck.Red, 5), deck.NewNumberCard(deck.Blue, 3)},
			{deck.NewNumberCard(deck.Green, 8), deck.NewActionCard(deck.Skip, deck.Yellow)},
			{deck.NewNumberCard(deck.Yellow, 1), deck.NewWildCard(deck.Wild)},
		},
		drawPile: []deck.Card{
			deck.NewNumberCard(deck.Green, 2),
			deck.NewNumberCard(deck.Blue, 7),
			deck.NewActionCard(deck.Reverse, deck.Green),
			deck.NewNumberCard(deck.Yellow, 9),
		},
		unoCalls: make([]bool, 3),
		shuffle:  seededShuffler(1),
	}
	for _, mod := range mods {
		mod(&h)
	}
	if len(h.unoCalls) != len(h.players) {
		h.unoCalls = make([]bool, len(h.players))
	}
	return h
}

// countCards totals every card in play
func countCards(h Hand) int {
	total := len(h.drawPile) + len(h.discardPile)
	for _, held := range h.hands {
		total += len(held)
	}
	return total
}
