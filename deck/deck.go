package deck

import "math/rand"

// Size is the number of cards in a full UNO deck
const Size = 108

// Deck represents an ordered pile of cards. Position 0 is the top:
// the next card to be dealt, or the most recently discarded.
type Deck []Card

// Shuffler permutes a pile of cards in place. All randomness in the
// game flows through an injected Shuffler, so a deterministic one
// makes whole games reproducible.
type Shuffler func([]Card)

// NewShuffler returns a Fisher-Yates Shuffler backed by the given source
func NewShuffler(r *rand.Rand) Shuffler {
	return func(cards []Card) {
		for i := len(cards) - 1; i > 0; i-- {
			j := r.Intn(i + 1)
			cards[i], cards[j] = cards[j], cards[i]
		}
	}
}

// New creates the full 108-card deck: per color one 0, two each of 1-9
// and two each of Skip, Reverse and Draw, plus four Wilds and four
// Wild Draw Fours.
func New() Deck {
	cards := make([]Card, 0, Size)
	for color := Red; color <= Blue; color++ {
		cards = append(cards, NewNumberCard(color, 0))
		for number := 1; number <= 9; number++ {
			cards = append(cards, NewNumberCard(color, number), NewNumberCard(color, number))
		}
		for _, t := range []CardType{Skip, Reverse, Draw} {
			cards = append(cards, NewActionCard(t, color), NewActionCard(t, color))
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, NewWildCard(Wild), NewWildCard(WildDraw))
	}
	return cards
}

// Shuffle returns a permutation of the deck produced by the given
// Shuffler. The receiver is left untouched.
func (d Deck) Shuffle(shuffle Shuffler) Deck {
	shuffled := make(Deck, len(d))
	copy(shuffled, d)
	shuffle(shuffled)
	return shuffled
}

// Deal splits off the first n cards of a pile, returning them and the
// remainder. A pile shorter than n yields fewer than n cards.
func Deal(n int, pile []Card) (dealt, rest []Card) {
	if n < 0 {
		n = 0
	}
	if n > len(pile) {
		n = len(pile)
	}
	return pile[:n], pile[n:]
}
