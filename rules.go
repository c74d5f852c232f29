package uno

import (
	"github.com/SebastianHojer/functional-uno/deck"
)

// CanPlay reports whether the current player may legally play the card
// at cardIndex. Out-of-range indices and ended hands simply yield false.
func (h Hand) CanPlay(cardIndex int) bool {
	if h.HasEnded() {
		return false
	}
	held := h.hands[h.playerInTurn]
	if cardIndex < 0 || cardIndex >= len(held) {
		return false
	}
	return legalPlay(held[cardIndex], held, h.TopOfDiscard(), h.currentColor)
}

// CanPlayAny reports whether the current player has any legal play
func (h Hand) CanPlayAny() bool {
	if h.HasEnded() {
		return false
	}
	for i := range h.hands[h.playerInTurn] {
		if h.CanPlay(i) {
			return true
		}
	}
	return false
}

func legalPlay(card deck.Card, held []deck.Card, top deck.Card, color deck.Color) bool {
	switch card.Type {
	case deck.Wild:
		return true
	case deck.WildDraw:
		// only playable with no matching-color card in hand
		for _, c := range held {
			if c.Color == color {
				return false
			}
		}
		return true
	case deck.Skip, deck.Reverse, deck.Draw:
		return top.Type == card.Type || card.Color == color
	default:
		return card.Color == color ||
			(top.Type == deck.Numbered && top.Number == card.Number)
	}
}

// cardScore is the value a card contributes to the winner's score when
// left in a losing player's hand
func cardScore(c deck.Card) int {
	switch c.Type {
	case deck.Wild, deck.WildDraw:
		return 50
	case deck.Skip, deck.Reverse, deck.Draw:
		return 20
	default:
		return c.Number
	}
}
