package uno

import (
	"errors"

	"github.com/SebastianHojer/functional-uno/deck"
)

const (
	minPlayers = 2
	maxPlayers = 10

	// DefaultCardsPerPlayer is the standard opening deal
	DefaultCardsPerPlayer = 7

	unoPenalty  = 4
	drawPenalty = 2
	wildPenalty = 4
)

var (
	ErrInvalidPlayerCount     = errors.New("between 2 and 10 players required")
	ErrGameEnded              = errors.New("the hand has ended")
	ErrCardNotFound           = errors.New("no card at that index")
	ErrIllegalColorAssignment = errors.New("color must be chosen for wild cards only")
	ErrIllegalPlay            = errors.New("card cannot be played on the current discard")
	ErrPlayerIndexOutOfBounds = errors.New("no player at that index")
	ErrNotEnoughCards         = errors.New("not enough cards to deal the hand")
)

// Hand is one round of play, from the deal until a player sheds their
// last card. A Hand value is immutable: every transition returns a new
// Hand and a failed transition returns the receiver unchanged.
type Hand struct {
	players        []string
	dealer         int
	playerInTurn   int // -1 once the hand has ended
	hands          [][]deck.Card
	drawPile       []deck.Card
	discardPile    []deck.Card // index 0 is the top
	direction      int
	currentColor   deck.Color
	unoCalls       []bool
	previousPlayer int // -1 until the first play
	accusationOpen bool
	shuffle        deck.Shuffler
}

// CreateHand shuffles a full deck, deals cardsPerPlayer cards to each
// player and reveals the first discard. A revealed wild goes back into
// the draw pile for a reshuffle; a hand never starts on a wild card.
// cardsPerPlayer <= 0 means DefaultCardsPerPlayer.
func CreateHand(players []string, dealer int, shuffle deck.Shuffler, cardsPerPlayer int) (Hand, error) {
	if len(players) < minPlayers || len(players) > maxPlayers {
		return Hand{}, ErrInvalidPlayerCount
	}
	if dealer < 0 || dealer >= len(players) {
		return Hand{}, ErrPlayerIndexOutOfBounds
	}
	if cardsPerPlayer <= 0 {
		cardsPerPlayer = DefaultCardsPerPlayer
	}

	h := Hand{
		players:        append([]string(nil), players...),
		dealer:         dealer,
		direction:      1,
		previousPlayer: -1,
		unoCalls:       make([]bool, len(players)),
		shuffle:        shuffle,
	}

	pile := []deck.Card(deck.New().Shuffle(shuffle))

	h.hands = make([][]deck.Card, len(players))
	for i := range players {
		var dealt []deck.Card
		dealt, pile = deck.Deal(cardsPerPlayer, pile)
		h.hands[i] = append([]deck.Card(nil), dealt...)
	}

	for {
		if len(pile) == 0 || !hasNonWild(pile) {
			return Hand{}, ErrNotEnoughCards
		}
		top := pile[0]
		if !top.IsWild() {
			h.discardPile = []deck.Card{top}
			h.drawPile = append([]deck.Card(nil), pile[1:]...)
			break
		}
		// rotate the wild to the back before reshuffling, so even a
		// shuffle that stops permuting cannot reveal it forever
		rotated := append(append([]deck.Card(nil), pile[1:]...), top)
		pile = []deck.Card(deck.Deck(rotated).Shuffle(shuffle))
	}

	top := h.discardPile[0]
	h.currentColor = top.Color

	switch top.Type {
	case deck.Reverse:
		h.direction = -1
		h.playerInTurn = h.advance(dealer, 1)
	case deck.Skip:
		h.playerInTurn = h.advance(dealer, 2)
	case deck.Draw:
		h.drawTo(h.advance(dealer, 1), drawPenalty)
		h.playerInTurn = h.advance(dealer, 2)
	default:
		h.playerInTurn = h.advance(dealer, 1)
	}

	return h, nil
}

// Play discards the card at cardIndex from the current player's hand.
// Wild cards must be given a color; colored cards must not.
func (h Hand) Play(cardIndex int, color deck.Color) (Hand, error) {
	if h.HasEnded() {
		return h, ErrGameEnded
	}
	held := h.hands[h.playerInTurn]
	if cardIndex < 0 || cardIndex >= len(held) {
		return h, ErrCardNotFound
	}
	card := held[cardIndex]
	if card.IsWild() {
		if color < deck.Red || color > deck.Blue {
			return h, ErrIllegalColorAssignment
		}
	} else if color != deck.NoColor {
		return h, ErrIllegalColorAssignment
	}
	if !h.CanPlay(cardIndex) {
		return h, ErrIllegalPlay
	}

	next := h.clone()
	acting := next.playerInTurn
	cards := next.hands[acting]
	next.hands[acting] = append(cards[:cardIndex], cards[cardIndex+1:]...)

	if card.IsWild() {
		card.Color = color
	}
	next.discardPile = append([]deck.Card{card}, next.discardPile...)
	next.currentColor = card.Color

	step := 1
	switch card.Type {
	case deck.Reverse:
		if len(next.players) == 2 {
			// two-handed reverse is a replay by the same player
			step = 0
		} else {
			next.direction = -next.direction
		}
	case deck.Skip:
		step = 2
	case deck.Draw:
		next.drawTo(next.advance(acting, 1), drawPenalty)
		step = 2
	case deck.WildDraw:
		next.drawTo(next.advance(acting, 1), wildPenalty)
		step = 2
	}

	next.previousPlayer = acting
	if len(next.hands[acting]) == 0 {
		next.playerInTurn = -1
		next.accusationOpen = false
		return next, nil
	}

	next.playerInTurn = next.advance(acting, step)
	next.accusationOpen = true
	for i := range next.unoCalls {
		if i != next.playerInTurn && i != acting {
			next.unoCalls[i] = false
		}
	}
	return next, nil
}

// Draw gives the current player one card from the draw pile, recycling
// the discard pile if needed. The turn passes only when the drawn card
// cannot be played; otherwise the player keeps the turn and may play it.
func (h Hand) Draw() (Hand, error) {
	if h.HasEnded() {
		return h, ErrGameEnded
	}

	next := h.clone()
	acting := next.playerInTurn
	before := len(next.hands[acting])
	next.drawTo(acting, 1)
	next.unoCalls[acting] = false
	next.accusationOpen = false

	drew := len(next.hands[acting]) > before
	if !drew || !next.CanPlay(len(next.hands[acting])-1) {
		next.playerInTurn = next.advance(acting, 1)
	}
	return next, nil
}

// SayUno records a player's "UNO" declaration. With more than two cards
// in hand the call is premature and ignored.
func (h Hand) SayUno(player int) (Hand, error) {
	if h.HasEnded() {
		return h, ErrGameEnded
	}
	if player < 0 || player >= len(h.players) {
		return h, ErrPlayerIndexOutOfBounds
	}
	if len(h.hands[player]) > 2 {
		return h, nil
	}
	next := h.clone()
	next.unoCalls[player] = true
	return next, nil
}

// CheckUnoFailure reports whether the accused can currently be caught:
// they made the most recent play, hold exactly one card, never said
// "UNO" and the accusation window is still open.
func (h Hand) CheckUnoFailure(accuser, accused int) (bool, error) {
	if accused < 0 || accused >= len(h.players) {
		return false, ErrPlayerIndexOutOfBounds
	}
	return h.accusationOpen &&
		accused == h.previousPlayer &&
		len(h.hands[accused]) == 1 &&
		!h.unoCalls[accused], nil
}

// CatchUnoFailure penalises a missed "UNO" declaration with four cards
// and closes the accusation window. A false accusation is a no-op.
func (h Hand) CatchUnoFailure(accuser, accused int) (Hand, error) {
	caught, err := h.CheckUnoFailure(accuser, accused)
	if err != nil {
		return h, err
	}
	if !caught {
		return h, nil
	}
	next := h.clone()
	next.drawTo(accused, unoPenalty)
	next.accusationOpen = false
	return next, nil
}

// HasEnded reports whether the hand is over
func (h Hand) HasEnded() bool {
	if h.playerInTurn < 0 {
		return true
	}
	for _, held := range h.hands {
		if len(held) == 0 {
			return true
		}
	}
	return false
}

// Winner returns the index of the player who shed all their cards
func (h Hand) Winner() (int, bool) {
	if !h.HasEnded() {
		return 0, false
	}
	for i, held := range h.hands {
		if len(held) == 0 {
			return i, true
		}
	}
	return 0, false
}

// Score sums the value of every losing player's remaining cards
func (h Hand) Score() (int, bool) {
	winner, ok := h.Winner()
	if !ok {
		return 0, false
	}
	total := 0
	for player, held := range h.hands {
		if player == winner {
			continue
		}
		for _, c := range held {
			total += cardScore(c)
		}
	}
	return total, true
}

// TopOfDiscard returns the currently active card
func (h Hand) TopOfDiscard() deck.Card {
	return h.discardPile[0]
}

// PlayerInTurn returns the index of the player who must act next,
// or false once the hand has ended
func (h Hand) PlayerInTurn() (int, bool) {
	if h.playerInTurn < 0 {
		return 0, false
	}
	return h.playerInTurn, true
}

// CurrentColor returns the color new plays must match
func (h Hand) CurrentColor() deck.Color {
	return h.currentColor
}

// Players returns the player names in seating order
func (h Hand) Players() []string {
	return append([]string(nil), h.players...)
}

// PlayerCards returns a copy of one player's held cards
func (h Hand) PlayerCards(player int) []deck.Card {
	if player < 0 || player >= len(h.players) {
		return nil
	}
	return append([]deck.Card(nil), h.hands[player]...)
}

// HandSizes returns the number of cards each player holds
func (h Hand) HandSizes() []int {
	sizes := make([]int, len(h.hands))
	for i, held := range h.hands {
		sizes[i] = len(held)
	}
	return sizes
}

// advance moves steps seats from the given seat in the direction of
// play, wrapping around the table in either direction.
func (h Hand) advance(from, steps int) int {
	n := len(h.players)
	return ((from+steps*h.direction)%n + n) % n
}

// drawTo moves n cards from the draw pile into a player's hand,
// rebuilding the draw pile from the discard pile (minus its top card)
// whenever it runs dry. If every card is already held, fewer than n
// cards are drawn.
func (h *Hand) drawTo(player, n int) {
	for i := 0; i < n; i++ {
		if len(h.drawPile) == 0 {
			h.recycleDiscard()
		}
		if len(h.drawPile) == 0 {
			return
		}
		h.hands[player] = append(h.hands[player], h.drawPile[0])
		h.drawPile = h.drawPile[1:]
	}
}

func hasNonWild(cards []deck.Card) bool {
	for _, c := range cards {
		if !c.IsWild() {
			return true
		}
	}
	return false
}

func (h *Hand) recycleDiscard() {
	if len(h.discardPile) <= 1 {
		return
	}
	recycled := deck.Deck(h.discardPile[1:]).Shuffle(h.shuffle)
	h.drawPile = []deck.Card(recycled)
	h.discardPile = []deck.Card{h.discardPile[0]}
}

func (h Hand) clone() Hand {
	next := h
	next.players = append([]string(nil), h.players...)
	next.hands = make([][]deck.Card, len(h.hands))
	for i, held := range h.hands {
		next.hands[i] = append([]deck.Card(nil), held...)
	}
	next.drawPile = append([]deck.Card(nil), h.drawPile...)
	next.discardPile = append([]deck.Card(nil), h.discardPile...)
	next.unoCalls = append([]bool(nil), h.unoCalls...)
	return next
}
