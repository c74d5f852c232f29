package uno

import (
	"github.com/SebastianHojer/functional-uno/deck"
)

// DefaultTargetScore ends the match once a player's cumulative score
// reaches it
const DefaultTargetScore = 500

// HandResult records the outcome of a single finished hand
type HandResult struct {
	Winner int `json:"winner"`
	Points int `json:"points"`
}

// Game sequences hands into a match. It holds one Hand at a time,
// forwards player actions into it, accumulates the winner's points
// when a hand ends and deals the next hand with a rotated dealer until
// someone reaches the target score.
//
// A Game is not safe for concurrent use; callers serialize actions
// (the server applies them under the store lock).
type Game struct {
	players     []string
	scores      []int
	dealer      int
	targetScore int
	shuffle     deck.Shuffler
	hand        Hand
	results     []HandResult
	matchWinner int // -1 while the match is running
}

// NewGame deals the first hand of a match. targetScore <= 0 means
// DefaultTargetScore.
func NewGame(players []string, targetScore int, shuffle deck.Shuffler) (*Game, error) {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}
	hand, err := CreateHand(players, 0, shuffle, DefaultCardsPerPlayer)
	if err != nil {
		return nil, err
	}
	return &Game{
		players:     append([]string(nil), players...),
		scores:      make([]int, len(players)),
		targetScore: targetScore,
		shuffle:     shuffle,
		hand:        hand,
		matchWinner: -1,
	}, nil
}

// Hand returns the current hand
func (g *Game) Hand() Hand {
	return g.hand
}

// Players returns the player names in seating order
func (g *Game) Players() []string {
	return append([]string(nil), g.players...)
}

// Scores returns each player's cumulative score
func (g *Game) Scores() []int {
	return append([]int(nil), g.scores...)
}

// Results returns the outcomes of all finished hands
func (g *Game) Results() []HandResult {
	return append([]HandResult(nil), g.results...)
}

// MatchWinner returns the winning player once the match is over
func (g *Game) MatchWinner() (int, bool) {
	if g.matchWinner < 0 {
		return 0, false
	}
	return g.matchWinner, true
}

// GameOver reports whether the match has been decided
func (g *Game) GameOver() bool {
	return g.matchWinner >= 0
}

// Play forwards a card play into the current hand
func (g *Game) Play(cardIndex int, color deck.Color) error {
	if g.GameOver() {
		return ErrGameEnded
	}
	hand, err := g.hand.Play(cardIndex, color)
	if err != nil {
		return err
	}
	g.hand = hand
	return g.settle()
}

// Draw forwards a draw into the current hand
func (g *Game) Draw() error {
	if g.GameOver() {
		return ErrGameEnded
	}
	hand, err := g.hand.Draw()
	if err != nil {
		return err
	}
	g.hand = hand
	return nil
}

// SayUno forwards an "UNO" declaration into the current hand
func (g *Game) SayUno(player int) error {
	if g.GameOver() {
		return ErrGameEnded
	}
	hand, err := g.hand.SayUno(player)
	if err != nil {
		return err
	}
	g.hand = hand
	return nil
}

// CatchUnoFailure forwards an accusation into the current hand
func (g *Game) CatchUnoFailure(accuser, accused int) error {
	if g.GameOver() {
		return ErrGameEnded
	}
	hand, err := g.hand.CatchUnoFailure(accuser, accused)
	if err != nil {
		return err
	}
	g.hand = hand
	return nil
}

// settle scores a finished hand and either ends the match or deals the
// next hand with the dealer rotated one seat.
func (g *Game) settle() error {
	if !g.hand.HasEnded() {
		return nil
	}
	winner, _ := g.hand.Winner()
	points, _ := g.hand.Score()

	g.results = append(g.results, HandResult{Winner: winner, Points: points})
	g.scores[winner] += points

	if g.scores[winner] >= g.targetScore {
		g.matchWinner = winner
		return nil
	}

	g.dealer = (g.dealer + 1) % len(g.players)
	hand, err := CreateHand(g.players, g.dealer, g.shuffle, DefaultCardsPerPlayer)
	if err != nil {
		return err
	}
	g.hand = hand
	return nil
}
