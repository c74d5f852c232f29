// A local demo: two scripted players shed cards until one of them wins
// the match.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	uno "github.com/SebastianHojer/functional-uno"
	"github.com/SebastianHojer/functional-uno/deck"
)

const maxTurns = 100000

func main() {
	log := logrus.New()

	shuffle := deck.NewShuffler(rand.New(rand.NewSource(time.Now().UnixNano())))
	game, err := uno.NewGame([]string{"Harry", "Sally"}, 200, shuffle)
	if err != nil {
		log.WithError(err).Fatal("could not start a new game")
	}

	players := game.Players()
	handsReported := 0

	for turns := 0; !game.GameOver(); turns++ {
		if turns == maxTurns {
			log.Fatal("game did not finish")
		}
		if err := step(game); err != nil {
			log.WithError(err).Fatal("could not take turn")
		}
		for _, result := range game.Results()[handsReported:] {
			fmt.Printf("%s wins the hand for %d points\n", players[result.Winner], result.Points)
			handsReported++
		}
	}

	winner, _ := game.MatchWinner()
	fmt.Printf("\n%s wins the match! Final scores: %v\n", players[winner], game.Scores())
}

// step plays the first legal card in the current player's hand,
// declaring "UNO" when down to two cards, and draws when stuck.
func step(game *uno.Game) error {
	hand := game.Hand()
	player, ok := hand.PlayerInTurn()
	if !ok {
		return nil
	}

	cards := hand.PlayerCards(player)
	if len(cards) == 2 {
		if err := game.SayUno(player); err != nil {
			return err
		}
	}

	for i, card := range cards {
		if !hand.CanPlay(i) {
			continue
		}
		color := deck.NoColor
		if card.IsWild() {
			color = favoriteColor(cards, i)
		}
		return game.Play(i, color)
	}

	return game.Draw()
}

// favoriteColor picks the color the player holds most of
func favoriteColor(cards []deck.Card, wildIndex int) deck.Color {
	counts := map[deck.Color]int{}
	for i, c := range cards {
		if i != wildIndex && c.Color != deck.NoColor {
			counts[c.Color]++
		}
	}

	best := deck.Red
	for color := deck.Red; color <= deck.Blue; color++ {
		if counts[color] > counts[best] {
			best = color
		}
	}
	return best
}
