package uno

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SebastianHojer/functional-uno/deck"
	utils "github.com/SebastianHojer/functional-uno/internal"
)

func TestNewGame(t *testing.T) {
	t.Run("rejects invalid player counts", func(t *testing.T) {
		_, err := NewGame([]string{"Solo"}, 0, seededShuffler(1))
		assert.ErrorIs(t, err, ErrInvalidPlayerCount)
	})

	t.Run("deals the first hand", func(t *testing.T) {
		game, err := NewGame([]string{"A", "B", "C"}, 0, seededShuffler(1))
		utils.AssertNoError(t, err)

		utils.AssertTrue(t, !game.GameOver())
		utils.AssertDeepEqual(t, game.Scores(), []int{0, 0, 0})
		utils.AssertDeepEqual(t, game.Players(), []string{"A", "B", "C"})
		utils.AssertTrue(t, !game.Hand().HasEnded())
		_, ok := game.MatchWinner()
		utils.AssertTrue(t, !ok)
	})
}

// playOut drives a game with a first-legal-card strategy until fn says
// to stop
func playOut(t *testing.T, game *Game, stop func() bool) {
	t.Helper()
	for steps := 0; !stop(); steps++ {
		require.Less(t, steps, 200000, "game did not finish")

		hand := game.Hand()
		player, ok := hand.PlayerInTurn()
		require.True(t, ok)

		played := false
		for i, card := range hand.PlayerCards(player) {
			if !hand.CanPlay(i) {
				continue
			}
			color := deck.NoColor
			if card.IsWild() {
				color = deck.Red
			}
			require.NoError(t, game.Play(i, color))
			played = true
			break
		}
		if !played {
			require.NoError(t, game.Draw())
		}
	}
}

func TestGameSequencing(t *testing.T) {
	t.Run("a finished hand is scored and the next one dealt", func(t *testing.T) {
		game, err := NewGame([]string{"A", "B", "C"}, DefaultTargetScore, seededShuffler(3))
		utils.AssertNoError(t, err)

		playOut(t, game, func() bool { return len(game.Results()) > 0 || game.GameOver() })

		results := game.Results()
		require.Len(t, results, 1)

		scores := game.Scores()
		utils.AssertEqual(t, scores[results[0].Winner], results[0].Points)

		if !game.GameOver() {
			// the next hand is already live
			utils.AssertTrue(t, !game.Hand().HasEnded())
			_, ok := game.Hand().PlayerInTurn()
			utils.AssertTrue(t, ok)
		}
	})

	t.Run("the match ends at the target score", func(t *testing.T) {
		game, err := NewGame([]string{"A", "B"}, 1, seededShuffler(5))
		utils.AssertNoError(t, err)

		playOut(t, game, game.GameOver)

		winner, ok := game.MatchWinner()
		require.True(t, ok)

		scores := game.Scores()
		assert.GreaterOrEqual(t, scores[winner], 1)

		results := game.Results()
		require.NotEmpty(t, results)
		assert.Equal(t, winner, results[len(results)-1].Winner)
	})

	t.Run("actions are rejected once the match is over", func(t *testing.T) {
		game, err := NewGame([]string{"A", "B"}, 1, seededShuffler(5))
		utils.AssertNoError(t, err)
		playOut(t, game, game.GameOver)

		assert.ErrorIs(t, game.Play(0, deck.NoColor), ErrGameEnded)
		assert.ErrorIs(t, game.Draw(), ErrGameEnded)
		assert.ErrorIs(t, game.SayUno(0), ErrGameEnded)
		assert.ErrorIs(t, game.CatchUnoFailure(0, 1), ErrGameEnded)
	})

	t.Run("forwards errors from the hand", func(t *testing.T) {
		game, err := NewGame([]string{"A", "B"}, 0, seededShuffler(7))
		utils.AssertNoError(t, err)

		assert.ErrorIs(t, game.Play(99, deck.NoColor), ErrCardNotFound)
		assert.ErrorIs(t, game.SayUno(42), ErrPlayerIndexOutOfBounds)
	})
}
