package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardString(t *testing.T) {
	tt := []struct {
		card Card
		want string
	}{
		{NewNumberCard(Red, 5), "Red 5"},
		{NewNumberCard(Blue, 0), "Blue 0"},
		{NewActionCard(Skip, Green), "Green Skip"},
		{NewActionCard(Reverse, Yellow), "Yellow Reverse"},
		{NewActionCard(Draw, Red), "Red Draw"},
		{NewWildCard(Wild), "Wild"},
		{NewWildCard(WildDraw), "Wild Draw Four"},
		{Card{Type: Wild, Color: Blue}, "Wild (Blue)"},
	}

	for _, tc := range tt {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.card.String())
		})
	}
}

func TestIsWild(t *testing.T) {
	assert.True(t, NewWildCard(Wild).IsWild())
	assert.True(t, NewWildCard(WildDraw).IsWild())
	assert.False(t, NewNumberCard(Red, 4).IsWild())
	assert.False(t, NewActionCard(Draw, Blue).IsWild())
}

func TestParseColor(t *testing.T) {
	for color := Red; color <= Blue; color++ {
		got, ok := ParseColor(color.String())
		assert.True(t, ok)
		assert.Equal(t, color, got)
	}

	_, ok := ParseColor("Purple")
	assert.False(t, ok)

	_, ok = ParseColor("")
	assert.False(t, ok)
}
