package deck

import "fmt"

// CardType represents the kind of an UNO card
type CardType int

const (
	Numbered CardType = iota
	Skip
	Reverse
	Draw
	Wild
	WildDraw
)

var typeNames = []string{"Numbered", "Skip", "Reverse", "Draw", "Wild", "Wild Draw Four"}

func (t CardType) String() string {
	if t < Numbered || t > WildDraw {
		return fmt.Sprintf("unknown type (%d)", int(t))
	}
	return typeNames[t]
}

// Color represents a card color. Wild cards carry NoColor until they
// are played and assigned one.
type Color int

const (
	NoColor Color = iota
	Red
	Yellow
	Green
	Blue
)

var colorNames = []string{"", "Red", "Yellow", "Green", "Blue"}

func (c Color) String() string {
	if c < NoColor || c > Blue {
		return fmt.Sprintf("unknown color (%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor maps a color name to a Color
func ParseColor(name string) (Color, bool) {
	for c := Red; c <= Blue; c++ {
		if colorNames[c] == name {
			return c, true
		}
	}
	return NoColor, false
}

// Card represents an UNO card. Number is meaningful for Numbered cards only.
type Card struct {
	Type   CardType `json:"type"`
	Color  Color    `json:"color,omitempty"`
	Number int      `json:"number,omitempty"`
}

// NewNumberCard constructs a numbered card
func NewNumberCard(color Color, number int) Card {
	return Card{Type: Numbered, Color: color, Number: number}
}

// NewActionCard constructs a colored action card (Skip, Reverse or Draw)
func NewActionCard(t CardType, color Color) Card {
	return Card{Type: t, Color: color}
}

// NewWildCard constructs a Wild or WildDraw card with no color assigned
func NewWildCard(t CardType) Card {
	return Card{Type: t}
}

// IsWild reports whether the card's color is chosen by the player at play time
func (c Card) IsWild() bool {
	return c.Type == Wild || c.Type == WildDraw
}

func (c Card) String() string {
	switch c.Type {
	case Numbered:
		return fmt.Sprintf("%s %d", c.Color, c.Number)
	case Wild, WildDraw:
		if c.Color == NoColor {
			return c.Type.String()
		}
		return fmt.Sprintf("%s (%s)", c.Type, c.Color)
	default:
		return fmt.Sprintf("%s %s", c.Color, c.Type)
	}
}
