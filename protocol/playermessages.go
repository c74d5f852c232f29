package protocol

import "github.com/SebastianHojer/functional-uno/deck"

// PlayerInfo identifies a player within a game
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// InboundMessage is a message from a player to the game server
type InboundMessage struct {
	PlayerID  string `json:"playerID"`
	Command   Cmd    `json:"command"`
	CardIndex int    `json:"cardIndex"`
	Color     string `json:"color,omitempty"`
	Accused   int    `json:"accused"`
}

// OutboundMessage is a message from the game server to a player
type OutboundMessage struct {
	PlayerID string     `json:"playerID"`
	Command  Cmd        `json:"command"`
	Joiner   PlayerInfo `json:"joiner,omitempty"`
	State    *HandState `json:"state,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// HandState is one player's redacted view of the current hand: their
// own cards in full, everyone else's as counts.
type HandState struct {
	Players      []string    `json:"players"`
	HandSizes    []int       `json:"handSizes"`
	Hand         []deck.Card `json:"hand"`
	TopOfDiscard deck.Card   `json:"topOfDiscard"`
	CurrentColor string      `json:"currentColor"`
	PlayerInTurn int         `json:"playerInTurn"`
	Scores       []int       `json:"scores"`
	HandEnded    bool        `json:"handEnded"`
	MatchWinner  int         `json:"matchWinner"`
}
