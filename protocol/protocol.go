// Package protocol defines the commands and messages exchanged between
// the game server and its websocket clients.
package protocol

// Cmd represents a command
type Cmd int

const (
	NewJoiner Cmd = iota
	Start
	HasStarted
	PlayCard
	DrawCard
	SayUno
	CatchUno
	Turn
	HandEnded
	MatchEnded
	GameState
	Error
)

var cmdNames = []string{
	"NewJoiner",
	"Start",
	"HasStarted",
	"PlayCard",
	"DrawCard",
	"SayUno",
	"CatchUno",
	"Turn",
	"HandEnded",
	"MatchEnded",
	"GameState",
	"Error",
}

func (c Cmd) String() string {
	if c < NewJoiner || int(c) >= len(cmdNames) {
		return "Unknown"
	}
	return cmdNames[c]
}
