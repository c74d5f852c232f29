package uno

import (
	"fmt"
	"sync"

	"github.com/SebastianHojer/functional-uno/deck"
	"github.com/SebastianHojer/functional-uno/protocol"
)

// Lobby is a game that has been created but not yet dealt. Players are
// seated in join order; the first joiner is the admin.
type Lobby struct {
	ID      string
	Players []protocol.PlayerInfo
}

// PlayerNames returns the lobby's player names in seating order
func (l *Lobby) PlayerNames() []string {
	names := make([]string, len(l.Players))
	for i, p := range l.Players {
		names[i] = p.Name
	}
	return names
}

// ActiveGame pairs a running match with its seated players
type ActiveGame struct {
	Game    *Game
	Players []protocol.PlayerInfo
}

// Seat returns the seat index for a player ID
func (a *ActiveGame) Seat(playerID string) (int, bool) {
	for i, p := range a.Players {
		if p.PlayerID == playerID {
			return i, true
		}
	}
	return 0, false
}

// GameStore holds pending lobbies and active games. Apply is the
// single-writer entry point: actions against a game run one at a time
// under the store's lock.
type GameStore interface {
	FindActiveGame(id string) (*ActiveGame, bool)
	FindPendingGame(id string) (*Lobby, bool)
	AddPendingGame(id string, creator protocol.PlayerInfo) error
	AddToPendingPlayers(id string, player protocol.PlayerInfo) error
	ActivateGame(id string, targetScore int, shuffle deck.Shuffler) (*ActiveGame, error)
	Apply(id string, fn func(*ActiveGame) error) error
}

// InMemoryGameStore maps game IDs to lobbies and active games
type InMemoryGameStore struct {
	mu      sync.Mutex
	pending map[string]*Lobby
	active  map[string]*ActiveGame
}

// NewInMemoryGameStore constructs an empty InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		pending: map[string]*Lobby{},
		active:  map[string]*ActiveGame{},
	}
}

func (s *InMemoryGameStore) FindActiveGame(id string) (*ActiveGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.active[id]
	return game, ok
}

func (s *InMemoryGameStore) FindPendingGame(id string) (*Lobby, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lobby, ok := s.pending[id]
	return lobby, ok
}

func (s *InMemoryGameStore) AddPendingGame(id string, creator protocol.PlayerInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.pending[id]; exists {
		return fmt.Errorf("game with id %s already exists", id)
	}
	if _, exists := s.active[id]; exists {
		return fmt.Errorf("game with id %s already exists", id)
	}
	s.pending[id] = &Lobby{ID: id, Players: []protocol.PlayerInfo{creator}}
	return nil
}

func (s *InMemoryGameStore) AddToPendingPlayers(id string, player protocol.PlayerInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lobby, ok := s.pending[id]
	if !ok {
		return fmt.Errorf("pending game with id %s does not exist", id)
	}
	if len(lobby.Players) == maxPlayers {
		return fmt.Errorf("game %s is full", id)
	}
	lobby.Players = append(lobby.Players, player)
	return nil
}

// ActivateGame deals the first hand for a pending lobby and promotes it
// to the active map
func (s *InMemoryGameStore) ActivateGame(id string, targetScore int, shuffle deck.Shuffler) (*ActiveGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lobby, ok := s.pending[id]
	if !ok {
		return nil, fmt.Errorf("pending game with id %s does not exist", id)
	}
	game, err := NewGame(lobby.PlayerNames(), targetScore, shuffle)
	if err != nil {
		return nil, err
	}
	active := &ActiveGame{Game: game, Players: lobby.Players}
	delete(s.pending, id)
	s.active[id] = active
	return active, nil
}

// Apply runs fn against an active game while holding the store lock
func (s *InMemoryGameStore) Apply(id string, fn func(*ActiveGame) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.active[id]
	if !ok {
		return fmt.Errorf("active game with id %s does not exist", id)
	}
	return fn(game)
}
