package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	uno "github.com/SebastianHojer/functional-uno"
	"github.com/SebastianHojer/functional-uno/deck"
	"github.com/SebastianHojer/functional-uno/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Name string `json:"name"`
}

type JoinGameReq struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
}

type PendingGameRes struct {
	GameID   string   `json:"game_id"`
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Admin    bool     `json:"is_admin"`
	Players  []string `json:"players"`
}

type GetGameRes struct {
	Status string `json:"status"`
	GameID string `json:"game_id"`
}

// GameServer serves the HTTP and websocket API around a GameStore
type GameServer struct {
	store uno.GameStore
	cfg   Config
	log   *logrus.Logger
	http.Server

	connsMu sync.Mutex
	conns   map[string]map[string]*websocket.Conn // gameID -> playerID -> conn
}

// NewID returns a fresh player ID
func NewID() string {
	return uuid.NewV4().String()
}

// NewGameID returns a short join code
func NewGameID() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[rand.Intn(len(letters))]
	}
	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(store uno.GameStore, cfg Config, log *logrus.Logger) *GameServer {
	s := &GameServer{
		store: store,
		cfg:   cfg,
		log:   log,
		conns: map[string]map[string]*websocket.Conn{},
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/join", http.HandlerFunc(s.HandleJoinGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleFindGame))
	router.Handle("/start/", http.HandlerFunc(s.HandleStartGame))
	router.Handle("/ws/", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	s.Addr = cfg.Addr
	s.Handler = cors(logMiddleware(log)(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// logMiddleware logs each request with structured fields
func logMiddleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
				"remote":   r.RemoteAddr,
			}).Info("http request")
		})
	}
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		g.writeParseError(err, w)
		return
	}
	if data.Name == "" {
		http.Error(w, "missing player name", http.StatusBadRequest)
		return
	}

	gameID := NewGameID()
	creator := protocol.PlayerInfo{PlayerID: NewID(), Name: data.Name}
	if err := g.store.AddPendingGame(gameID, creator); err != nil {
		g.log.WithError(err).Error("could not create game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	g.writeJSON(w, http.StatusCreated, PendingGameRes{
		GameID:   gameID,
		PlayerID: creator.PlayerID,
		Name:     creator.Name,
		Admin:    true,
		Players:  []string{creator.Name},
	})
}

// HandleJoinGame adds a player to a pending game
func (g *GameServer) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		g.writeParseError(err, w)
		return
	}
	if data.GameID == "" {
		http.Error(w, "missing game ID", http.StatusBadRequest)
		return
	}
	if data.Name == "" {
		http.Error(w, "missing player name", http.StatusBadRequest)
		return
	}

	if _, ok := g.store.FindPendingGame(data.GameID); !ok {
		http.Error(w, unknownGameIDMsg(data.GameID), http.StatusNotFound)
		return
	}

	joiner := protocol.PlayerInfo{PlayerID: NewID(), Name: data.Name}
	if err := g.store.AddToPendingPlayers(data.GameID, joiner); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	names := []string{}
	if lobby, ok := g.store.FindPendingGame(data.GameID); ok {
		names = lobby.PlayerNames()
	}

	g.writeJSON(w, http.StatusOK, PendingGameRes{
		GameID:   data.GameID,
		PlayerID: joiner.PlayerID,
		Name:     joiner.Name,
		Players:  names,
	})
}

// HandleFindGame reports whether a game is pending or active
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/game/")
	if gameID == "" {
		http.Error(w, "missing game ID", http.StatusBadRequest)
		return
	}

	status := ""
	if _, ok := g.store.FindPendingGame(gameID); ok {
		status = "pending"
	} else if _, ok := g.store.FindActiveGame(gameID); ok {
		status = "active"
	}
	if status == "" {
		http.Error(w, unknownGameIDMsg(gameID), http.StatusNotFound)
		return
	}

	g.writeJSON(w, http.StatusOK, GetGameRes{Status: status, GameID: gameID})
}

// HandleStartGame deals the first hand of a pending game
func (g *GameServer) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.TrimPrefix(r.URL.Path, "/start/")
	if gameID == "" {
		http.Error(w, "missing game ID", http.StatusBadRequest)
		return
	}

	shuffle := deck.NewShuffler(rand.New(rand.NewSource(time.Now().UnixNano())))
	if _, err := g.store.ActivateGame(gameID, g.cfg.TargetScore, shuffle); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g.log.WithField("gameID", gameID).Info("game started")
	g.broadcast(gameID, protocol.HasStarted)
	w.WriteHeader(http.StatusOK)
}

// HandleWS upgrades a player connection for an active game. Route shape
// is /ws/{gameID}/{playerID}.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/ws/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "expected /ws/{gameID}/{playerID}", http.StatusBadRequest)
		return
	}
	gameID, playerID := parts[0], parts[1]

	active, ok := g.store.FindActiveGame(gameID)
	if !ok {
		http.Error(w, unknownGameIDMsg(gameID), http.StatusNotFound)
		return
	}
	seat, ok := active.Seat(playerID)
	if !ok {
		http.Error(w, "unknown player ID", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("websocket upgrade failed")
		return
	}

	g.register(gameID, playerID, conn)
	g.log.WithFields(logrus.Fields{"gameID": gameID, "playerID": playerID}).Info("player connected")

	// connecting player gets the current state straight away
	if states, err := g.snapshotStates(gameID); err == nil {
		g.send(conn, protocol.OutboundMessage{
			PlayerID: playerID,
			Command:  protocol.GameState,
			State:    states[playerID],
		})
	}

	defer func() {
		g.unregister(gameID, playerID)
		conn.Close()
		g.log.WithFields(logrus.Fields{"gameID": gameID, "playerID": playerID}).Info("player disconnected")
	}()

	for {
		var msg protocol.InboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		msg.PlayerID = playerID

		if err := g.applyMessage(gameID, seat, msg); err != nil {
			g.send(conn, protocol.OutboundMessage{
				PlayerID: playerID,
				Command:  protocol.Error,
				Error:    err.Error(),
			})
			continue
		}
		g.broadcast(gameID, protocol.GameState)
	}
}

// applyMessage forwards one player action into the game under the
// store's single-writer lock
func (g *GameServer) applyMessage(gameID string, seat int, msg protocol.InboundMessage) error {
	return g.store.Apply(gameID, func(active *uno.ActiveGame) error {
		switch msg.Command {
		case protocol.PlayCard:
			if err := requireTurn(active, seat); err != nil {
				return err
			}
			color := deck.NoColor
			if msg.Color != "" {
				c, ok := deck.ParseColor(msg.Color)
				if !ok {
					return fmt.Errorf("unknown color %q", msg.Color)
				}
				color = c
			}
			return active.Game.Play(msg.CardIndex, color)
		case protocol.DrawCard:
			if err := requireTurn(active, seat); err != nil {
				return err
			}
			return active.Game.Draw()
		case protocol.SayUno:
			return active.Game.SayUno(seat)
		case protocol.CatchUno:
			return active.Game.CatchUnoFailure(seat, msg.Accused)
		default:
			return fmt.Errorf("unexpected command %s", msg.Command)
		}
	})
}

func requireTurn(active *uno.ActiveGame, seat int) error {
	turn, ok := active.Game.Hand().PlayerInTurn()
	if !ok || turn != seat {
		return errors.New("not your turn")
	}
	return nil
}

// broadcast sends each connected player their redacted view of the game
func (g *GameServer) broadcast(gameID string, cmd protocol.Cmd) {
	states, err := g.snapshotStates(gameID)
	if err != nil {
		return
	}

	g.connsMu.Lock()
	defer g.connsMu.Unlock()
	for playerID, conn := range g.conns[gameID] {
		state, ok := states[playerID]
		if !ok {
			continue
		}
		err := conn.WriteJSON(protocol.OutboundMessage{
			PlayerID: playerID,
			Command:  cmd,
			State:    state,
		})
		if err != nil {
			g.log.WithError(err).WithField("playerID", playerID).Error("broadcast failed")
		}
	}
}

// snapshotStates builds every seat's redacted view in a single pass
// under the store lock, so a concurrent action cannot tear the read
func (g *GameServer) snapshotStates(gameID string) (map[string]*protocol.HandState, error) {
	states := map[string]*protocol.HandState{}
	err := g.store.Apply(gameID, func(active *uno.ActiveGame) error {
		for seat, p := range active.Players {
			states[p.PlayerID] = buildHandState(active, seat)
		}
		return nil
	})
	return states, err
}

// buildHandState reads the game directly; callers hold the store lock
func buildHandState(active *uno.ActiveGame, seat int) *protocol.HandState {
	hand := active.Game.Hand()

	turn := -1
	if t, ok := hand.PlayerInTurn(); ok {
		turn = t
	}
	winner := -1
	if w, ok := active.Game.MatchWinner(); ok {
		winner = w
	}

	return &protocol.HandState{
		Players:      hand.Players(),
		HandSizes:    hand.HandSizes(),
		Hand:         hand.PlayerCards(seat),
		TopOfDiscard: hand.TopOfDiscard(),
		CurrentColor: hand.CurrentColor().String(),
		PlayerInTurn: turn,
		Scores:       active.Game.Scores(),
		HandEnded:    hand.HasEnded(),
		MatchWinner:  winner,
	}
}

// send writes to a connection under the registry lock; gorilla conns do
// not tolerate concurrent writers
func (g *GameServer) send(conn *websocket.Conn, msg protocol.OutboundMessage) {
	g.connsMu.Lock()
	defer g.connsMu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		g.log.WithError(err).Error("could not write message")
	}
}

func (g *GameServer) register(gameID, playerID string, conn *websocket.Conn) {
	g.connsMu.Lock()
	defer g.connsMu.Unlock()
	if g.conns[gameID] == nil {
		g.conns[gameID] = map[string]*websocket.Conn{}
	}
	g.conns[gameID][playerID] = conn
}

func (g *GameServer) unregister(gameID, playerID string) {
	g.connsMu.Lock()
	defer g.connsMu.Unlock()
	delete(g.conns[gameID], playerID)
}

func (g *GameServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		g.log.WithError(err).Error("could not write response")
	}
}

func (g *GameServer) writeParseError(err error, w http.ResponseWriter) {
	g.log.WithError(err).Info("could not parse request body")
	http.Error(w, "could not parse request body", http.StatusBadRequest)
}
