package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/werewolves-night/onenight/internal/role"
)

const (
	// MinPlayers is the minimum number of players required to start.
	MinPlayers = 3

	// NameMaxLen caps display names.
	NameMaxLen = 16
)

// Room owns all state for one game: roster, deck, center cards, phase
// and the pending action. Every exported method takes the room mutex, so
// events for the same room are handled strictly one at a time; unexported
// methods assume the lock is already held. Rooms share nothing.
type Room struct {
	code string

	mu         sync.Mutex
	players    []*Player
	started    bool
	phase      Phase
	nightIndex int
	center     []role.Role
	pending    *pendingAction

	shuffle func([]role.Role) []role.Role
	log     zerolog.Logger
}

// NewRoom creates an empty, unstarted room.
func NewRoom(code string) *Room {
	return &Room{
		code:       code,
		phase:      PhaseLobby,
		nightIndex: -1,
		shuffle:    role.Shuffle,
		log:        log.With().Str("room", code).Logger(),
	}
}

// Code returns the room's join code.
func (r *Room) Code() string {
	return r.code
}

// Join adds a player to an unstarted room and returns the new player id.
// The first player to join becomes host.
func (r *Room) Join(conn Conn, name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return "", ErrGameStarted
	}

	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > NameMaxLen {
		name = string(runes[:NameMaxLen])
	}
	if name == "" {
		return "", ErrNameRequired
	}
	for _, p := range r.players {
		if strings.EqualFold(p.Name, name) {
			return "", ErrNameTaken
		}
	}

	player := &Player{
		ID:     uuid.NewString(),
		Name:   name,
		conn:   conn,
		isHost: len(r.players) == 0,
	}
	r.players = append(r.players, player)

	player.conn.Send(JoinedRoom{
		Type:     EventJoinedRoom,
		RoomCode: r.code,
		PlayerID: player.ID,
		IsHost:   player.isHost,
	})
	r.broadcastLobby()

	r.log.Info().Str("player", player.ID).Str("name", player.Name).Msg("player joined")
	return player.ID, nil
}

// SetReady flips a player's lobby ready flag. Once the game has started
// this is a no-op.
func (r *Room) SetReady(playerID string, ready bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return nil
	}
	player := r.playerByID(playerID)
	if player == nil {
		return ErrNotJoined
	}
	player.ready = ready
	r.broadcastLobby()
	return nil
}

// StartGame deals roles and begins the night. Only the host may start,
// with at least MinPlayers players, all of them ready.
func (r *Room) StartGame(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return ErrGameStarted
	}
	player := r.playerByID(playerID)
	if player == nil {
		return ErrNotJoined
	}
	if !player.isHost {
		return ErrNotHost
	}
	if len(r.players) < MinPlayers {
		return ErrNotEnoughPlayers
	}
	for _, p := range r.players {
		if !p.ready {
			return ErrNotAllReady
		}
	}

	deck, err := role.Build(len(r.players))
	if err != nil {
		r.log.Error().Err(err).Int("players", len(r.players)).Msg("deck build failed")
		return fmt.Errorf("cannot start game: %w", err)
	}

	r.started = true
	r.phase = PhaseSetup
	r.nightIndex = -1
	r.pending = nil

	shuffled := r.shuffle(deck)
	dealt, center := role.Deal(shuffled, len(r.players))
	for i, p := range r.players {
		p.originalRole = dealt[i]
		p.currentRole = dealt[i]
	}
	r.center = center

	r.log.Info().Int("players", len(r.players)).Int("deck", len(shuffled)).Msg("game started")

	r.broadcast(GameStarted{Type: EventGameStarted, Phase: r.phase})
	for _, p := range r.players {
		r.sendPrivateState(p)
	}
	r.broadcastLobby()

	r.advancePhase()
	return nil
}

// Disconnect removes a player from the room and reports whether the room
// is now empty. Before the game starts, host status passes to the
// earliest-joined remaining player. After the start, a leaving required
// actor is dropped from the pending action so the phase can still finish.
func (r *Room) Disconnect(playerID string) (empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return len(r.players) == 0
	}

	leaving := r.players[idx]
	wasHost := leaving.isHost
	r.players = append(r.players[:idx], r.players[idx+1:]...)

	r.log.Info().Str("player", leaving.ID).Str("name", leaving.Name).Msg("player left")

	if !r.started {
		if wasHost && len(r.players) > 0 {
			r.players[0].isHost = true
		}
		r.broadcastLobby()
		return len(r.players) == 0
	}

	r.broadcastLobby()

	if r.pending != nil && r.pending.requires(leaving.ID) {
		r.pending.drop(leaving.ID)
		if r.pending.done() {
			r.pending = nil
			r.advancePhase()
		}
	}
	return len(r.players) == 0
}

func (r *Room) sendPrivateState(p *Player) {
	p.conn.Send(PrivateState{
		Type:         EventPrivateState,
		PlayerID:     p.ID,
		Phase:        r.phase,
		OriginalRole: p.originalRole,
		CurrentRole:  p.currentRole,
	})
}

func (r *Room) broadcast(event any) {
	for _, p := range r.players {
		p.conn.Send(event)
	}
}

func (r *Room) broadcastLobby() {
	players := make([]PlayerSummary, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, PlayerSummary{
			ID:     p.ID,
			Name:   p.Name,
			Ready:  p.ready,
			IsHost: p.isHost,
		})
	}
	r.broadcast(LobbyState{
		Type:     EventLobbyState,
		RoomCode: r.code,
		Started:  r.started,
		Phase:    r.phase,
		Players:  players,
	})
}
