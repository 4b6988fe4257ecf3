package game

import "github.com/werewolves-night/onenight/internal/role"

// Conn delivers serialized events to a single client connection.
// Implementations must not block; the transport layer queues outbound
// messages so a slow reader never stalls a room.
type Conn interface {
	Send(event any)
}

// Wire event type discriminators.
const (
	EventJoinedRoom   = "joined_room"
	EventLobbyState   = "lobby_state"
	EventGameStarted  = "game_started"
	EventPhaseChanged = "phase_changed"
	EventPrivateState = "private_state"
	EventPromptAction = "prompt_action"
	EventPhaseWait    = "phase_wait"
	EventActionAck    = "action_ack"
	EventActionResult = "action_result"
)

// PlayerSummary is the public view of a player in lobby broadcasts.
type PlayerSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Ready  bool   `json:"ready"`
	IsHost bool   `json:"isHost"`
}

// JoinedRoom is sent to the joining connection only.
type JoinedRoom struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
	IsHost   bool   `json:"isHost"`
}

// LobbyState is broadcast on every roster or phase change.
type LobbyState struct {
	Type     string          `json:"type"`
	RoomCode string          `json:"roomCode"`
	Started  bool            `json:"started"`
	Phase    Phase           `json:"phase"`
	Players  []PlayerSummary `json:"players"`
}

type GameStarted struct {
	Type  string `json:"type"`
	Phase Phase  `json:"phase"`
}

type PhaseChanged struct {
	Type  string `json:"type"`
	Phase Phase  `json:"phase"`
}

// PrivateState carries a player's own cards. It is sent at deal time and
// again whenever an effect changes that player's current role.
type PrivateState struct {
	Type         string    `json:"type"`
	PlayerID     string    `json:"playerId"`
	Phase        Phase     `json:"phase"`
	OriginalRole role.Role `json:"originalRole"`
	CurrentRole  role.Role `json:"currentRole"`
}

type ActionSchema struct {
	Type Schema `json:"type"`
}

type ActionPrompt struct {
	Title  string       `json:"title"`
	Text   string       `json:"text"`
	Schema ActionSchema `json:"schema"`
}

// PromptAction is sent to each player who must act in the current phase.
type PromptAction struct {
	Type     string       `json:"type"`
	ActionID string       `json:"actionId"`
	Phase    Phase        `json:"phase"`
	Prompt   ActionPrompt `json:"prompt"`
}

// PhaseWait is sent to everyone who has nothing to do this phase.
type PhaseWait struct {
	Type  string `json:"type"`
	Phase Phase  `json:"phase"`
}

type ActionAck struct {
	Type     string `json:"type"`
	ActionID string `json:"actionId"`
}

// ActionResult reveals the outcome of an effect to the acting player only.
type ActionResult struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text"`
}
