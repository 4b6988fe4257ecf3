package ws

import "github.com/werewolves-night/onenight/internal/game"

// Inbound message types.
const (
	msgCreateRoom   = "create_room"
	msgJoinRoom     = "join_room"
	msgSetReady     = "set_ready"
	msgStartGame    = "start_game"
	msgSubmitAction = "submit_action"
)

// clientMessage is the envelope for every inbound message. The Type
// discriminator decides which other fields are read.
type clientMessage struct {
	Type     string      `json:"type"`
	RoomCode string      `json:"roomCode"`
	Name     string      `json:"name"`
	Ready    bool        `json:"ready"`
	ActionID string      `json:"actionId"`
	Action   game.Action `json:"action"`
}

type roomCreated struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
}

// errorEvent is sent to the originating connection only, never broadcast.
type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
