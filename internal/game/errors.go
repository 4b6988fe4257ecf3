package game

import "errors"

// Lobby rejections.
var (
	ErrGameStarted      = errors.New("game already started")
	ErrNameRequired     = errors.New("name is required")
	ErrNameTaken        = errors.New("name already taken")
	ErrNotEnoughPlayers = errors.New("need at least 3 players")
	ErrNotAllReady      = errors.New("all players must be ready")
)

// Action rejections, in the order submissions are validated.
var (
	ErrNotJoined        = errors.New("not joined")
	ErrNoPendingAction  = errors.New("no action pending")
	ErrStaleAction      = errors.New("stale action")
	ErrWrongPhase       = errors.New("wrong phase")
	ErrNotRequired      = errors.New("you are not required to act")
	ErrAlreadySubmitted = errors.New("already submitted")
	ErrNotHost          = errors.New("only the host can start")
	ErrWrongSchema      = errors.New("invalid action for this phase")
)

// ErrInvalidAction is the base for malformed or out-of-range payloads.
// Specific failures wrap it with a description of what was wrong.
var ErrInvalidAction = errors.New("invalid action")
