package game

import "github.com/werewolves-night/onenight/internal/role"

// pendingAction tracks one outstanding interaction window: the players
// who must respond before the current night phase can end, and who has.
// At most one exists per room at a time.
type pendingAction struct {
	id        string
	phase     Phase
	role      role.Role
	required  map[string]struct{}
	completed map[string]struct{}
	schema    Schema
}

func newPendingAction(id string, phase Phase, nightRole role.Role, actors []*Player, schema Schema) *pendingAction {
	required := make(map[string]struct{}, len(actors))
	for _, p := range actors {
		required[p.ID] = struct{}{}
	}
	return &pendingAction{
		id:        id,
		phase:     phase,
		role:      nightRole,
		required:  required,
		completed: make(map[string]struct{}),
		schema:    schema,
	}
}

func (pa *pendingAction) requires(playerID string) bool {
	_, ok := pa.required[playerID]
	return ok
}

func (pa *pendingAction) hasCompleted(playerID string) bool {
	_, ok := pa.completed[playerID]
	return ok
}

func (pa *pendingAction) complete(playerID string) {
	pa.completed[playerID] = struct{}{}
}

// drop removes a player from the action entirely, used when a required
// actor disconnects so the phase can still finish.
func (pa *pendingAction) drop(playerID string) {
	delete(pa.required, playerID)
	delete(pa.completed, playerID)
}

func (pa *pendingAction) done() bool {
	for id := range pa.required {
		if _, ok := pa.completed[id]; !ok {
			return false
		}
	}
	return true
}
