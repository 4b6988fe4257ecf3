package game

import "github.com/werewolves-night/onenight/internal/role"

// Player is one seat in a room. The original role is fixed at deal time
// and decides which night phase summons the player; only the current
// role is ever mutated by swap effects.
type Player struct {
	ID   string
	Name string

	conn   Conn
	ready  bool
	isHost bool

	originalRole role.Role
	currentRole  role.Role
}

func (r *Room) playerByID(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// actorsFor returns the players dealt the given role, in join order.
func (r *Room) actorsFor(nightRole role.Role) []*Player {
	var actors []*Player
	for _, p := range r.players {
		if p.originalRole == nightRole {
			actors = append(actors, p)
		}
	}
	return actors
}
