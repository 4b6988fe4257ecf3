package game

import (
	"github.com/google/uuid"

	"github.com/werewolves-night/onenight/internal/role"
)

// Phase is the room's position in the fixed game sequence.
type Phase string

const (
	PhaseLobby      Phase = "LOBBY"
	PhaseSetup      Phase = "SETUP"
	PhaseDiscussion Phase = "DISCUSSION"
	PhaseVoting     Phase = "VOTING"
)

func nightPhaseFor(nightRole role.Role) Phase {
	return Phase("NIGHT_" + string(nightRole))
}

func isNightPhase(p Phase) bool {
	return len(p) > 6 && p[:6] == "NIGHT_"
}

// advancePhase moves the room forward. Voting is terminal: once reached,
// further advancement is a no-op.
func (r *Room) advancePhase() {
	switch {
	case r.phase == PhaseSetup || isNightPhase(r.phase):
		r.advanceNight()
	case r.phase == PhaseDiscussion:
		r.setPhase(PhaseVoting)
	}
}

// advanceNight walks the night order from the current index, skipping
// every role nobody was dealt. The walk is bounded by the catalog length,
// so a deck with no night roles in player hands falls straight through
// to discussion.
func (r *Room) advanceNight() {
	for r.nightIndex++; r.nightIndex < len(role.NightOrder); r.nightIndex++ {
		nightRole := role.NightOrder[r.nightIndex]
		actors := r.actorsFor(nightRole)
		if len(actors) == 0 {
			continue
		}
		r.setPhase(nightPhaseFor(nightRole))
		r.beginNightPhase(nightRole, actors)
		return
	}
	r.setPhase(PhaseDiscussion)
}

func (r *Room) setPhase(phase Phase) {
	r.phase = phase
	r.log.Debug().Str("phase", string(phase)).Msg("phase changed")
	r.broadcast(PhaseChanged{Type: EventPhaseChanged, Phase: phase})
	r.broadcastLobby()
}

// beginNightPhase opens the interaction window for a role: every player
// dealt that role must respond before the phase can end. Callers only
// reach this with at least one actor.
func (r *Room) beginNightPhase(nightRole role.Role, actors []*Player) {
	schema := schemaFor(nightRole, len(actors))
	pending := newPendingAction(uuid.NewString(), r.phase, nightRole, actors, schema)
	r.pending = pending

	title, text := promptFor(nightRole, len(actors))
	prompt := PromptAction{
		Type:     EventPromptAction,
		ActionID: pending.id,
		Phase:    r.phase,
		Prompt: ActionPrompt{
			Title:  title,
			Text:   text,
			Schema: ActionSchema{Type: schema},
		},
	}

	for _, p := range r.players {
		if pending.requires(p.ID) {
			p.conn.Send(prompt)
		} else {
			p.conn.Send(PhaseWait{Type: EventPhaseWait, Phase: r.phase})
		}
	}

	r.log.Debug().
		Str("role", string(nightRole)).
		Str("schema", string(schema)).
		Int("actors", len(actors)).
		Msg("night phase awaiting actors")
}

func promptFor(nightRole role.Role, actorCount int) (title, text string) {
	title = string(nightRole)
	switch nightRole {
	case role.Werewolf:
		if actorCount >= 2 {
			return title, "Werewolves: open your eyes and see each other. Tap Confirm when done."
		}
		return title, "You are the only Werewolf. You may look at one center card."
	case role.Minion:
		return title, "Minion: see the Werewolves. Tap Confirm when done."
	case role.Mason:
		return title, "Mason: see the other Mason (if any). Tap Confirm."
	case role.Seer:
		return title, "Seer: look at another player's card, or at two center cards."
	case role.Robber:
		return title, "Robber: swap your card with another player's, then see your new card."
	case role.Troublemaker:
		return title, "Troublemaker: swap the cards of two other players."
	case role.Drunk:
		return title, "Drunk: swap your card with a center card. You do not look at it."
	case role.Insomniac:
		return title, "Insomniac: wake up and check your card."
	default:
		return title, "Tap Confirm."
	}
}
