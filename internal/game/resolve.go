package game

import (
	"fmt"
)

// SubmitAction validates a night-action submission against the pending
// action and applies its effect. Rejections are side-effect-free: nothing
// is mutated and the phase never advances on a rejected submission.
func (r *Room) SubmitAction(actorID, actionID string, payload Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	actor := r.playerByID(actorID)
	if actor == nil {
		return ErrNotJoined
	}
	if r.pending == nil {
		return ErrNoPendingAction
	}
	if actionID != r.pending.id {
		return ErrStaleAction
	}
	if r.pending.phase != r.phase {
		return ErrWrongPhase
	}
	if !r.pending.requires(actorID) {
		return ErrNotRequired
	}
	if r.pending.hasCompleted(actorID) {
		return ErrAlreadySubmitted
	}

	action, err := payload.variant(r.pending.schema)
	if err != nil {
		return err
	}

	result, changed, err := r.apply(actor, action)
	if err != nil {
		return err
	}

	r.pending.complete(actorID)

	actor.conn.Send(ActionAck{Type: EventActionAck, ActionID: r.pending.id})
	if result != nil {
		actor.conn.Send(*result)
	}
	for _, p := range changed {
		r.sendPrivateState(p)
	}

	r.log.Debug().
		Str("player", actor.ID).
		Str("schema", string(r.pending.schema)).
		Msg("action resolved")

	if r.pending.done() {
		r.pending = nil
		r.advancePhase()
	}
	return nil
}

// apply runs one effect. It returns the result to reveal to the actor
// (nil when there is nothing to reveal) and the players whose private
// state changed and must be re-sent. Swaps are a single read-modify-write
// of exactly two locations; a returned error means nothing was touched.
func (r *Room) apply(actor *Player, action nightAction) (*ActionResult, []*Player, error) {
	switch a := action.(type) {
	case confirmOnly:
		return nil, nil, nil

	case werewolfPeek:
		return &ActionResult{
			Type:  EventActionResult,
			Title: "Lone Werewolf",
			Text:  fmt.Sprintf("The center card you looked at is %s.", r.center[a.center]),
		}, nil, nil

	case seerPeekPlayer:
		target, err := r.otherPlayer(actor, a.target)
		if err != nil {
			return nil, nil, err
		}
		return &ActionResult{
			Type:  EventActionResult,
			Title: "Seer",
			Text:  fmt.Sprintf("%s is the %s.", target.Name, target.currentRole),
		}, nil, nil

	case seerPeekCenter:
		return &ActionResult{
			Type:  EventActionResult,
			Title: "Seer",
			Text:  fmt.Sprintf("The center cards are %s and %s.", r.center[a.first], r.center[a.second]),
		}, nil, nil

	case robberSwap:
		target, err := r.otherPlayer(actor, a.target)
		if err != nil {
			return nil, nil, err
		}
		actor.currentRole, target.currentRole = target.currentRole, actor.currentRole
		return &ActionResult{
			Type:  EventActionResult,
			Title: "Robber",
			Text:  fmt.Sprintf("You are now the %s.", actor.currentRole),
		}, []*Player{actor}, nil

	case troublemakerSwap:
		first, err := r.otherPlayer(actor, a.first)
		if err != nil {
			return nil, nil, err
		}
		second, err := r.otherPlayer(actor, a.second)
		if err != nil {
			return nil, nil, err
		}
		first.currentRole, second.currentRole = second.currentRole, first.currentRole
		return &ActionResult{
			Type:  EventActionResult,
			Title: "Troublemaker",
			Text:  fmt.Sprintf("You swapped the cards of %s and %s.", first.Name, second.Name),
		}, []*Player{first, second}, nil

	case drunkSwap:
		actor.currentRole, r.center[a.center] = r.center[a.center], actor.currentRole
		return nil, []*Player{actor}, nil

	case insomniacReveal:
		return &ActionResult{
			Type:  EventActionResult,
			Title: "Insomniac",
			Text:  fmt.Sprintf("You are the %s.", actor.currentRole),
		}, []*Player{actor}, nil

	default:
		return nil, nil, ErrWrongSchema
	}
}

// otherPlayer resolves a target id that must be a joined player other
// than the actor.
func (r *Room) otherPlayer(actor *Player, targetID string) (*Player, error) {
	if targetID == actor.ID {
		return nil, fmt.Errorf("%w: cannot target yourself", ErrInvalidAction)
	}
	target := r.playerByID(targetID)
	if target == nil {
		return nil, fmt.Errorf("%w: unknown target player", ErrInvalidAction)
	}
	return target, nil
}
