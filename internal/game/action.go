package game

import (
	"fmt"

	"github.com/werewolves-night/onenight/internal/role"
)

// Schema names the payload shape a pending action accepts.
type Schema string

const (
	SchemaConfirmOnly  Schema = "confirm_only"
	SchemaWerewolfSolo Schema = "werewolf_solo"
	SchemaSeer         Schema = "seer"
	SchemaRobber       Schema = "robber"
	SchemaTroublemaker Schema = "troublemaker"
	SchemaDrunk        Schema = "drunk"
	SchemaInsomniac    Schema = "insomniac"
)

func schemaFor(nightRole role.Role, actorCount int) Schema {
	switch nightRole {
	case role.Werewolf:
		if actorCount == 1 {
			return SchemaWerewolfSolo
		}
		return SchemaConfirmOnly
	case role.Seer:
		return SchemaSeer
	case role.Robber:
		return SchemaRobber
	case role.Troublemaker:
		return SchemaTroublemaker
	case role.Drunk:
		return SchemaDrunk
	case role.Insomniac:
		return SchemaInsomniac
	default:
		return SchemaConfirmOnly
	}
}

// Action is the wire form of a night-action submission. Which fields are
// meaningful depends on the pending schema; conversion to a typed variant
// validates the payload by construction.
type Action struct {
	Type    string `json:"type"`
	Center  *int   `json:"center,omitempty"`
	Centers []int  `json:"centers,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Target  string `json:"target,omitempty"`
	TargetA string `json:"targetA,omitempty"`
	TargetB string `json:"targetB,omitempty"`
}

type nightAction interface {
	isNightAction()
}

type confirmOnly struct{}

type werewolfPeek struct {
	center int
}

type seerPeekPlayer struct {
	target string
}

type seerPeekCenter struct {
	first, second int
}

type robberSwap struct {
	target string
}

type troublemakerSwap struct {
	first, second string
}

type drunkSwap struct {
	center int
}

type insomniacReveal struct{}

func (confirmOnly) isNightAction()      {}
func (werewolfPeek) isNightAction()     {}
func (seerPeekPlayer) isNightAction()   {}
func (seerPeekCenter) isNightAction()   {}
func (robberSwap) isNightAction()       {}
func (troublemakerSwap) isNightAction() {}
func (drunkSwap) isNightAction()        {}
func (insomniacReveal) isNightAction()  {}

// variant converts the wire payload into the typed action the pending
// schema expects, rejecting anything malformed or out of range.
func (a Action) variant(schema Schema) (nightAction, error) {
	if Schema(a.Type) != schema {
		return nil, ErrWrongSchema
	}

	switch schema {
	case SchemaConfirmOnly:
		return confirmOnly{}, nil

	case SchemaWerewolfSolo:
		c, err := centerIndex(a.Center)
		if err != nil {
			return nil, err
		}
		return werewolfPeek{center: c}, nil

	case SchemaSeer:
		switch a.Mode {
		case "player":
			if a.Target == "" {
				return nil, fmt.Errorf("%w: target player required", ErrInvalidAction)
			}
			return seerPeekPlayer{target: a.Target}, nil
		case "center":
			if len(a.Centers) != 2 {
				return nil, fmt.Errorf("%w: exactly two center cards required", ErrInvalidAction)
			}
			first, err := centerIndex(&a.Centers[0])
			if err != nil {
				return nil, err
			}
			second, err := centerIndex(&a.Centers[1])
			if err != nil {
				return nil, err
			}
			if first == second {
				return nil, fmt.Errorf("%w: center cards must be distinct", ErrInvalidAction)
			}
			return seerPeekCenter{first: first, second: second}, nil
		default:
			return nil, fmt.Errorf("%w: unknown seer mode %q", ErrInvalidAction, a.Mode)
		}

	case SchemaRobber:
		if a.Target == "" {
			return nil, fmt.Errorf("%w: target player required", ErrInvalidAction)
		}
		return robberSwap{target: a.Target}, nil

	case SchemaTroublemaker:
		if a.TargetA == "" || a.TargetB == "" {
			return nil, fmt.Errorf("%w: two target players required", ErrInvalidAction)
		}
		if a.TargetA == a.TargetB {
			return nil, fmt.Errorf("%w: targets must be distinct", ErrInvalidAction)
		}
		return troublemakerSwap{first: a.TargetA, second: a.TargetB}, nil

	case SchemaDrunk:
		c, err := centerIndex(a.Center)
		if err != nil {
			return nil, err
		}
		return drunkSwap{center: c}, nil

	case SchemaInsomniac:
		return insomniacReveal{}, nil

	default:
		return nil, ErrWrongSchema
	}
}

func centerIndex(idx *int) (int, error) {
	if idx == nil {
		return 0, fmt.Errorf("%w: center card required", ErrInvalidAction)
	}
	if *idx < 0 || *idx >= role.CenterSize {
		return 0, fmt.Errorf("%w: center card %d out of range", ErrInvalidAction, *idx)
	}
	return *idx, nil
}
