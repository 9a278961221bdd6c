package component

import "github.com/milk9111/skirmish/ecs"

// Faction is an entity's team allegiance.
type Faction uint8

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "neutral"
	}
}

// Opponent returns the opposing faction. Neutral has no opponent.
func (f Faction) Opponent() Faction {
	switch f {
	case FactionPlayer:
		return FactionEnemy
	case FactionEnemy:
		return FactionPlayer
	default:
		return FactionNeutral
	}
}

var FactionComponent = ecs.NewComponent[Faction]()
