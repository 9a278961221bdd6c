package component

import (
	"fmt"

	"github.com/milk9111/skirmish/ecs"
)

// AbilityKind is the closed set of special-ability variants. Behavior for
// each kind is dispatched by a single switch per hook in system/ability.go;
// new abilities are added by extending this set, never by dynamic lookup.
type AbilityKind uint8

const (
	AbilityNone AbilityKind = iota
	AbilityHPAura
	AbilitySlowOnHit
	AbilityRage
	AbilityHarden
	AbilityVampiric
)

func (k AbilityKind) String() string {
	switch k {
	case AbilityHPAura:
		return "hp_aura"
	case AbilitySlowOnHit:
		return "slow_on_hit"
	case AbilityRage:
		return "rage"
	case AbilityHarden:
		return "harden"
	case AbilityVampiric:
		return "vampiric"
	default:
		return "none"
	}
}

// ParseAbilityKind maps an archetype yaml tag to an AbilityKind.
func ParseAbilityKind(s string) (AbilityKind, error) {
	switch s {
	case "", "none":
		return AbilityNone, nil
	case "hp_aura":
		return AbilityHPAura, nil
	case "slow_on_hit":
		return AbilitySlowOnHit, nil
	case "rage":
		return AbilityRage, nil
	case "harden":
		return AbilityHarden, nil
	case "vampiric":
		return AbilityVampiric, nil
	default:
		return AbilityNone, fmt.Errorf("component: unknown ability kind %q", s)
	}
}

// Ability is an entity's special-ability instance: its kind, the named
// parameters resolved at spawn (already scaled by the unit-count ability
// effectiveness multiplier), and per-kind runtime state.
type Ability struct {
	Kind   AbilityKind
	Params map[string]float64

	// HPAura state: pulse/cache timers, cached living allies, and the exact
	// max-HP bonus granted per ally so removal revokes precisely what was
	// applied.
	PulseTimer   float64
	RefreshTimer float64
	Allies       []ecs.Entity
	Buffed       map[ecs.Entity]float64

	// Rage state.
	RageStacks float64
}

// Param returns a named parameter, falling back to def when the archetype
// omitted it.
func (a *Ability) Param(name string, def float64) float64 {
	if a == nil || a.Params == nil {
		return def
	}
	v, ok := a.Params[name]
	if !ok {
		return def
	}
	return v
}

var AbilityComponent = ecs.NewComponent[Ability]()
