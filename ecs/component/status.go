package component

import "github.com/milk9111/skirmish/ecs"

// StatusType tags a timed buff or debuff.
type StatusType uint8

const (
	StatusSlow StatusType = iota
	StatusStun
	StatusRoot
	StatusPoison
	StatusSpeedBuff
	StatusDamageBuff
	StatusShield
)

func (t StatusType) String() string {
	switch t {
	case StatusSlow:
		return "slow"
	case StatusStun:
		return "stun"
	case StatusRoot:
		return "root"
	case StatusPoison:
		return "poison"
	case StatusSpeedBuff:
		return "speed_buff"
	case StatusDamageBuff:
		return "damage_buff"
	case StatusShield:
		return "shield"
	default:
		return "unknown"
	}
}

// StatusEffect is one timed effect instance. Source is a non-owning handle
// used only for identity; it is never resolved after the source dies.
type StatusEffect struct {
	Type      StatusType
	Duration  float64
	Magnitude float64
	Source    ecs.Entity
}

// StatusSet holds an entity's active effects. At most one effect exists per
// (type, source) pair; re-applying refreshes duration and magnitude to the
// max of old and new.
type StatusSet struct {
	effects []StatusEffect
}

// Apply inserts or refreshes an effect. Returns true when the effect is new.
func (s *StatusSet) Apply(effect StatusEffect) bool {
	for i := range s.effects {
		existing := &s.effects[i]
		if existing.Type != effect.Type || existing.Source != effect.Source {
			continue
		}
		if effect.Duration > existing.Duration {
			existing.Duration = effect.Duration
		}
		if effect.Magnitude > existing.Magnitude {
			existing.Magnitude = effect.Magnitude
		}
		return false
	}
	s.effects = append(s.effects, effect)
	return true
}

// Tick decrements durations by dt and removes effects that reach zero,
// returning the expired effects.
func (s *StatusSet) Tick(dt float64) []StatusEffect {
	var expired []StatusEffect
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.Duration -= dt
		if e.Duration <= 0 {
			expired = append(expired, e)
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept
	return expired
}

// SpeedMultiplier folds every Slow and SpeedBuff into one movement factor,
// floored at 0.1: slows can never fully immobilize by themselves. Stun and
// Root are separate predicates, not part of this multiplier.
func (s *StatusSet) SpeedMultiplier() float64 {
	m := 1.0
	for _, e := range s.effects {
		switch e.Type {
		case StatusSlow:
			m *= 1 - e.Magnitude
		case StatusSpeedBuff:
			m *= 1 + e.Magnitude
		}
	}
	if m < 0.1 {
		m = 0.1
	}
	return m
}

// DamageMultiplier folds active DamageBuff effects into an outgoing factor.
func (s *StatusSet) DamageMultiplier() float64 {
	m := 1.0
	for _, e := range s.effects {
		if e.Type == StatusDamageBuff {
			m *= 1 + e.Magnitude
		}
	}
	return m
}

// ShieldFactor folds active Shield effects into an incoming damage factor,
// clamped to [0, 1].
func (s *StatusSet) ShieldFactor() float64 {
	m := 1.0
	for _, e := range s.effects {
		if e.Type == StatusShield {
			m *= 1 - e.Magnitude
		}
	}
	if m < 0 {
		m = 0
	}
	return m
}

// Has reports whether any effect of the given type is active.
func (s *StatusSet) Has(t StatusType) bool {
	for _, e := range s.effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

func (s *StatusSet) IsStunned() bool { return s.Has(StatusStun) }

func (s *StatusSet) IsRooted() bool { return s.Has(StatusRoot) }

// Effects returns the active effects. Callers must not mutate the slice.
func (s *StatusSet) Effects() []StatusEffect {
	return s.effects
}

// Clear removes every effect; used on death and round reset.
func (s *StatusSet) Clear() {
	s.effects = nil
}

var StatusSetComponent = ecs.NewComponent[StatusSet]()
