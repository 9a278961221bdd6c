package component

import "github.com/milk9111/skirmish/ecs"

// Health tracks an entity's hit points and alive flag. The transitions here
// are pure; the full damage path (shields, ability hooks, events, death
// processing) lives in system.ApplyDamage.
type Health struct {
	Current float64
	Max     float64
	Alive   bool
}

// NewHealth creates a full-health state. Non-positive max is floored to 1
// rather than rejected.
func NewHealth(max float64) Health {
	if max < 1 {
		max = 1
	}
	return Health{Current: max, Max: max, Alive: true}
}

// Damage applies up to amount of damage, clamped to the remaining hit
// points. Dead entities cannot be damaged again; died is true only on the
// transition across zero.
func (h *Health) Damage(amount float64) (applied float64, died bool) {
	if !h.Alive || amount <= 0 {
		return 0, false
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Alive = false
		return amount, true
	}
	return amount, false
}

// Heal restores up to amount, clamped to max. No-op on the dead.
func (h *Health) Heal(amount float64) float64 {
	if !h.Alive || amount <= 0 {
		return 0
	}
	if h.Current+amount > h.Max {
		amount = h.Max - h.Current
	}
	h.Current += amount
	return amount
}

// SetMax rescales max hit points, flooring at 1 and clamping current down if
// it now exceeds the new max. Used by aura buffs and their removal.
func (h *Health) SetMax(newMax float64) {
	if newMax < 1 {
		newMax = 1
	}
	h.Max = newMax
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

var HealthComponent = ecs.NewComponent[Health]()
