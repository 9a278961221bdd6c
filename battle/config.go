package battle

import (
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/skirmish/ecs/component"
)

// Config tunes a session. The zero value is usable; withDefaults fills in
// every unset field.
type Config struct {
	// TickRate is the fixed simulation rate in ticks per second.
	TickRate int
	// Duration is the wall-clock cap on a battle before the timeout
	// tie-break applies.
	Duration time.Duration
	// RetargetInterval throttles how often a seeking combatant may query
	// for a new target, in seconds.
	RetargetInterval float64
	// PoolPrewarm is the number of projectiles allocated up front.
	PoolPrewarm int
	// TieBreak is the winner when both rosters have equal total hit points
	// at timeout, or when the last combatants kill each other on the same
	// tick.
	TieBreak component.Faction
	Logger   *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.TickRate <= 0 {
		c.TickRate = 30
	}
	if c.Duration <= 0 {
		c.Duration = 60 * time.Second
	}
	if c.RetargetInterval <= 0 {
		c.RetargetInterval = 0.5
	}
	if c.PoolPrewarm <= 0 {
		c.PoolPrewarm = 16
	}
	if c.TieBreak == component.FactionNeutral {
		c.TieBreak = component.FactionPlayer
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
