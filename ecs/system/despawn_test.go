package system

import (
	"testing"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

func TestDespawnSystem(t *testing.T) {
	w := ecs.NewWorld()
	r := newTestRoster(w)
	sys := NewDespawnSystem(r)

	attacker := spawnUnit(w, r, unitSpec{faction: component.FactionPlayer, hp: 10})
	target := spawnUnit(w, r, unitSpec{faction: component.FactionEnemy, hp: 5})

	ApplyDamage(w, target, attacker, 100)
	if !ecs.IsAlive(w, target) {
		t.Fatal("corpse should linger before the grace period ends")
	}

	sys.Update(w, deathGraceSeconds/2)
	if !ecs.IsAlive(w, target) {
		t.Fatal("half the grace period should not despawn")
	}

	sys.Update(w, deathGraceSeconds/2)
	if ecs.IsAlive(w, target) {
		t.Fatal("corpse should be destroyed after the grace period")
	}
	if len(r.members[component.FactionEnemy]) != 0 {
		t.Fatal("despawn should unregister from the roster")
	}
}
