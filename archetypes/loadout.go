package archetypes

import (
	"errors"
	"fmt"

	"github.com/milk9111/skirmish/damage"
)

var (
	ErrMissingArchetype = errors.New("archetypes: loadout missing archetype")
	ErrInvalidCount     = errors.New("archetypes: invalid unit count")
)

// Loadout bundles the four archetypes plus a unit count into one deployable
// unit definition.
type Loadout struct {
	Body    *Body
	Weapon  *Weapon
	Ability *Ability
	Element *Element
	Count   int
}

// Validate enforces the loadout invariant: all four archetypes present and
// a purchasable unit count. Spawning an invalid loadout is skipped with a
// diagnostic, never a crash.
func (l Loadout) Validate() error {
	if l.Body == nil || l.Weapon == nil || l.Ability == nil || l.Element == nil {
		return ErrMissingArchetype
	}
	if !damage.ValidCount(l.Count) {
		return fmt.Errorf("%w: %d", ErrInvalidCount, l.Count)
	}
	return nil
}

// Loadout assembles a validated loadout from archetype ids.
func (lib *Library) Loadout(body, weapon, ability, element string, count int) (Loadout, error) {
	l := Loadout{
		Body:    lib.Bodies[body],
		Weapon:  lib.Weapons[weapon],
		Ability: lib.Abilities[ability],
		Element: lib.Elements[element],
		Count:   count,
	}
	if l.Body == nil {
		return Loadout{}, fmt.Errorf("archetypes: unknown body %q", body)
	}
	if l.Weapon == nil {
		return Loadout{}, fmt.Errorf("archetypes: unknown weapon %q", weapon)
	}
	if l.Ability == nil {
		return Loadout{}, fmt.Errorf("archetypes: unknown ability %q", ability)
	}
	if l.Element == nil {
		return Loadout{}, fmt.Errorf("archetypes: unknown element %q", element)
	}
	if err := l.Validate(); err != nil {
		return Loadout{}, err
	}
	return l, nil
}
