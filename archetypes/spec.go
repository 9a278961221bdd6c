// Package archetypes loads the yaml-defined body, weapon, ability, and
// element archetypes that loadouts are assembled from. Defaults are embedded
// in the binary; a data directory can override them, and a Watcher can
// report edits for live reload between rounds.
package archetypes

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/skirmish/ecs/component"
)

// Body is the physical archetype of a unit.
type Body struct {
	ID          string  `yaml:"id"`
	MaxHP       float64 `yaml:"max_hp"`
	MoveSpeed   float64 `yaml:"move_speed"`
	AttackRange float64 `yaml:"attack_range"`
	Size        float64 `yaml:"size"`
}

// Weapon is the attack archetype of a unit. Projectile fields are ignored
// for melee weapons; AOERadius is ignored for everything but aoe.
type Weapon struct {
	ID                 string  `yaml:"id"`
	Damage             float64 `yaml:"damage"`
	Cooldown           float64 `yaml:"cooldown"`
	AttackType         string  `yaml:"attack_type"`
	AOERadius          float64 `yaml:"aoe_radius"`
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	ProjectileLifetime float64 `yaml:"projectile_lifetime"`
	TurnRate           float64 `yaml:"turn_rate"`
}

// Ability is the special-ability archetype: a closed kind tag plus named
// numeric parameters. Missing parameters fall back to per-kind defaults.
type Ability struct {
	ID     string             `yaml:"id"`
	Kind   string             `yaml:"kind"`
	Params map[string]float64 `yaml:"params"`
}

// Element is the elemental affinity archetype. Advantage applies when
// attacking StrongVs; Disadvantage when attacking WeakVs.
type Element struct {
	ID           string  `yaml:"id"`
	StrongVs     string  `yaml:"strong_vs"`
	WeakVs       string  `yaml:"weak_vs"`
	Advantage    float64 `yaml:"advantage"`
	Disadvantage float64 `yaml:"disadvantage"`
}

// Library indexes every loaded archetype by id.
type Library struct {
	Bodies    map[string]*Body
	Weapons   map[string]*Weapon
	Abilities map[string]*Ability
	Elements  map[string]*Element
}

type bodiesFile struct {
	Bodies []*Body `yaml:"bodies"`
}

type weaponsFile struct {
	Weapons []*Weapon `yaml:"weapons"`
}

type abilitiesFile struct {
	Abilities []*Ability `yaml:"abilities"`
}

type elementsFile struct {
	Elements []*Element `yaml:"elements"`
}

func loadFile[T any](name string) (T, error) {
	var zero T
	data, err := Load(name)
	if err != nil {
		return zero, fmt.Errorf("archetypes: load %s: %w", name, err)
	}
	var out T
	if err := yaml.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("archetypes: unmarshal %s: %w", name, err)
	}
	return out, nil
}

// LoadLibrary reads all four archetype files (disk override first, then the
// embedded defaults) and validates cross-file tags.
func LoadLibrary() (*Library, error) {
	bodies, err := loadFile[bodiesFile]("bodies.yaml")
	if err != nil {
		return nil, err
	}
	weapons, err := loadFile[weaponsFile]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	abilities, err := loadFile[abilitiesFile]("abilities.yaml")
	if err != nil {
		return nil, err
	}
	elements, err := loadFile[elementsFile]("elements.yaml")
	if err != nil {
		return nil, err
	}

	lib := &Library{
		Bodies:    make(map[string]*Body, len(bodies.Bodies)),
		Weapons:   make(map[string]*Weapon, len(weapons.Weapons)),
		Abilities: make(map[string]*Ability, len(abilities.Abilities)),
		Elements:  make(map[string]*Element, len(elements.Elements)),
	}
	for _, b := range bodies.Bodies {
		lib.Bodies[b.ID] = b
	}
	for _, w := range weapons.Weapons {
		if _, err := component.ParseAttackType(w.AttackType); err != nil {
			return nil, fmt.Errorf("archetypes: weapon %s: %w", w.ID, err)
		}
		lib.Weapons[w.ID] = w
	}
	for _, a := range abilities.Abilities {
		if _, err := component.ParseAbilityKind(a.Kind); err != nil {
			return nil, fmt.Errorf("archetypes: ability %s: %w", a.ID, err)
		}
		lib.Abilities[a.ID] = a
	}
	for _, e := range elements.Elements {
		lib.Elements[e.ID] = e
	}
	return lib, nil
}
