package main

import (
	"fmt"
	"os"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/skirmish/archetypes"
	"github.com/milk9111/skirmish/battle"
	"github.com/milk9111/skirmish/ecs/component"
)

// scenario describes a battle setup: one loadout bundle list per side.
type scenario struct {
	Player []deployment `yaml:"player"`
	Enemy  []deployment `yaml:"enemy"`
}

// deployment is one loadout plus where its squad deploys.
type deployment struct {
	Body     string   `yaml:"body"`
	Weapon   string   `yaml:"weapon"`
	Ability  string   `yaml:"ability"`
	Element  string   `yaml:"element"`
	Count    int      `yaml:"count"`
	Position position `yaml:"position"`
}

type position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Player) == 0 || len(s.Enemy) == 0 {
		return nil, fmt.Errorf("scenario %s: both sides need at least one deployment", path)
	}
	return &s, nil
}

// defaultScenario is a three-squad brawl exercising every attack type.
func defaultScenario() *scenario {
	return &scenario{
		Player: []deployment{
			{Body: "grunt", Weapon: "sword", Ability: "rage", Element: "ember", Count: 3, Position: position{X: -10}},
			{Body: "archer", Weapon: "bow", Ability: "slow_on_hit", Element: "tide", Count: 2, Position: position{X: -14, Y: 3}},
			{Body: "ogre", Weapon: "mortar", Ability: "hp_aura", Element: "bloom", Count: 1, Position: position{X: -14, Y: -3}},
		},
		Enemy: []deployment{
			{Body: "grunt", Weapon: "sword", Ability: "harden", Element: "tide", Count: 3, Position: position{X: 10}},
			{Body: "archer", Weapon: "seeker", Ability: "vampiric", Element: "bloom", Count: 2, Position: position{X: 14, Y: 3}},
			{Body: "ogre", Weapon: "mortar", Ability: "hp_aura", Element: "ember", Count: 1, Position: position{X: 14, Y: -3}},
		},
	}
}

// spawnSide resolves and deploys one side's loadouts. Unknown archetype ids
// fail the whole scenario; per-unit spawn problems are handled downstream.
func spawnSide(sess *battle.Session, lib *archetypes.Library, deps []deployment, faction component.Faction) error {
	for _, d := range deps {
		l, err := lib.Loadout(d.Body, d.Weapon, d.Ability, d.Element, d.Count)
		if err != nil {
			return fmt.Errorf("%s deployment: %w", faction, err)
		}
		sess.SpawnSquad(l, faction, cp.Vector{X: d.Position.X, Y: d.Position.Y})
	}
	return nil
}
