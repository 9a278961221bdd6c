package archetypes

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadLibraryEmbedded(t *testing.T) {
	lib, err := LoadLibrary()
	if err != nil {
		t.Fatalf("loading embedded defaults failed: %v", err)
	}

	if len(lib.Bodies) == 0 || len(lib.Weapons) == 0 || len(lib.Abilities) == 0 || len(lib.Elements) == 0 {
		t.Fatalf("embedded library should not be empty: %+v", lib)
	}

	for _, id := range []string{"grunt", "archer", "ogre"} {
		if lib.Bodies[id] == nil {
			t.Fatalf("missing embedded body %q", id)
		}
	}
	if w := lib.Weapons["seeker"]; w == nil || w.AttackType != "homing" || w.TurnRate <= 0 {
		t.Fatalf("seeker weapon malformed: %+v", w)
	}
	if a := lib.Abilities["hp_aura"]; a == nil || a.Params["hp_bonus"] <= 0 {
		t.Fatalf("hp_aura ability malformed: %+v", a)
	}
}

func TestEmbeddedElementCycle(t *testing.T) {
	lib, err := LoadLibrary()
	if err != nil {
		t.Fatal(err)
	}

	for id, e := range lib.Elements {
		counter := lib.Elements[e.StrongVs]
		if counter == nil {
			t.Fatalf("element %q is strong against unknown %q", id, e.StrongVs)
		}
		if counter.StrongVs == id {
			t.Fatalf("matchup must be antisymmetric: %q and %q are strong against each other", id, e.StrongVs)
		}
		// Advantage and disadvantage are not inverses; a round trip does not
		// cancel out.
		if e.Advantage*counter.Disadvantage == 1.0 {
			t.Fatalf("%q round-trip multipliers must not invert", id)
		}
	}
}

func TestLoadLibraryDiskOverride(t *testing.T) {
	dir := t.TempDir()
	override := `bodies:
  - id: titan
    max_hp: 500
    move_speed: 1
    attack_range: 2
    size: 1.5
`
	if err := os.WriteFile(filepath.Join(dir, "bodies.yaml"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	SetDataDir(dir)
	defer SetDataDir("")

	lib, err := LoadLibrary()
	if err != nil {
		t.Fatalf("load with override failed: %v", err)
	}
	if lib.Bodies["titan"] == nil {
		t.Fatal("override body should be loaded")
	}
	if lib.Bodies["grunt"] != nil {
		t.Fatal("override replaces the whole file, embedded grunt should be gone")
	}
	// Files without an override still come from the embed.
	if lib.Weapons["sword"] == nil {
		t.Fatal("non-overridden weapons should fall back to embedded")
	}
}

func TestLoadRejectsBadNames(t *testing.T) {
	if _, err := Load("nope.yaml"); err == nil {
		t.Fatal("unknown file should error")
	}
	// Path components are stripped, not honored.
	if _, err := Load("../data/bodies.yaml"); err != nil {
		t.Fatalf("path traversal should reduce to the basename: %v", err)
	}
}

func TestLoadout(t *testing.T) {
	lib, err := LoadLibrary()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("valid", func(t *testing.T) {
		l, err := lib.Loadout("grunt", "sword", "rage", "ember", 3)
		if err != nil {
			t.Fatalf("valid loadout rejected: %v", err)
		}
		if l.Body.ID != "grunt" || l.Count != 3 {
			t.Fatalf("unexpected loadout: %+v", l)
		}
	})

	cases := []struct {
		name    string
		body    string
		weapon  string
		ability string
		element string
		count   int
	}{
		{"unknown_body", "nope", "sword", "none", "ember", 1},
		{"unknown_weapon", "grunt", "nope", "none", "ember", 1},
		{"unknown_ability", "grunt", "sword", "nope", "ember", 1},
		{"unknown_element", "grunt", "sword", "none", "nope", 1},
		{"bad_count", "grunt", "sword", "none", "ember", 4},
		{"zero_count", "grunt", "sword", "none", "ember", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := lib.Loadout(c.body, c.weapon, c.ability, c.element, c.count); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher failed to start: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "bodies.yaml")
	if err := os.WriteFile(path, []byte("bodies: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event path = %q, want %q", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}

	// A pending event left unread must not make Close panic or hang.
	if err := os.WriteFile(filepath.Join(dir, "bodies.yaml"), []byte("bodies: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// The run goroutine owns the channels and closes them on exit.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				if err := w.Close(); err != nil {
					t.Fatalf("second close should be a no-op: %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("events channel should close after Close")
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}
