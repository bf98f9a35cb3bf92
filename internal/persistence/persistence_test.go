package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ashfall/mudcore/internal/catalog"
	"github.com/ashfall/mudcore/internal/location"
	"github.com/ashfall/mudcore/internal/world"
	"github.com/pixil98/go-testutil"
)

func testCatalog() *catalog.Catalog {
	c := catalog.New()
	c.Register(&catalog.ItemDef{ItemID: "health_potion_small", Name: "Health Potion", ItemType: catalog.ItemTypeConsumable, Stackable: true, MaxStack: 20, Weight: 0.5})
	c.Register(&catalog.ItemDef{ItemID: "iron_sword", Name: "Iron Sword", ItemType: catalog.ItemTypeWeapon, Weight: 5})
	return c
}

func buildWorld() *world.WorldState {
	w := world.New(testCatalog())
	p := w.Player("hero", "village_1")
	p.Discover("ruin_1")
	w.Inventory("hero").Add("health_potion_small", 3, w.ItemLookup())
	w.Locations.CreateContainer("village_1", location.TypeBarrel, "barrel", "a barrel", location.TierNormal)
	w.GlobalState["schema_note"] = "unrecognized-but-preserved"
	return w
}

// TestInvariant8_BackendRoundTrip saves a full world through a real
// FileBackend and reloads it into a fresh WorldState.
func TestInvariant8_BackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	backend := NewFileBackend(dir)

	w := buildWorld()
	mgr := NewManager(backend, w, "game1")
	if err := mgr.Save(ctx, false); err != nil {
		t.Fatalf("full save failed: %v", err)
	}

	fresh := world.New(testCatalog())
	freshMgr := NewManager(backend, fresh, "game1")
	loaded, err := freshMgr.Load(ctx)
	if err != nil || !loaded {
		t.Fatalf("expected load to succeed, got loaded=%v err=%v", loaded, err)
	}

	p, ok := fresh.LookupPlayer("hero")
	if !ok {
		t.Fatal("expected hero to exist after load")
	}
	testutil.AssertEqual(t, "current_location", p.CurrentLocation, "village_1")
	testutil.AssertEqual(t, "potion qty", fresh.Inventory("hero").Quantity("health_potion_small"), 3)
	testutil.AssertEqual(t, "global state preserved", fresh.GlobalState["schema_note"].(string), "unrecognized-but-preserved")
	if len(fresh.Locations.All()) != 1 {
		t.Fatalf("expected 1 container after load, got %d", len(fresh.Locations.All()))
	}
}

// TestScenarioS6_PartialAutoSaveMerge implements spec.md's scenario: save a
// complete world, mutate only the player's current_location, trigger a
// partial save covering just that dirty section, then reload and confirm
// every other field survived untouched.
func TestScenarioS6_PartialAutoSaveMerge(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	backend := NewFileBackend(dir)

	w := buildWorld()
	mgr := NewManager(backend, w, "game1")
	if err := mgr.Save(ctx, false); err != nil {
		t.Fatalf("initial full save failed: %v", err)
	}

	p, _ := w.LookupPlayer("hero")
	p.CurrentLocation = "ruin_1"
	mgr.markDirty(dirtySet{player: true})

	if err := mgr.Save(ctx, true); err != nil {
		t.Fatalf("partial save failed: %v", err)
	}

	fresh := world.New(testCatalog())
	freshMgr := NewManager(backend, fresh, "game1")
	if _, err := freshMgr.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	reloaded, _ := fresh.LookupPlayer("hero")
	testutil.AssertEqual(t, "current_location after partial save", reloaded.CurrentLocation, "ruin_1")
	testutil.AssertEqual(t, "potion qty survives partial save", fresh.Inventory("hero").Quantity("health_potion_small"), 3)
	testutil.AssertEqual(t, "global state survives partial save", fresh.GlobalState["schema_note"].(string), "unrecognized-but-preserved")
	if len(fresh.Locations.All()) != 1 {
		t.Fatalf("expected container from the original full save to survive, got %d", len(fresh.Locations.All()))
	}
}

func TestValidateFull_RejectsMissingSections(t *testing.T) {
	snap := world.Snapshot{Player: map[string]world.PlayerDict{}}
	if err := ValidateFull(snap); err == nil {
		t.Fatal("expected ValidateFull to reject a snapshot missing locations/containers")
	}
}

func TestFileBackend_BackupRotationEnforcesKeepCount(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	backend := NewFileBackend(dir)
	backend.KeepCount = 3

	if err := backend.Save(ctx, "game1", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := backend.Backup(ctx, "game1"); err != nil {
			t.Fatalf("backup %d failed: %v", i, err)
		}
	}

	entries, err := filepath.Glob(filepath.Join(dir, "backups", "game1_world_state_backup_*.json"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(entries) > backend.KeepCount {
		t.Fatalf("expected at most %d backups retained, got %d", backend.KeepCount, len(entries))
	}
}
