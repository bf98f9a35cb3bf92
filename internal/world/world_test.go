package world

import (
	"testing"

	"github.com/ashfall/mudcore/internal/catalog"
	"github.com/ashfall/mudcore/internal/equipment"
	"github.com/ashfall/mudcore/internal/location"
	"github.com/pixil98/go-testutil"
)

func testCatalogWorld() *catalog.Catalog {
	c := catalog.New()
	c.Register(&catalog.ItemDef{ItemID: "health_potion_small", Name: "Health Potion", ItemType: catalog.ItemTypeConsumable, Stackable: true, MaxStack: 20, Weight: 0.5})
	c.Register(&catalog.ItemDef{ItemID: "iron_sword", Name: "Iron Sword", ItemType: catalog.ItemTypeWeapon, Weight: 5})
	return c
}

// TestInvariant8_SaveLoadRoundTrip exercises ToDict/Merge as a stand-in for
// a full save/load cycle (the persistence manager wraps this with file I/O).
func TestInvariant8_SaveLoadRoundTrip(t *testing.T) {
	w := New(testCatalogWorld())
	p := w.Player("hero", "village_1")
	p.Discover("ruin_1")

	inv := w.Inventory("hero")
	inv.Add("health_potion_small", 3, w.ItemLookup())
	inv.Add("iron_sword", 1, w.ItemLookup())

	mgr := w.Equipment("hero")
	mgr.Restore(equipment.SlotMainHand, &equipment.EquippedItem{ItemID: "iron_sword", Slot: equipment.SlotMainHand})

	w.Locations.CreateContainer("village_1", location.TypeBarrel, "barrel", "a barrel", location.TierNormal)
	w.GlobalState["schema_note"] = "unrecognized-but-preserved"

	snap := w.ToDict()

	fresh := New(testCatalogWorld())
	fresh.Merge(snap)

	reloadedPlayer, ok := fresh.LookupPlayer("hero")
	if !ok {
		t.Fatal("expected hero to exist after merge")
	}
	testutil.AssertEqual(t, "current_location", reloadedPlayer.CurrentLocation, "village_1")
	if !reloadedPlayer.HasDiscovered("ruin_1") {
		t.Fatal("expected ruin_1 to remain discovered after round trip")
	}

	reloadedInv := fresh.Inventory("hero")
	testutil.AssertEqual(t, "potion qty", reloadedInv.Quantity("health_potion_small"), 3)

	reloadedEquip := fresh.Equipment("hero")
	if got := reloadedEquip.Get(equipment.SlotMainHand); got == nil || got.ItemID != "iron_sword" {
		t.Fatalf("expected iron_sword still equipped, got %+v", got)
	}

	testutil.AssertEqual(t, "global_state preserved", fresh.GlobalState["schema_note"].(string), "unrecognized-but-preserved")

	if len(fresh.Locations.All()) != 1 {
		t.Fatalf("expected one persisted container, got %d", len(fresh.Locations.All()))
	}
}

// TestInvariant9_PartialMergeNeverLoses checks that merging a partial
// snapshot (only the player section) leaves container state untouched.
func TestInvariant9_PartialMergeNeverLoses(t *testing.T) {
	w := New(testCatalogWorld())
	w.Player("hero", "village_1")
	w.Inventory("hero").Add("iron_sword", 1, w.ItemLookup())
	w.Locations.CreateContainer("village_1", location.TypeBarrel, "barrel", "a barrel", location.TierNormal)

	full := w.ToDict()

	// Mutate only current_location and merge a player-only partial.
	partial := Snapshot{
		Player: map[string]PlayerDict{
			"hero": {
				PlayerID:            "hero",
				CurrentLocation:     "ruin_1",
				DiscoveredLocations: full.Player["hero"].DiscoveredLocations,
				Inventory:           full.Player["hero"].Inventory,
				Equipment:           full.Player["hero"].Equipment,
			},
		},
	}

	fresh := New(testCatalogWorld())
	fresh.Merge(full)
	fresh.Merge(partial)

	p, _ := fresh.LookupPlayer("hero")
	testutil.AssertEqual(t, "location after partial merge", p.CurrentLocation, "ruin_1")
	testutil.AssertEqual(t, "inventory untouched by partial merge", fresh.Inventory("hero").Quantity("iron_sword"), 1)
	if len(fresh.Locations.All()) != 1 {
		t.Fatal("expected container from full snapshot to survive partial merge")
	}
}
