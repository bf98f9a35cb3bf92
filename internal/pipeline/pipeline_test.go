package pipeline

import (
	"context"
	"testing"

	"github.com/ashfall/mudcore/internal/bus"
	"github.com/ashfall/mudcore/internal/catalog"
	"github.com/ashfall/mudcore/internal/engine"
	"github.com/ashfall/mudcore/internal/equipment"
	"github.com/ashfall/mudcore/internal/world"
	"github.com/pixil98/go-testutil"
)

func testPipeline(t *testing.T) (*Pipeline, *world.WorldState) {
	t.Helper()
	cat := catalog.New()
	cat.Register(&catalog.ItemDef{
		ItemID: "magic_ring", Name: "Magic Ring", ItemType: catalog.ItemTypeAccessory,
		Synonyms: []string{"ring"}, Properties: map[string]any{"accessory_type": "ring"},
	})
	cat.Register(&catalog.ItemDef{ItemID: "iron_sword", Name: "Iron Sword", ItemType: catalog.ItemTypeWeapon, Weight: 5})
	cat.Register(&catalog.ItemDef{ItemID: "health_potion_small", Name: "Health Potion", ItemType: catalog.ItemTypeConsumable, Stackable: true, MaxStack: 20})

	w := world.New(cat)
	w.Player("hero", "village_1")

	e := engine.New(w, bus.New())
	tagger := NewEntityTagger([]string{"Magic Ring", "Iron Sword", "Health Potion"})
	p := New(e, tagger, nil)
	return p, w
}

// TestScenarioS2_TakeOffDisambiguation: with magic_ring equipped in
// RING_LEFT, "take off ring" must resolve to UNEQUIP (never TAKE), succeed,
// and leave the ring in inventory with the slot empty.
func TestScenarioS2_TakeOffDisambiguation(t *testing.T) {
	ctx := context.Background()
	p, w := testPipeline(t)

	mgr := w.Equipment("hero")
	mgr.Restore(equipment.SlotRingLeft, &equipment.EquippedItem{ItemID: "magic_ring"})

	cmd, res, err := p.Process(ctx, "hero", "take off ring")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "action", cmd.Action, ActionUnequip)
	testutil.AssertEqual(t, "target", cmd.Target, "ring")
	testutil.AssertEqual(t, "source", cmd.Source, "prescan")
	testutil.AssertEqual(t, "confidence", cmd.Confidence, 0.95)

	if res == nil || !res.Success {
		t.Fatalf("expected unequip to succeed: %+v", res)
	}

	if mgr.Get(equipment.SlotRingLeft) != nil {
		t.Fatal("expected RING_LEFT to be empty after unequip")
	}
	if got := w.Equipment("hero").Get(equipment.SlotRingRight); got != nil {
		t.Fatal("expected RING_RIGHT to remain empty")
	}
	testutil.AssertEqual(t, "ring returned to inventory", w.Inventory("hero").Quantity("magic_ring"), 1)
}

func TestScenarioS2_TakeXOffVariant(t *testing.T) {
	ctx := context.Background()
	p, w := testPipeline(t)
	w.Equipment("hero").Restore(equipment.SlotRingLeft, &equipment.EquippedItem{ItemID: "magic_ring"})

	cmd, res, err := p.Process(ctx, "hero", "take ring off")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "action", cmd.Action, ActionUnequip)
	if res == nil || !res.Success {
		t.Fatalf("expected unequip to succeed: %+v", res)
	}
}

func TestPrescan_NeverMisclassifiesAsTake(t *testing.T) {
	for _, text := range []string{"take off ring", "take ring off", "unequip ring", "remove ring"} {
		cmd := prescan(text)
		if cmd == nil || cmd.Action != ActionUnequip {
			t.Fatalf("expected %q to prescan to unequip, got %+v", text, cmd)
		}
	}
}

func TestRegexBank_TakeRoutesToTake(t *testing.T) {
	cmd := matchRegexBank("take iron sword")
	if cmd == nil || cmd.Action != ActionTake {
		t.Fatalf("expected take action, got %+v", cmd)
	}
	testutil.AssertEqual(t, "target", cmd.Target, "iron sword")
	testutil.AssertEqual(t, "confidence", cmd.Confidence, 0.8)
}

func TestVerbNounFallback_UnrecognizedRegexFallsThrough(t *testing.T) {
	cmd := matchRegexBank("zork the sword")
	if cmd != nil {
		t.Fatalf("expected no regex match, got %+v", cmd)
	}
	fallback := verbNounFallback("zork the sword")
	if fallback != nil {
		t.Fatalf("expected no verb match either, got %+v", fallback)
	}
}

func TestProcess_EntityBoostRaisesConfidence(t *testing.T) {
	ctx := context.Background()
	p, w := testPipeline(t)
	w.Locations.DropToGround("village_1", "iron_sword", 1, w.ItemLookup())

	cmd, res, err := p.Process(ctx, "hero", "take iron sword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res == nil || !res.Success {
		t.Fatalf("expected take to succeed: %+v", res)
	}
	// Base regex confidence 0.8 + entity boost 0.1 = 0.9.
	testutil.AssertEqual(t, "boosted confidence", cmd.Confidence, 0.9)
}

func TestProcess_UnresolvedInputReturnsSuggestions(t *testing.T) {
	ctx := context.Background()
	p, _ := testPipeline(t)

	cmd, res, err := p.Process(ctx, "hero", "xyzzy plugh quux")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected no facade execution for unknown action, got %+v", res)
	}
	testutil.AssertEqual(t, "action", cmd.Action, ActionUnknown)
	testutil.AssertEqual(t, "confidence", cmd.Confidence, 0.1)
}

func TestProcess_NonFacadeActionParsesWithoutExecuting(t *testing.T) {
	ctx := context.Background()
	p, _ := testPipeline(t)

	cmd, res, err := p.Process(ctx, "hero", "look at well")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != nil {
		t.Fatalf("expected look to not invoke the facade, got %+v", res)
	}
	testutil.AssertEqual(t, "action", cmd.Action, ActionLook)
}
