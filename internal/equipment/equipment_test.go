package equipment

import (
	"testing"

	"github.com/ashfall/mudcore/internal/inventory"
	"github.com/pixil98/go-testutil"
)

type fakeItem struct {
	weight    float64
	maxStack  int
	stackable bool
	itemType  string
	props     map[string]any
}

func (f fakeItem) GetWeight() float64  { return f.weight }
func (f fakeItem) GetMaxStack() int    { return f.maxStack }
func (f fakeItem) IsStackable() bool   { return f.stackable }
func (f fakeItem) GetItemType() string { return f.itemType }
func (f fakeItem) GetProperty(key string) (any, bool) {
	v, ok := f.props[key]
	return v, ok
}

type fakeCatalog map[string]fakeItem

func (c fakeCatalog) ByID(id string) (ItemInfo, bool) {
	item, ok := c[id]
	if !ok {
		return nil, false
	}
	return item, true
}

func (c fakeCatalog) invLookup() inventoryLookup { return inventoryLookup{c} }

type inventoryLookup struct{ c fakeCatalog }

func (l inventoryLookup) ByID(id string) (inventory.ItemInfo, bool) {
	item, ok := l.c[id]
	if !ok {
		return nil, false
	}
	return item, true
}

func s1Catalog() fakeCatalog {
	return fakeCatalog{
		"iron_sword": {weight: 5, maxStack: 1, itemType: "WEAPON", props: map[string]any{}},
		"wooden_shield": {weight: 8, maxStack: 1, itemType: "SHIELD"},
		"two_handed_sword": {weight: 12, maxStack: 1, itemType: "WEAPON", props: map[string]any{"two_handed": true}},
	}
}

func TestScenarioS1_EquipConflict(t *testing.T) {
	cat := s1Catalog()
	inv := inventory.New()
	inv.Add("iron_sword", 1, cat.invLookup())
	inv.Add("wooden_shield", 1, cat.invLookup())

	mgr := New()

	swordDef, _ := cat.ByID("iron_sword")
	res := mgr.Equip("iron_sword", swordDef, "Iron Sword", inv, cat, "")
	if !res.Success {
		t.Fatalf("expected equip to succeed: %+v", res)
	}
	testutil.AssertEqual(t, "equip message", res.Message, "You equip Iron Sword on your main hand.")
	testutil.AssertEqual(t, "sword in inventory", inv.Quantity("iron_sword"), 0)

	shieldDef, _ := cat.ByID("wooden_shield")
	res = mgr.Equip("wooden_shield", shieldDef, "Wooden Shield", inv, cat, "")
	if !res.Success {
		t.Fatalf("expected shield equip to succeed: %+v", res)
	}
	if len(res.UnequippedItems) != 0 {
		t.Fatalf("expected no auto-unequip, got %+v", res.UnequippedItems)
	}

	// GIVE two_handed_sword x1
	inv.Add("two_handed_sword", 1, cat.invLookup())

	thDef, _ := cat.ByID("two_handed_sword")
	res = mgr.Equip("two_handed_sword", thDef, "Two-Handed Sword", inv, cat, "")
	if !res.Success {
		t.Fatalf("expected two-handed equip to succeed: %+v", res)
	}
	if len(res.UnequippedItems) != 2 || res.UnequippedItems[0].ItemID != "wooden_shield" || res.UnequippedItems[1].ItemID != "iron_sword" {
		t.Fatalf("expected shield and iron sword to be auto-unequipped, got %+v", res.UnequippedItems)
	}
	if mgr.Get(SlotOffHand) != nil {
		t.Fatal("expected OFF_HAND to be empty after two-handed equip")
	}
	if got := mgr.Get(SlotMainHand); got == nil || got.ItemID != "two_handed_sword" {
		t.Fatalf("expected two-handed sword in MAIN_HAND, got %+v", got)
	}
	testutil.AssertEqual(t, "shield returned to inventory", inv.Quantity("wooden_shield"), 1)
}

func TestEquip_TwoHandedBlocksOffHand(t *testing.T) {
	// REDESIGN FLAG: equipping into OFF_HAND must be blocked (via auto-unequip
	// of MAIN_HAND) when a two-handed weapon already occupies MAIN_HAND.
	cat := s1Catalog()
	inv := inventory.New()
	inv.Add("two_handed_sword", 1, cat.invLookup())
	inv.Add("wooden_shield", 1, cat.invLookup())

	mgr := New()
	thDef, _ := cat.ByID("two_handed_sword")
	res := mgr.Equip("two_handed_sword", thDef, "Two-Handed Sword", inv, cat, "")
	if !res.Success {
		t.Fatalf("setup equip failed: %+v", res)
	}

	shieldDef, _ := cat.ByID("wooden_shield")
	res = mgr.Equip("wooden_shield", shieldDef, "Wooden Shield", inv, cat, "")
	if !res.Success {
		t.Fatalf("expected shield equip to succeed by displacing the two-hander: %+v", res)
	}
	if len(res.UnequippedItems) != 1 || res.UnequippedItems[0].ItemID != "two_handed_sword" {
		t.Fatalf("expected two-handed sword auto-unequipped, got %+v", res.UnequippedItems)
	}
	if mgr.Get(SlotMainHand) != nil {
		t.Fatal("expected MAIN_HAND cleared")
	}
}

func TestUnequip_InventoryFull(t *testing.T) {
	cat := s1Catalog()
	capSlots := 0
	inv := inventory.NewCapped(&capSlots, nil)

	mgr := New()
	mgr.items[SlotMainHand] = &EquippedItem{ItemID: "iron_sword", Slot: SlotMainHand}

	res := mgr.Unequip(UnequipBy{Slot: SlotMainHand}, inv, cat)
	if res.Success {
		t.Fatal("expected unequip to fail: no inventory space")
	}
	testutil.AssertEqual(t, "reason code", res.ReasonCode, "inventory_full")
	if mgr.Get(SlotMainHand) == nil {
		t.Fatal("expected equipped item restored after failed unequip")
	}
}

func TestInvariant_OneItemPerSlot(t *testing.T) {
	mgr := New()
	for _, s := range AllSlots {
		if mgr.Get(s) != nil {
			t.Fatalf("expected slot %s empty initially", s)
		}
	}
}
