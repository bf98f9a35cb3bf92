package inventory

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

// fakeItem is a minimal ItemInfo for tests that don't need a real catalog.
type fakeItem struct {
	weight    float64
	maxStack  int
	stackable bool
}

func (f fakeItem) GetWeight() float64 { return f.weight }
func (f fakeItem) GetMaxStack() int   { return f.maxStack }
func (f fakeItem) IsStackable() bool  { return f.stackable }

type fakeCatalog map[string]fakeItem

func (c fakeCatalog) ByID(id string) (ItemInfo, bool) {
	item, ok := c[id]
	if !ok {
		return nil, false
	}
	return item, true
}

func potionCatalog() fakeCatalog {
	return fakeCatalog{
		"health_potion_small": {weight: 0.5, maxStack: 10, stackable: true},
		"ancient_key":          {weight: 0.1, maxStack: 1, stackable: false},
		"iron_sword":           {weight: 5, maxStack: 1, stackable: false},
	}
}

func TestInventory_AddRemoveRoundTrip(t *testing.T) {
	inv := New()
	cat := potionCatalog()

	if !inv.Add("health_potion_small", 3, cat) {
		t.Fatal("expected add to succeed")
	}
	testutil.AssertEqual(t, "quantity", inv.Quantity("health_potion_small"), 3)

	before := inv.AllItems()
	if !inv.Add("health_potion_small", 2, cat) {
		t.Fatal("expected add to succeed")
	}
	if !inv.Remove("health_potion_small", 2, cat) {
		t.Fatal("expected remove to succeed")
	}
	after := inv.AllItems()

	// Invariant 3: add(k,n) then remove(k,n) is a no-op on the slot multiset.
	if len(before) != len(after) {
		t.Fatalf("slot multiset changed: %v -> %v", before, after)
	}
}

func TestInventory_AddFillsExistingStackFirst(t *testing.T) {
	inv := New()
	cat := potionCatalog()

	inv.Add("health_potion_small", 5, cat)
	inv.Add("health_potion_small", 3, cat)

	all := inv.AllItems()
	if len(all) != 1 {
		t.Fatalf("expected single stack row, got %d rows: %v", len(all), all)
	}
	testutil.AssertEqual(t, "stack quantity", all[0].Quantity, 8)
}

func TestInventory_AddOverflowsIntoNewRow(t *testing.T) {
	inv := New()
	cat := potionCatalog()

	inv.Add("health_potion_small", 10, cat) // fills the one stack row exactly
	inv.Add("health_potion_small", 1, cat)  // must overflow to a new row

	all := inv.AllItems()
	if len(all) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(all), all)
	}
	testutil.AssertEqual(t, "total quantity", inv.Quantity("health_potion_small"), 11)
}

func TestInventory_WeightInvariant(t *testing.T) {
	inv := New()
	cat := potionCatalog()

	inv.Add("health_potion_small", 4, cat) // 0.5 * 4 = 2.0
	inv.Add("iron_sword", 1, cat)          // + 5.0

	testutil.AssertEqual(t, "current weight", inv.CurrentWeight(cat), 7.0)

	inv.Remove("health_potion_small", 4, cat)
	testutil.AssertEqual(t, "current weight after remove", inv.CurrentWeight(cat), 5.0)
}

func TestInventory_CapacitySlots(t *testing.T) {
	cap := 1
	inv := NewCapped(&cap, nil)
	cat := potionCatalog()

	if !inv.Add("iron_sword", 1, cat) {
		t.Fatal("first add should succeed")
	}
	if inv.Add("ancient_key", 1, cat) {
		t.Fatal("second add should fail: slot cap exceeded")
	}
	if !inv.IsFull() {
		t.Fatal("expected inventory to report full")
	}
}

func TestInventory_CapacityWeight(t *testing.T) {
	capW := 4.0
	inv := NewCapped(nil, &capW)
	cat := potionCatalog()

	if inv.Add("iron_sword", 1, cat) {
		t.Fatal("expected add to fail: exceeds weight cap (5 > 4)")
	}
	if !inv.Add("health_potion_small", 8, cat) { // 8*0.5=4.0, exactly at cap
		t.Fatal("expected add at exact cap to succeed")
	}
}

func TestInventory_RemoveRejectsInsufficientQuantity(t *testing.T) {
	inv := New()
	cat := potionCatalog()
	inv.Add("health_potion_small", 1, cat)

	if inv.Remove("health_potion_small", 5, cat) {
		t.Fatal("expected remove to fail when quantity insufficient")
	}
	if inv.Remove("health_potion_small", 0, cat) {
		t.Fatal("expected remove of qty 0 to fail")
	}
}

func TestInventory_AddRejectsUnknownOrNonPositive(t *testing.T) {
	inv := New()
	cat := potionCatalog()

	if inv.Add("nonexistent", 1, cat) {
		t.Fatal("expected add of unknown item to fail")
	}
	if inv.Add("health_potion_small", 0, cat) {
		t.Fatal("expected add of qty 0 to fail")
	}
	if inv.Add("health_potion_small", -1, cat) {
		t.Fatal("expected add of negative qty to fail")
	}
}

func TestSlot_Split(t *testing.T) {
	s := &Slot{ItemID: "health_potion_small", Quantity: 5}

	if got := s.Split(0); got != nil {
		t.Fatalf("split of 0 should be a no-op, got %v", got)
	}
	if got := s.Split(5); got != nil {
		t.Fatalf("split of full quantity should be a no-op, got %v", got)
	}

	rest := s.Split(2)
	if rest == nil || rest.Quantity != 2 {
		t.Fatalf("expected split row of 2, got %v", rest)
	}
	testutil.AssertEqual(t, "remaining quantity", s.Quantity, 3)
}

func TestInventory_ToFromDictRoundTrip(t *testing.T) {
	inv := New()
	cat := potionCatalog()
	inv.Add("health_potion_small", 7, cat)

	state := inv.ToDict()
	restored := FromDict(state)

	testutil.AssertEqual(t, "restored quantity", restored.Quantity("health_potion_small"), 7)
}
