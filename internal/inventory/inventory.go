// Package inventory implements the stack-packed, capacity-capped item
// container (spec.md §4.2, component B). It resolves the teacher repo's own
// TODO in internal/game/inventory.go ("Add stackable item support (keyed by
// ObjectId with count) for commodities") by replacing the flat
// instance-id map with an ordered, stack-packing slot list.
package inventory

import (
	"fmt"
	"time"
)

// ItemLookup is the minimal catalog surface Inventory needs: weight and
// stacking rules for a given item id. catalog.Catalog satisfies this.
type ItemLookup interface {
	ByID(id string) (ItemInfo, bool)
}

// ItemInfo is the subset of an item definition Inventory math depends on.
type ItemInfo interface {
	GetWeight() float64
	GetMaxStack() int
	IsStackable() bool
}

// Stats summarizes an inventory's current utilization.
type Stats struct {
	SlotsUsed      int
	SlotsAvailable int // -1 when uncapped
	Weight         float64
	WeightAvailable float64 // -1 when uncapped
}

// Inventory is a per-entity, ordered list of non-empty slots with an index
// cache, optional slot and weight caps (spec.md §3).
type Inventory struct {
	slots []Slot
	index map[string][]int // item_id -> positions in slots, mirrors slots exactly

	CapacitySlots  *int
	CapacityWeight *float64

	currentWeight float64
	lastModified  time.Time
}

// New creates an empty, uncapped Inventory.
func New() *Inventory {
	return &Inventory{index: make(map[string][]int)}
}

// NewCapped creates an Inventory with the given optional caps. A nil
// pointer means "no cap" for that dimension.
func NewCapped(capSlots *int, capWeight *float64) *Inventory {
	inv := New()
	inv.CapacitySlots = capSlots
	inv.CapacityWeight = capWeight
	return inv
}

// LastModified reports when the inventory was last mutated.
func (inv *Inventory) LastModified() time.Time { return inv.lastModified }

// rebuildIndex reconstructs the item_id -> slot-position cache from
// scratch. Called after every structural mutation so the cache always
// mirrors the slot list exactly (spec.md §3 invariant).
func (inv *Inventory) rebuildIndex() {
	inv.index = make(map[string][]int, len(inv.slots))
	for i, s := range inv.slots {
		inv.index[s.ItemID] = append(inv.index[s.ItemID], i)
	}
}

func (inv *Inventory) recalcWeight(catalog ItemLookup) {
	var w float64
	for _, s := range inv.slots {
		if def, ok := catalog.ByID(s.ItemID); ok {
			w += float64(s.Quantity) * def.GetWeight()
		}
	}
	inv.currentWeight = w
}

// CurrentWeight returns the authoritative current weight, recomputed from
// slots rather than trusted incrementally across reloads (spec.md §4.2).
func (inv *Inventory) CurrentWeight(catalog ItemLookup) float64 {
	inv.recalcWeight(catalog)
	return inv.currentWeight
}

// canAdd pre-checks whether qty of item_id could be added without
// exceeding either cap. Exposed read-only via CanAdd for higher layers
// (equipment unequip must check space before mutating, spec.md §4.2/§4.3).
func (inv *Inventory) canAdd(itemID string, qty int, def ItemInfo) (bool, error) {
	if qty <= 0 {
		return false, fmt.Errorf("quantity must be positive, got %d", qty)
	}

	if inv.CapacityWeight != nil {
		if inv.currentWeightUnsafe()+float64(qty)*def.GetWeight() > *inv.CapacityWeight+1e-9 {
			return false, nil
		}
	}

	if inv.CapacitySlots != nil {
		needed := inv.rowsNeeded(itemID, qty, def)
		used := len(inv.slots)
		if used+needed > *inv.CapacitySlots {
			return false, nil
		}
	}

	return true, nil
}

func (inv *Inventory) currentWeightUnsafe() float64 {
	return inv.currentWeight
}

// rowsNeeded computes how many *new* rows adding qty of itemID requires,
// after filling existing compatible stack rows first.
func (inv *Inventory) rowsNeeded(itemID string, qty int, def ItemInfo) int {
	if !def.IsStackable() {
		return qty
	}

	remaining := qty
	for _, idx := range inv.index[itemID] {
		s := &inv.slots[idx]
		if s.hasInstanceProperties() {
			continue
		}
		room := def.GetMaxStack() - s.Quantity
		if room <= 0 {
			continue
		}
		if remaining <= room {
			return 0
		}
		remaining -= room
	}

	maxStack := def.GetMaxStack()
	if maxStack <= 0 {
		maxStack = 1
	}
	rows := remaining / maxStack
	if remaining%maxStack != 0 {
		rows++
	}
	return rows
}

// CanAdd is the read-only capacity pre-check, exposed for callers (like the
// equipment manager) that must verify space before attempting a mutation
// elsewhere.
func (inv *Inventory) CanAdd(itemID string, qty int, catalog ItemLookup) (bool, error) {
	def, ok := catalog.ByID(itemID)
	if !ok {
		return false, nil
	}
	inv.recalcWeight(catalog)
	return inv.canAdd(itemID, qty, def)
}

// Add places qty of itemID into the inventory, filling existing compatible
// stack rows first (in index order) before appending new rows. Returns
// false if qty <= 0, the item is unknown, or capacity would be exceeded.
func (inv *Inventory) Add(itemID string, qty int, catalog ItemLookup) bool {
	if qty <= 0 {
		return false
	}
	def, ok := catalog.ByID(itemID)
	if !ok {
		return false
	}

	inv.recalcWeight(catalog)
	can, err := inv.canAdd(itemID, qty, def)
	if err != nil || !can {
		return false
	}

	remaining := qty
	if def.IsStackable() {
		for _, idx := range inv.index[itemID] {
			if remaining == 0 {
				break
			}
			s := &inv.slots[idx]
			if s.hasInstanceProperties() {
				continue
			}
			room := def.GetMaxStack() - s.Quantity
			if room <= 0 {
				continue
			}
			take := min(room, remaining)
			s.Quantity += take
			remaining -= take
		}
	}

	maxStack := def.GetMaxStack()
	if maxStack <= 0 {
		maxStack = 1
	}
	for remaining > 0 {
		take := remaining
		if def.IsStackable() && take > maxStack {
			take = maxStack
		}
		inv.slots = append(inv.slots, Slot{ItemID: itemID, Quantity: take})
		remaining -= take
	}

	inv.rebuildIndex()
	inv.recalcWeight(catalog)
	inv.lastModified = now()
	return true
}

// Remove takes qty of itemID out of the inventory, decrementing across
// rows in index order and dropping rows that reach zero. Returns false if
// qty <= 0 or the inventory doesn't hold at least qty.
func (inv *Inventory) Remove(itemID string, qty int, catalog ItemLookup) bool {
	if qty <= 0 {
		return false
	}
	if !inv.Has(itemID, qty) {
		return false
	}

	remaining := qty
	var kept []Slot
	for _, s := range inv.slots {
		if s.ItemID != itemID || remaining == 0 {
			kept = append(kept, s)
			continue
		}
		take := min(s.Quantity, remaining)
		s.Quantity -= take
		remaining -= take
		if s.Quantity > 0 {
			kept = append(kept, s)
		}
	}
	inv.slots = kept

	inv.rebuildIndex()
	if catalog != nil {
		inv.recalcWeight(catalog)
	}
	inv.lastModified = now()
	return true
}

// Has reports whether the inventory holds at least qty of itemID.
func (inv *Inventory) Has(itemID string, qty int) bool {
	return inv.Quantity(itemID) >= qty
}

// Quantity returns the total quantity of itemID held, per
// invariant 1: I.quantity(k) == Σ{slot.qty : slot.item_id = k}.
func (inv *Inventory) Quantity(itemID string) int {
	total := 0
	for _, idx := range inv.index[itemID] {
		total += inv.slots[idx].Quantity
	}
	return total
}

// AllItems returns a copy of every slot, in order.
func (inv *Inventory) AllItems() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Summary returns total quantity per item id.
func (inv *Inventory) Summary() map[string]int {
	out := make(map[string]int, len(inv.index))
	for id := range inv.index {
		out[id] = inv.Quantity(id)
	}
	return out
}

// AvailableSlots returns remaining row capacity, or -1 if uncapped.
func (inv *Inventory) AvailableSlots() int {
	if inv.CapacitySlots == nil {
		return -1
	}
	avail := *inv.CapacitySlots - len(inv.slots)
	if avail < 0 {
		avail = 0
	}
	return avail
}

// AvailableWeight returns remaining weight capacity, or -1 if uncapped.
func (inv *Inventory) AvailableWeight(catalog ItemLookup) float64 {
	if inv.CapacityWeight == nil {
		return -1
	}
	inv.recalcWeight(catalog)
	avail := *inv.CapacityWeight - inv.currentWeight
	if avail < 0 {
		avail = 0
	}
	return avail
}

// IsFull reports whether the inventory has exhausted its slot capacity.
func (inv *Inventory) IsFull() bool {
	if inv.CapacitySlots == nil {
		return false
	}
	return len(inv.slots) >= *inv.CapacitySlots
}

// Clear empties the inventory.
func (inv *Inventory) Clear() {
	inv.slots = nil
	inv.index = make(map[string][]int)
	inv.currentWeight = 0
	inv.lastModified = now()
}

// Stats returns a utilization summary.
func (inv *Inventory) Stats(catalog ItemLookup) Stats {
	s := Stats{
		SlotsUsed: len(inv.slots),
	}
	if inv.CapacitySlots != nil {
		s.SlotsAvailable = inv.AvailableSlots()
	} else {
		s.SlotsAvailable = -1
	}
	s.Weight = inv.CurrentWeight(catalog)
	if inv.CapacityWeight != nil {
		s.WeightAvailable = inv.AvailableWeight(catalog)
	} else {
		s.WeightAvailable = -1
	}
	return s
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// now is a seam so tests can pin LastModified deterministically if needed.
var now = func() time.Time { return time.Now().UTC() }
