package inventory

// State is the serializable snapshot of an Inventory (spec.md §4.2
// to/from_dict). Capacities stay pointers: a nil (omitted) capacity means
// uncapped, so the shape round-trips cleanly through JSON.
type State struct {
	Slots          []Slot   `json:"slots"`
	CapacitySlots  *int     `json:"capacity_slots,omitempty"`
	CapacityWeight *float64 `json:"capacity_weight,omitempty"`
}

// ToDict captures the inventory's current state for serialization.
func (inv *Inventory) ToDict() State {
	return State{
		Slots:          inv.AllItems(),
		CapacitySlots:  inv.CapacitySlots,
		CapacityWeight: inv.CapacityWeight,
	}
}

// FromDict rebuilds an Inventory from a previously captured State. The
// weight cache is left stale until the next CurrentWeight/Stats call,
// per spec.md's "never incrementally trusted across reloads" rule.
func FromDict(s State) *Inventory {
	inv := NewCapped(s.CapacitySlots, s.CapacityWeight)
	inv.slots = make([]Slot, len(s.Slots))
	copy(inv.slots, s.Slots)
	inv.rebuildIndex()
	return inv
}
