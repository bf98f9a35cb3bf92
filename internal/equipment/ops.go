package equipment

import (
	"fmt"
	"time"

	"github.com/ashfall/mudcore/internal/inventory"
)

// Result is the uniform result envelope for equipment operations
// (spec.md §4.3).
type Result struct {
	Success         bool
	Message         string
	ReasonCode      string
	UnequippedItems []*EquippedItem
}

// asItemLookup adapts an ItemCatalog to inventory.ItemLookup so inventory
// operations can be driven from the same catalog the equipment manager
// already holds, without inventory depending on equipment's richer
// ItemInfo type.
type asItemLookup struct{ catalog ItemCatalog }

func (a asItemLookup) ByID(id string) (inventory.ItemInfo, bool) {
	def, ok := a.catalog.ByID(id)
	if !ok {
		return nil, false
	}
	return def, true
}

// Equip implements spec.md §4.3's equip algorithm, including the
// corrected two-sided two-handed-weapon conflict check from REDESIGN
// FLAGS (blocking OFF_HAND when MAIN_HAND holds a two-hander, not just
// the reverse).
func (m *Manager) Equip(itemID string, def ItemInfo, itemName string, inv *inventory.Inventory, catalog ItemCatalog, preferredSlot Slot) Result {
	lookup := asItemLookup{catalog}

	if !inv.Has(itemID, 1) {
		return Result{ReasonCode: "not_in_inventory", Message: fmt.Sprintf("You cannot equip %s because you aren't carrying it.", itemName)}
	}

	admissible := admissibleSlots(def)
	if len(admissible) == 0 {
		return Result{ReasonCode: "no_valid_slots", Message: fmt.Sprintf("You cannot equip %s because it isn't equippable.", itemName)}
	}

	target := selectSlot(admissible, preferredSlot, m)
	conflicts := m.conflictsFor(target, def, catalog)

	var unequipped []*EquippedItem
	for _, slot := range conflicts {
		res := m.Unequip(UnequipBy{Slot: slot}, inv, catalog)
		if !res.Success {
			return Result{ReasonCode: "unequip_failed", Message: fmt.Sprintf("You cannot equip %s because %s cannot be removed.", itemName, slotLabel(slot))}
		}
		unequipped = append(unequipped, res.UnequippedItems...)
	}

	if !inv.Remove(itemID, 1, lookup) {
		return Result{ReasonCode: "inventory_removal_failed", Message: fmt.Sprintf("You cannot equip %s because it could not be removed from your inventory.", itemName)}
	}

	m.items[target] = &EquippedItem{ItemID: itemID, Slot: target, EquippedAt: time.Now().UTC()}

	return Result{
		Success:         true,
		Message:         fmt.Sprintf("You equip %s on your %s.", itemName, slotLabel(target)),
		UnequippedItems: unequipped,
	}
}

// UnequipBy selects the equipped row to remove: exactly one of ItemID or
// Slot must be set (spec.md §4.3).
type UnequipBy struct {
	ItemID string
	Slot   Slot
}

// Unequip implements spec.md §4.3's unequip algorithm: space check first,
// then delete-then-add with restoration on add failure.
func (m *Manager) Unequip(by UnequipBy, inv *inventory.Inventory, catalog ItemCatalog) Result {
	lookup := asItemLookup{catalog}

	var equipped *EquippedItem
	switch {
	case by.Slot != "":
		equipped = m.items[by.Slot]
	case by.ItemID != "":
		equipped = m.GetByItemID(by.ItemID)
	}
	if equipped == nil {
		return Result{ReasonCode: "not_found", Message: "You aren't wearing that."}
	}

	if _, ok := catalog.ByID(equipped.ItemID); !ok {
		return Result{ReasonCode: "not_found", Message: "You aren't wearing that."}
	}

	can, _ := inv.CanAdd(equipped.ItemID, 1, lookup)
	if !can {
		return Result{ReasonCode: "inventory_full", Message: "You cannot remove that because your inventory is full."}
	}

	delete(m.items, equipped.Slot)
	if !inv.Add(equipped.ItemID, 1, lookup) {
		m.items[equipped.Slot] = equipped // restore on failure
		return Result{ReasonCode: "inventory_add_failed", Message: "You cannot remove that because your inventory rejected it."}
	}

	return Result{Success: true, Message: "You remove that.", UnequippedItems: []*EquippedItem{equipped}}
}

// selectSlot picks the target slot per spec.md §4.3 step 3: preferred slot
// when admissible, else ring-left-before-right, else first admissible.
func selectSlot(admissible []Slot, preferred Slot, m *Manager) Slot {
	if preferred != "" && contains(admissible, preferred) {
		return preferred
	}
	if contains(admissible, SlotRingLeft) && contains(admissible, SlotRingRight) {
		if m.items[SlotRingLeft] == nil {
			return SlotRingLeft
		}
		return SlotRingRight
	}
	return admissible[0]
}

// conflictsFor computes which occupied slots must be cleared before
// equip can proceed: the two-handed conflict (both directions) and the
// target slot itself if occupied.
func (m *Manager) conflictsFor(target Slot, def ItemInfo, catalog ItemCatalog) []Slot {
	var conflicts []Slot

	if target == SlotMainHand && isTwoHanded(def) {
		if m.items[SlotOffHand] != nil {
			conflicts = append(conflicts, SlotOffHand)
		}
	}
	if target == SlotOffHand {
		if main := m.items[SlotMainHand]; main != nil {
			if mainDef, ok := catalog.ByID(main.ItemID); ok && isTwoHanded(mainDef) {
				conflicts = append(conflicts, SlotMainHand)
			}
		}
	}

	if m.items[target] != nil && !contains(conflicts, target) {
		conflicts = append(conflicts, target)
	}

	return conflicts
}

func slotLabel(s Slot) string {
	switch s {
	case SlotMainHand:
		return "main hand"
	case SlotOffHand:
		return "off hand"
	case SlotRingLeft:
		return "left ring finger"
	case SlotRingRight:
		return "right ring finger"
	default:
		return string(s)
	}
}
