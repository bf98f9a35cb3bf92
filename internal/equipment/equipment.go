// Package equipment implements the slotted equipped-item model with
// conflict resolution and auto-unequip (spec.md §4.3, component C).
package equipment

import (
	"fmt"
	"strings"
	"time"

	"github.com/ashfall/mudcore/internal/inventory"
)

// Slot is a fixed equipment body position (spec.md §3).
type Slot string

const (
	SlotMainHand  Slot = "MAIN_HAND"
	SlotOffHand   Slot = "OFF_HAND"
	SlotHead      Slot = "HEAD"
	SlotChest     Slot = "CHEST"
	SlotLegs      Slot = "LEGS"
	SlotFeet      Slot = "FEET"
	SlotHands     Slot = "HANDS"
	SlotNeck      Slot = "NECK"
	SlotRingLeft  Slot = "RING_LEFT"
	SlotRingRight Slot = "RING_RIGHT"
	SlotBracelet  Slot = "BRACELET"
	SlotBelt      Slot = "BELT"
	SlotBack      Slot = "BACK"
	SlotAmmo      Slot = "AMMO"
)

// AllSlots enumerates every valid Slot, used by validation and tests.
var AllSlots = []Slot{
	SlotMainHand, SlotOffHand, SlotHead, SlotChest, SlotLegs, SlotFeet,
	SlotHands, SlotNeck, SlotRingLeft, SlotRingRight, SlotBracelet,
	SlotBelt, SlotBack, SlotAmmo,
}

// ValidSlot reports whether s is a recognized EquipmentSlot.
func ValidSlot(s Slot) bool {
	for _, v := range AllSlots {
		if v == s {
			return true
		}
	}
	return false
}

// EquippedItem is one occupied equipment slot (spec.md §3).
type EquippedItem struct {
	ItemID             string         `json:"item_id"`
	Slot               Slot           `json:"slot"`
	EquippedAt         time.Time      `json:"equipped_at"`
	InstanceProperties map[string]any `json:"instance_properties,omitempty"`
}

// Manager is a per-entity mapping of Slot -> EquippedItem, at most one item
// per slot (spec.md §3 invariant 4).
type Manager struct {
	items map[Slot]*EquippedItem
}

// New creates an empty equipment Manager.
func New() *Manager {
	return &Manager{items: make(map[Slot]*EquippedItem)}
}

// Get returns the item equipped in slot, or nil.
func (m *Manager) Get(slot Slot) *EquippedItem {
	return m.items[slot]
}

// GetByItemID finds the first equipped row carrying itemID.
func (m *Manager) GetByItemID(itemID string) *EquippedItem {
	for _, item := range m.items {
		if item.ItemID == itemID {
			return item
		}
	}
	return nil
}

// Restore places item directly into slot, bypassing conflict checks. Used
// only when reconstructing a Manager from a persisted snapshot, where the
// conflicts were already resolved before the save.
func (m *Manager) Restore(slot Slot, item *EquippedItem) {
	item.Slot = slot
	m.items[slot] = item
}

// All returns every currently-equipped item.
func (m *Manager) All() []*EquippedItem {
	out := make([]*EquippedItem, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out
}

// ItemInfo is the subset of catalog data the equipment manager needs to
// compute slot admissibility and conflicts, in addition to what the
// inventory package needs for weight/stacking.
type ItemInfo interface {
	inventory.ItemInfo
	GetItemType() string
	GetProperty(key string) (any, bool)
}

// ItemCatalog resolves item ids to defs for the equipment manager.
type ItemCatalog interface {
	ByID(id string) (ItemInfo, bool)
}

// admissibleSlots computes the set of slots item type admits, per spec.md
// §4.3's slot-admissibility table.
func admissibleSlots(def ItemInfo) []Slot {
	switch strings.ToUpper(def.GetItemType()) {
	case "WEAPON":
		slots := []Slot{SlotMainHand}
		if wt, ok := def.GetProperty("weapon_type"); ok {
			switch strings.ToLower(fmt.Sprint(wt)) {
			case "dagger", "short_sword", "light":
				slots = append(slots, SlotOffHand)
			}
		}
		return slots
	case "SHIELD":
		return []Slot{SlotOffHand}
	case "ARMOR":
		if raw, ok := def.GetProperty("slots"); ok {
			return armorSlotsFromProperty(raw)
		}
		return armorSlotsFromType(def)
	case "ACCESSORY":
		return accessorySlots(def)
	default:
		return nil
	}
}

func armorSlotsFromProperty(raw any) []Slot {
	var out []Slot
	switch v := raw.(type) {
	case []string:
		for _, s := range v {
			slot := Slot(strings.ToUpper(s))
			if ValidSlot(slot) {
				out = append(out, slot)
			}
		}
	case []any:
		for _, s := range v {
			slot := Slot(strings.ToUpper(fmt.Sprint(s)))
			if ValidSlot(slot) {
				out = append(out, slot)
			}
		}
	}
	return out
}

func armorSlotsFromType(def ItemInfo) []Slot {
	raw, ok := def.GetProperty("armor_type")
	if !ok {
		return nil
	}
	switch strings.ToLower(fmt.Sprint(raw)) {
	case "chest", "body", "torso":
		return []Slot{SlotChest}
	case "head", "helmet":
		return []Slot{SlotHead}
	case "legs", "pants", "greaves":
		return []Slot{SlotLegs}
	case "feet", "boots", "shoes":
		return []Slot{SlotFeet}
	case "hands", "gloves", "gauntlets":
		return []Slot{SlotHands}
	default:
		return nil
	}
}

func accessorySlots(def ItemInfo) []Slot {
	raw, ok := def.GetProperty("accessory_type")
	if !ok {
		return nil
	}
	switch strings.ToLower(fmt.Sprint(raw)) {
	case "ring":
		return []Slot{SlotRingLeft, SlotRingRight}
	case "necklace":
		return []Slot{SlotNeck}
	case "bracelet":
		return []Slot{SlotBracelet}
	case "belt":
		return []Slot{SlotBelt}
	case "cloak":
		return []Slot{SlotBack}
	default:
		return nil
	}
}

func isTwoHanded(def ItemInfo) bool {
	v, ok := def.GetProperty("two_handed")
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

func contains(slots []Slot, s Slot) bool {
	for _, v := range slots {
		if v == s {
			return true
		}
	}
	return false
}
