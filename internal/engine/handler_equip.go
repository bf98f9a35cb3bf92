package engine

import (
	"context"
	"strings"

	"github.com/ashfall/mudcore/internal/equipment"
)

// handleEquip implements spec.md §4.5 EQUIP: resolve the item, delegate
// to equipment.Manager.Equip, and emit equipment_change with a player
// snapshot on success.
func (e *Engine) handleEquip(ctx context.Context, entityID string, d Details) *Result {
	nameOrID := firstNonEmpty(d.ItemName, d.ItemNameOrID)
	itemID, found := e.resolveItemID(nameOrID)
	if !found {
		return fail(ReasonMissingItemData, "You don't have anything like that.")
	}

	def, _ := e.World.EquipLookup().ByID(itemID)
	if def == nil {
		return fail(ReasonMissingItemData, "That item cannot be equipped.")
	}

	catalogDef, _ := e.World.Catalog.ByID(itemID)
	itemName := displayName(catalogDef, itemID)

	inv := e.World.Inventory(entityID)
	mgr := e.World.Equipment(entityID)
	preferred := equipment.Slot(strings.ToUpper(firstNonEmpty(d.Slot, d.SlotName)))

	res := mgr.Equip(itemID, def, itemName, inv, e.World.EquipLookup(), preferred)
	if !res.Success {
		return fail(ReasonCode(res.ReasonCode), res.Message)
	}

	e.emit(ctx, eventEquipmentChange, entityID, map[string]any{
		"item_id": itemID, "unequipped_items": res.UnequippedItems,
	})

	return ok(res.Message, map[string]any{
		"item_id": itemID, "unequipped_items": res.UnequippedItems,
	})
}
