package engine

import (
	"context"
	"strings"

	"github.com/ashfall/mudcore/internal/equipment"
)

// handleUnequip implements spec.md §4.5 UNEQUIP: resolve either a target
// item or an explicit slot and delegate to equipment.Manager.Unequip.
func (e *Engine) handleUnequip(ctx context.Context, entityID string, d Details) *Result {
	inv := e.World.Inventory(entityID)
	mgr := e.World.Equipment(entityID)

	var by equipment.UnequipBy
	if slotStr := firstNonEmpty(d.Slot, d.SlotName); slotStr != "" {
		by.Slot = equipment.Slot(strings.ToUpper(slotStr))
	} else if nameOrID := firstNonEmpty(d.ItemName, d.ItemNameOrID, d.Target); nameOrID != "" {
		if itemID, found := e.resolveItemID(nameOrID); found {
			by.ItemID = itemID
		} else {
			by.ItemID = nameOrID
		}
	} else {
		return fail(ReasonMissingParameters, "Unequip what?")
	}

	res := mgr.Unequip(by, inv, e.World.EquipLookup())
	if !res.Success {
		return fail(ReasonCode(res.ReasonCode), res.Message)
	}

	e.emit(ctx, eventEquipmentChange, entityID, map[string]any{"unequipped_items": res.UnequippedItems})

	return ok(res.Message, map[string]any{"unequipped_items": res.UnequippedItems})
}
