package engine

import (
	"context"
	"fmt"
)

// handleGive implements spec.md §4.5 GIVE: an admin/quest ingress that
// adds directly to an entity's inventory.
func (e *Engine) handleGive(ctx context.Context, entityID string, d Details) *Result {
	itemID, ok := e.resolveItemID(firstNonEmpty(d.ItemNameOrID, d.ItemName))
	if !ok {
		return fail(ReasonMissingItemData, "That item does not exist.")
	}
	qty := quantityOrDefault(d.Quantity)

	receiver := entityID
	if d.ReceiverID != "" {
		receiver = d.ReceiverID
	}

	inv := e.World.Inventory(receiver)
	if !inv.Add(itemID, qty, e.World.ItemLookup()) {
		return fail(ReasonInventoryAddFailed, "They cannot carry any more.")
	}

	def, _ := e.World.Catalog.ByID(itemID)
	e.emit(ctx, eventItemGiven, receiver, map[string]any{"item_id": itemID, "quantity": qty, "given_by": entityID})

	return ok(fmt.Sprintf("You receive %s.", displayName(def, itemID)), map[string]any{
		"item_id": itemID, "quantity": qty, "receiver_id": receiver,
	})
}
