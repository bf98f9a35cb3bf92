package engine

import (
	"context"
	"fmt"
)

// handleDrop implements spec.md §4.5 DROP: the mirror of TAKE — remove
// from inventory first, place into the target container (ground by
// default), restoring the inventory on failure.
func (e *Engine) handleDrop(ctx context.Context, entityID string, d Details) *Result {
	itemID, ok := e.resolveItemID(firstNonEmpty(d.ItemNameOrID, d.ItemName))
	if !ok {
		return fail(ReasonMissingItemData, "You aren't carrying anything like that.")
	}
	qty := quantityOrDefault(d.Quantity)

	player, found := e.World.LookupPlayer(entityID)
	if !found || player.CurrentLocation == "" {
		return fail(ReasonMissingParameters, "You cannot drop anything without a location.")
	}

	inv := e.World.Inventory(entityID)
	if !inv.Remove(itemID, qty, e.World.ItemLookup()) {
		return fail(ReasonInventoryRemovalFailed, "You don't have that many to drop.")
	}

	var placed bool
	if d.ContainerID != "" {
		placed = e.World.Locations.AddToContainer(d.ContainerID, itemID, qty, e.World.ItemLookup())
	} else {
		placed = e.World.Locations.DropToGround(player.CurrentLocation, itemID, qty, e.World.ItemLookup())
	}
	if !placed {
		// Compensating action: put it back in the inventory.
		inv.Add(itemID, qty, e.World.ItemLookup())
		return fail(ReasonInventoryAddFailed, "You cannot drop that here.")
	}

	def, _ := e.World.Catalog.ByID(itemID)
	e.emit(ctx, eventItemDropped, entityID, map[string]any{"item_id": itemID, "quantity": qty})

	return ok(fmt.Sprintf("You drop %s.", displayName(def, itemID)), map[string]any{
		"item_id": itemID, "quantity": qty,
	})
}
