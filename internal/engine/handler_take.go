package engine

import (
	"context"
	"fmt"
)

// handleTake implements spec.md §4.5 TAKE: resolve the item, pull it from
// the location's ground (or a named container), and add it to the
// entity's inventory, restoring the source on add failure.
func (e *Engine) handleTake(ctx context.Context, entityID string, d Details) *Result {
	itemID, ok := e.resolveItemID(firstNonEmpty(d.ItemNameOrID, d.ItemName))
	if !ok {
		return fail(ReasonMissingItemData, "You don't see anything like that to take.")
	}
	qty := quantityOrDefault(d.Quantity)

	player, found := e.World.LookupPlayer(entityID)
	if !found || player.CurrentLocation == "" {
		return fail(ReasonMissingParameters, "You cannot take anything without a location.")
	}

	removed := false
	if d.ContainerID != "" {
		removed = e.World.Locations.RemoveFromContainer(d.ContainerID, itemID, qty, e.World.ItemLookup())
	} else {
		removed = e.World.Locations.TakeFromGround(player.CurrentLocation, itemID, qty, e.World.ItemLookup())
	}
	if !removed {
		return fail(ReasonNotFound, "You don't see that here.")
	}

	inv := e.World.Inventory(entityID)
	if !inv.Add(itemID, qty, e.World.ItemLookup()) {
		// Compensating action: restore to the source.
		if d.ContainerID != "" {
			e.World.Locations.AddToContainer(d.ContainerID, itemID, qty, e.World.ItemLookup())
		} else {
			e.World.Locations.DropToGround(player.CurrentLocation, itemID, qty, e.World.ItemLookup())
		}
		return fail(ReasonInventoryAddFailed, "You cannot carry any more.")
	}

	def, _ := e.World.Catalog.ByID(itemID)
	e.emit(ctx, eventItemTaken, entityID, map[string]any{"item_id": itemID, "quantity": qty})

	return ok(fmt.Sprintf("You take %s.", displayName(def, itemID)), map[string]any{
		"item_id": itemID, "quantity": qty,
	})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
