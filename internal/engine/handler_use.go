package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ashfall/mudcore/internal/catalog"
	"github.com/ashfall/mudcore/internal/inventory"
)

// handleUse implements spec.md §4.5 USE, dispatching by item type.
func (e *Engine) handleUse(ctx context.Context, entityID string, d Details) *Result {
	itemID, ok := e.resolveItemID(firstNonEmpty(d.ItemNameOrID, d.ItemName))
	if !ok {
		return fail(ReasonMissingItemData, "You don't have that.")
	}

	inv := e.World.Inventory(entityID)
	if !inv.Has(itemID, 1) {
		return fail(ReasonNotOwned, "You don't have that.")
	}

	def, ok := e.World.Catalog.ByID(itemID)
	if !ok {
		return fail(ReasonMissingItemData, "That item no longer exists.")
	}

	switch def.ItemType {
	case catalog.ItemTypeConsumable, catalog.ItemTypePotion, catalog.ItemTypeFood, catalog.ItemTypeScroll:
		return e.useConsumable(ctx, entityID, inv, def)
	case catalog.ItemTypeWeapon, catalog.ItemTypeArmor, catalog.ItemTypeShield:
		// Future-compat shim (spec.md §4.5): "use weapon" equips it.
		return e.handleEquip(ctx, entityID, d)
	case catalog.ItemTypeTool:
		return ok(mustExpand(tmplUseTool, map[string]any{"Item": def.Name}), map[string]any{"item_id": itemID})
	case catalog.ItemTypeKey:
		return e.useKey(ctx, entityID, inv, def)
	default:
		return ok(mustExpand(tmplUseDefault, map[string]any{"Item": def.Name}), map[string]any{"item_id": itemID})
	}
}

// useConsumable removes one unit and narrates each effect keyed in
// properties.effects (spec.md §4.5: "reads properties.effects keyed by
// {heal, mana, buff, ...}; produces a message per effect").
func (e *Engine) useConsumable(ctx context.Context, entityID string, inv *inventory.Inventory, def *catalog.ItemDef) *Result {
	if !inv.Remove(def.ItemID, 1, e.World.ItemLookup()) {
		return fail(ReasonInventoryRemovalFailed, fmt.Sprintf("You don't have %s.", def.Name))
	}

	messages := []string{mustExpand(tmplUseConsumable, map[string]any{"Item": def.Name})}
	effects := map[string]any{}
	if raw, ok := def.GetProperty("effects"); ok {
		if m, ok := raw.(map[string]any); ok {
			effects = m
		}
	}

	keys := make([]string, 0, len(effects))
	for k := range effects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		messages = append(messages, mustExpand(tmplEffectRestore, map[string]any{"Effect": k, "Amount": effects[k]}))
	}

	e.emit(ctx, eventItemUsed, entityID, map[string]any{"item_id": def.ItemID, "effects": effects})

	return ok(strings.Join(messages, " "), map[string]any{"item_id": def.ItemID, "effects": effects})
}

// useKey implements design note (c): a key is not consumed on use unless
// its properties.consumed_on_use is explicitly true.
func (e *Engine) useKey(ctx context.Context, entityID string, inv *inventory.Inventory, def *catalog.ItemDef) *Result {
	consumed := false
	if raw, ok := def.GetProperty("consumed_on_use"); ok {
		if b, ok := raw.(bool); ok && b {
			consumed = b
		}
	}
	if consumed {
		inv.Remove(def.ItemID, 1, e.World.ItemLookup())
	}
	e.emit(ctx, eventItemUsed, entityID, map[string]any{"item_id": def.ItemID, "consumed": consumed})
	return ok(fmt.Sprintf("You use %s.", def.Name), map[string]any{"item_id": def.ItemID, "consumed": consumed})
}
