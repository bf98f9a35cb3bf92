package engine

import "context"

// SlotView is one rendered inventory row for INVENTORY_VIEW (spec.md §4.5:
// "id, name, description, qty, type, rarity, weight, value, stackable,
// properties, display_name").
type SlotView struct {
	ID          string
	Name        string
	Description string
	Quantity    int
	ItemType    string
	Rarity      string
	Weight      float64
	Value       int
	Stackable   bool
	Properties  map[string]any
	DisplayName string
}

func (e *Engine) handleInventoryView(ctx context.Context, entityID string, d Details) *Result {
	inv := e.World.Inventory(entityID)
	rows := make([]SlotView, 0)
	for _, slot := range inv.AllItems() {
		def, ok := e.World.Catalog.ByID(slot.ItemID)
		view := SlotView{ID: slot.ItemID, Quantity: slot.Quantity}
		if ok {
			view.Name = def.Name
			view.Description = def.Description
			view.ItemType = string(def.ItemType)
			view.Rarity = def.Rarity
			view.Weight = def.Weight
			view.Value = def.Value
			view.Stackable = def.Stackable
			view.Properties = def.Properties
			view.DisplayName = def.Name
		}
		rows = append(rows, view)
	}

	stats := inv.Stats(e.World.ItemLookup())
	return ok("Here is your inventory.", map[string]any{
		"slots": rows,
		"stats": stats,
	})
}
