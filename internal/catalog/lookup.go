package catalog

import (
	"github.com/ashfall/mudcore/internal/equipment"
	"github.com/ashfall/mudcore/internal/inventory"
)

// GetWeight, GetMaxStack, IsStackable, GetItemType and GetProperty let
// ItemDef satisfy both inventory.ItemInfo and equipment.ItemInfo, without
// either package needing to import catalog's concrete type.
func (d *ItemDef) GetWeight() float64 { return d.Weight }
func (d *ItemDef) GetMaxStack() int   { return d.MaxStack }
func (d *ItemDef) IsStackable() bool  { return d.Stackable }
func (d *ItemDef) GetItemType() string {
	return string(d.ItemType)
}
func (d *ItemDef) GetProperty(key string) (any, bool) {
	v, ok := d.Properties[key]
	return v, ok
}

// Lookup adapts a Catalog to the inventory.ItemLookup interface.
type Lookup struct{ C *Catalog }

func (l Lookup) ByID(id string) (inventory.ItemInfo, bool) {
	def, ok := l.C.ByID(id)
	if !ok {
		return nil, false
	}
	return def, true
}

// EquipLookup adapts a Catalog to the equipment.ItemCatalog interface.
type EquipLookup struct{ C *Catalog }

func (l EquipLookup) ByID(id string) (equipment.ItemInfo, bool) {
	def, ok := l.C.ByID(id)
	if !ok {
		return nil, false
	}
	return def, true
}
