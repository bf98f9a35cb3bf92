// Package catalog holds the immutable item definitions loaded at startup.
// A Catalog is read-only after Load and safe for concurrent readers.
package catalog

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// ItemType classifies an ItemDef. The zero value is invalid.
type ItemType string

const (
	ItemTypeWeapon       ItemType = "WEAPON"
	ItemTypeArmor        ItemType = "ARMOR"
	ItemTypeShield       ItemType = "SHIELD"
	ItemTypeAccessory    ItemType = "ACCESSORY"
	ItemTypeConsumable   ItemType = "CONSUMABLE"
	ItemTypePotion       ItemType = "POTION"
	ItemTypeFood         ItemType = "FOOD"
	ItemTypeScroll       ItemType = "SCROLL"
	ItemTypeMaterial     ItemType = "MATERIAL"
	ItemTypeQuestItem    ItemType = "QUEST_ITEM"
	ItemTypeCurrency     ItemType = "CURRENCY"
	ItemTypeKey          ItemType = "KEY"
	ItemTypeTool         ItemType = "TOOL"
	ItemTypeContainer    ItemType = "CONTAINER"
	ItemTypeGeneric      ItemType = "GENERIC"
	ItemTypeOther        ItemType = "OTHER"
)

// ValidType reports whether t is a known ItemType, including the
// MATERIAL_* family which spec.md leaves open-ended (e.g. MATERIAL_ORE).
func ValidType(t ItemType) bool {
	if strings.HasPrefix(string(t), "MATERIAL_") || t == ItemTypeMaterial {
		return true
	}
	switch t {
	case ItemTypeWeapon, ItemTypeArmor, ItemTypeShield, ItemTypeAccessory,
		ItemTypeConsumable, ItemTypePotion, ItemTypeFood, ItemTypeScroll,
		ItemTypeQuestItem, ItemTypeCurrency, ItemTypeKey, ItemTypeTool,
		ItemTypeContainer, ItemTypeGeneric, ItemTypeOther:
		return true
	}
	return false
}

// DefaultMaxStack is applied to stackable items that don't specify one.
const DefaultMaxStack = 99

// ItemDef is an immutable, catalog-owned item definition. Equality and
// hashing are solely by ItemID.
type ItemDef struct {
	ItemID      string         `json:"item_id" yaml:"item_id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	ItemType    ItemType       `json:"item_type" yaml:"item_type"`
	Stackable   bool           `json:"stackable" yaml:"stackable"`
	MaxStack    int            `json:"max_stack" yaml:"max_stack"`
	Weight      float64        `json:"weight" yaml:"weight"`
	Value       int            `json:"value" yaml:"value"`
	Rarity      string         `json:"rarity" yaml:"rarity"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Synonyms    []string       `json:"synonyms" yaml:"synonyms"`
	Properties  map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// normalize applies the stackable/max_stack invariant and seeds the
// item_type tag, matching spec.md §3/§4.1: registering an item adds the
// lowercased item_type to its tag set.
func (d *ItemDef) normalize() {
	if !d.Stackable {
		d.MaxStack = 1
	} else if d.MaxStack <= 0 {
		d.MaxStack = DefaultMaxStack
	}

	typeTag := strings.ToLower(string(d.ItemType))
	for _, t := range d.Tags {
		if strings.ToLower(t) == typeTag {
			return
		}
	}
	d.Tags = append(d.Tags, typeTag)
}

// Validate satisfies storage.ValidatingSpec's shape used throughout the
// pack: accumulate every problem before failing.
func (d *ItemDef) Validate() error {
	el := errors.NewErrorList()

	if d.ItemID == "" {
		el.Add(fmt.Errorf("item_id is required"))
	}
	if d.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if !ValidType(d.ItemType) {
		el.Add(fmt.Errorf("item %q: unknown item_type %q", d.ItemID, d.ItemType))
	}
	if d.Weight < 0 {
		el.Add(fmt.Errorf("item %q: weight must be non-negative", d.ItemID))
	}
	if d.Value < 0 {
		el.Add(fmt.Errorf("item %q: value must be non-negative", d.ItemID))
	}
	if !d.Stackable && d.MaxStack > 1 {
		el.Add(fmt.Errorf("item %q: max_stack must be 1 when not stackable", d.ItemID))
	}

	return el.Err()
}

// MatchName reports whether name matches this item's Name or any synonym,
// case-insensitively (mirrors game.Object.MatchName).
func (d *ItemDef) MatchName(name string) bool {
	lower := strings.ToLower(name)
	if strings.ToLower(d.Name) == lower {
		return true
	}
	for _, syn := range d.Synonyms {
		if strings.ToLower(syn) == lower {
			return true
		}
	}
	return false
}

// HasTag reports whether tag (case-insensitive) is present on the item.
func (d *ItemDef) HasTag(tag string) bool {
	lower := strings.ToLower(tag)
	for _, t := range d.Tags {
		if strings.ToLower(t) == lower {
			return true
		}
	}
	return false
}
