package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestItemDef_Validate(t *testing.T) {
	tests := map[string]struct {
		def    ItemDef
		expErr string
	}{
		"missing item_id": {
			def:    ItemDef{Name: "Sword", ItemType: ItemTypeWeapon},
			expErr: "item_id is required",
		},
		"unknown type": {
			def:    ItemDef{ItemID: "x", Name: "x", ItemType: "BOGUS"},
			expErr: `unknown item_type "BOGUS"`,
		},
		"negative weight": {
			def:    ItemDef{ItemID: "x", Name: "x", ItemType: ItemTypeGeneric, Weight: -1},
			expErr: "weight must be non-negative",
		},
		"valid": {
			def: ItemDef{ItemID: "iron_sword", Name: "Iron Sword", ItemType: ItemTypeWeapon},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.def.Validate()
			if tc.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.expErr) {
				t.Fatalf("expected error containing %q, got %v", tc.expErr, err)
			}
		})
	}
}

func TestItemDef_normalize(t *testing.T) {
	d := &ItemDef{ItemID: "x", Name: "x", ItemType: ItemTypePotion, Stackable: true}
	d.normalize()
	testutil.AssertEqual(t, "max stack default", d.MaxStack, DefaultMaxStack)
	testutil.AssertEqual(t, "type tag present", d.HasTag("potion"), true)

	d2 := &ItemDef{ItemID: "y", Name: "y", ItemType: ItemTypeKey, Stackable: false, MaxStack: 5}
	d2.normalize()
	testutil.AssertEqual(t, "non-stackable forces max_stack 1", d2.MaxStack, 1)
}

func TestCatalog_RegisterAndQuery(t *testing.T) {
	c := New()
	c.Register(&ItemDef{
		ItemID:    "ancient_key",
		Name:      "Ancient Key",
		ItemType:  ItemTypeKey,
		Synonyms:  []string{"old key"},
		Tags:      []string{"quest"},
		Stackable: false,
	})

	if def, ok := c.ByID("ancient_key"); !ok || def.Name != "Ancient Key" {
		t.Fatalf("ByID failed: %v %v", def, ok)
	}
	if def, ok := c.ByName("ANCIENT KEY"); !ok || def.ItemID != "ancient_key" {
		t.Fatalf("ByName case-insensitive failed: %v %v", def, ok)
	}
	if def, ok := c.ByName("old key"); !ok || def.ItemID != "ancient_key" {
		t.Fatalf("ByName synonym failed: %v %v", def, ok)
	}
	if items := c.ByTag("quest"); len(items) != 1 {
		t.Fatalf("ByTag expected 1, got %d", len(items))
	}
	if items := c.ByTag("key"); len(items) != 1 {
		t.Fatalf("ByTag type-derived tag expected 1, got %d", len(items))
	}
	if items := c.ByType(ItemTypeKey); len(items) != 1 {
		t.Fatalf("ByType expected 1, got %d", len(items))
	}
	if items := c.Search("ancient"); len(items) != 1 {
		t.Fatalf("Search expected 1, got %d", len(items))
	}
	if _, ok := c.ByID("missing"); ok {
		t.Fatalf("expected missing id to be absent")
	}
}

func TestCatalog_Load(t *testing.T) {
	dir := t.TempDir()
	content := `{"items":[{"item_id":"health_potion_small","name":"Small Health Potion","item_type":"POTION","stackable":true,"weight":0.5,"value":10}]}`
	if err := os.WriteFile(filepath.Join(dir, "potions.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := New()
	if err := c.Load(context.Background(), dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def, ok := c.ByID("health_potion_small")
	if !ok {
		t.Fatal("expected item to be loaded")
	}
	testutil.AssertEqual(t, "max stack", def.MaxStack, DefaultMaxStack)
}
