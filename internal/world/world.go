// Package world ties the item catalog, location container system, and
// per-entity Inventory/Equipment/PlayerState together into the single
// WorldState aggregate that the facade (internal/engine) and the
// persistence manager (internal/persistence) operate on (spec.md §3,
// component "—" in SPEC_FULL.md §2).
package world

import (
	"sync"

	"github.com/ashfall/mudcore/internal/catalog"
	"github.com/ashfall/mudcore/internal/equipment"
	"github.com/ashfall/mudcore/internal/inventory"
	"github.com/ashfall/mudcore/internal/location"
)

// WorldState is the explicit collaborator graph spec.md §9 calls for in
// place of "implicit globals": catalog, location system, and per-entity
// state are all owned here and passed to callers, never reached via
// package-level state.
type WorldState struct {
	mu sync.RWMutex

	Catalog   *catalog.Catalog
	Locations *location.System

	players     map[string]*PlayerState
	inventories map[string]*inventory.Inventory
	equipment   map[string]*equipment.Manager

	// GlobalState is the opaque bag for unrecognized persisted keys
	// (spec.md §3/§4.8 "global_state{} for unrecognized keys").
	GlobalState map[string]any
}

// New builds an empty WorldState around an already-loaded catalog.
func New(cat *catalog.Catalog) *WorldState {
	return &WorldState{
		Catalog:     cat,
		Locations:   location.New(),
		players:     map[string]*PlayerState{},
		inventories: map[string]*inventory.Inventory{},
		equipment:   map[string]*equipment.Manager{},
		GlobalState: map[string]any{},
	}
}

// Player returns the player's state, creating a fresh record at
// startLocation the first time an entity is seen.
func (w *WorldState) Player(playerID, startLocation string) *PlayerState {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[playerID]
	if !ok {
		p = NewPlayerState(playerID, startLocation)
		w.players[playerID] = p
	}
	return p
}

// LookupPlayer returns an existing player's state without creating one.
func (w *WorldState) LookupPlayer(playerID string) (*PlayerState, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	p, ok := w.players[playerID]
	return p, ok
}

// Inventory returns an entity's inventory, lazily creating an uncapped one.
func (w *WorldState) Inventory(entityID string) *inventory.Inventory {
	w.mu.Lock()
	defer w.mu.Unlock()
	inv, ok := w.inventories[entityID]
	if !ok {
		inv = inventory.New()
		w.inventories[entityID] = inv
	}
	return inv
}

// Equipment returns an entity's equipment manager, lazily creating one.
func (w *WorldState) Equipment(entityID string) *equipment.Manager {
	w.mu.Lock()
	defer w.mu.Unlock()
	mgr, ok := w.equipment[entityID]
	if !ok {
		mgr = equipment.New()
		w.equipment[entityID] = mgr
	}
	return mgr
}

// ItemLookup adapts the world's catalog to inventory.ItemLookup.
func (w *WorldState) ItemLookup() catalog.Lookup {
	return catalog.Lookup{C: w.Catalog}
}

// EquipLookup adapts the world's catalog to equipment.ItemCatalog.
func (w *WorldState) EquipLookup() catalog.EquipLookup {
	return catalog.EquipLookup{C: w.Catalog}
}

// PlayerIDs returns every known player id.
func (w *WorldState) PlayerIDs() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, 0, len(w.players))
	for id := range w.players {
		out = append(out, id)
	}
	return out
}
