package world

import (
	"sort"
	"time"

	"github.com/ashfall/mudcore/internal/equipment"
	"github.com/ashfall/mudcore/internal/inventory"
	"github.com/ashfall/mudcore/internal/location"
)

// LocationDict is the minimal persisted record for a location: the
// location/container topology itself lives in ContainerDict entries, keyed
// by container id, so this just marks the location as known to the world
// (spec.md §4.8 "WorldState is decomposed into locations{}, containers{},
// player{}").
type LocationDict struct {
	LocationID string `json:"location_id"`
}

// ContainerDict is the persisted shape of a location.Container.
type ContainerDict struct {
	ContainerID         string          `json:"container_id"`
	ContainerType        string          `json:"container_type"`
	LocationID           string          `json:"location_id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	IsLocked              bool            `json:"is_locked"`
	LockDifficulty        int             `json:"lock_difficulty"`
	KeyRequired           string          `json:"key_required,omitempty"`
	IsHidden              bool            `json:"is_hidden"`
	DiscoveryDifficulty   int             `json:"discovery_difficulty"`
	OwnerID               string          `json:"owner_id,omitempty"`
	RestrictTypes         []string        `json:"restrict_types,omitempty"`
	Inventory             inventory.State `json:"inventory"`
}

// EquippedItemDict is the persisted shape of an equipment.EquippedItem.
type EquippedItemDict struct {
	ItemID             string         `json:"item_id"`
	Slot               string         `json:"slot"`
	EquippedAt         string         `json:"equipped_at"`
	InstanceProperties map[string]any `json:"instance_properties,omitempty"`
}

// PlayerDict is the persisted shape of one player's full state.
type PlayerDict struct {
	PlayerID            string             `json:"player_id"`
	CurrentLocation      string             `json:"current_location"`
	DiscoveredLocations  []string           `json:"discovered_locations"`
	Inventory            inventory.State    `json:"inventory"`
	Equipment            []EquippedItemDict `json:"equipment"`
}

// Snapshot is the full decomposed WorldState, matching spec.md §6's on-disk
// "world_state" object shape exactly (metadata is attached by the
// persistence manager, not here).
type Snapshot struct {
	Locations   map[string]LocationDict  `json:"locations"`
	Containers  map[string]ContainerDict `json:"containers"`
	Player      map[string]PlayerDict    `json:"player"`
	GlobalState map[string]any           `json:"global_state"`
}

// ToDict produces a full decomposed snapshot of the world.
func (w *WorldState) ToDict() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snap := Snapshot{
		Locations:   map[string]LocationDict{},
		Containers:  map[string]ContainerDict{},
		Player:      map[string]PlayerDict{},
		GlobalState: w.GlobalState,
	}

	seenLocations := map[string]struct{}{}
	for _, c := range w.Locations.All() {
		snap.Containers[c.ContainerID] = containerToDict(c)
		seenLocations[c.LocationID] = struct{}{}
	}
	for _, p := range w.players {
		for locID := range p.DiscoveredLocations {
			seenLocations[locID] = struct{}{}
		}
	}
	for locID := range seenLocations {
		snap.Locations[locID] = LocationDict{LocationID: locID}
	}

	for id, p := range w.players {
		snap.Player[id] = w.playerToDict(id, p)
	}

	return snap
}

func containerToDict(c *location.Container) ContainerDict {
	return ContainerDict{
		ContainerID:         c.ContainerID,
		ContainerType:       string(c.ContainerType),
		LocationID:          c.LocationID,
		Name:                c.Name,
		Description:         c.Description,
		IsLocked:            c.IsLocked,
		LockDifficulty:      c.LockDifficulty,
		KeyRequired:         c.KeyRequired,
		IsHidden:            c.IsHidden,
		DiscoveryDifficulty: c.DiscoveryDifficulty,
		OwnerID:             c.OwnerID,
		RestrictTypes:       c.RestrictTypes,
		Inventory:           c.Inventory.ToDict(),
	}
}

func (w *WorldState) playerToDict(id string, p *PlayerState) PlayerDict {
	var equipped []EquippedItemDict
	if mgr, ok := w.equipment[id]; ok {
		for _, item := range mgr.All() {
			equipped = append(equipped, EquippedItemDict{
				ItemID:             item.ItemID,
				Slot:               string(item.Slot),
				EquippedAt:         item.EquippedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
				InstanceProperties: item.InstanceProperties,
			})
		}
	}
	sort.Slice(equipped, func(i, j int) bool { return equipped[i].Slot < equipped[j].Slot })

	inv := inventory.State{}
	if invPtr, ok := w.inventories[id]; ok {
		inv = invPtr.ToDict()
	}

	return PlayerDict{
		PlayerID:            id,
		CurrentLocation:     p.CurrentLocation,
		DiscoveredLocations: p.discoveredList(),
		Inventory:           inv,
		Equipment:           equipped,
	}
}

// Merge applies a partial snapshot on top of the world's current state,
// overwriting only the sections present in delta (spec.md §4.8 "save
// merges with the last cached snapshot"; §8 invariant 9).
func (w *WorldState) Merge(delta Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// delta.Locations needs no restoring of its own: ToDict derives it from
	// the containers and the players' discovered locations, both restored
	// below. No GROUND container is created here (invariant 6).
	for cid, cd := range delta.Containers {
		w.restoreContainer(cid, cd)
	}
	for pid, pd := range delta.Player {
		w.restorePlayer(pid, pd)
	}
	for k, v := range delta.GlobalState {
		w.GlobalState[k] = v
	}
}

func (w *WorldState) restoreContainer(id string, cd ContainerDict) {
	existing := w.Locations.Get(id)
	isNew := existing == nil
	if isNew {
		existing = &location.Container{ContainerID: id}
	}
	existing.ContainerType = location.ContainerType(cd.ContainerType)
	existing.LocationID = cd.LocationID
	existing.Name = cd.Name
	existing.Description = cd.Description
	existing.IsLocked = cd.IsLocked
	existing.LockDifficulty = cd.LockDifficulty
	existing.KeyRequired = cd.KeyRequired
	existing.IsHidden = cd.IsHidden
	existing.DiscoveryDifficulty = cd.DiscoveryDifficulty
	existing.OwnerID = cd.OwnerID
	existing.RestrictTypes = cd.RestrictTypes
	existing.Inventory = inventory.FromDict(cd.Inventory)
	if isNew {
		// Adopt only once LocationID is set, so it is filed under its location.
		w.Locations.AdoptContainer(existing)
	}
}

func (w *WorldState) restorePlayer(id string, pd PlayerDict) {
	p, ok := w.players[id]
	if !ok {
		p = NewPlayerState(id, pd.CurrentLocation)
		w.players[id] = p
	}
	p.CurrentLocation = pd.CurrentLocation
	for _, locID := range pd.DiscoveredLocations {
		p.Discover(locID)
	}

	w.inventories[id] = inventory.FromDict(pd.Inventory)

	mgr := equipment.New()
	for _, e := range pd.Equipment {
		equippedAt, _ := time.Parse(time.RFC3339, e.EquippedAt)
		mgr.Restore(equipment.Slot(e.Slot), &equipment.EquippedItem{
			ItemID:             e.ItemID,
			Slot:               equipment.Slot(e.Slot),
			EquippedAt:         equippedAt,
			InstanceProperties: e.InstanceProperties,
		})
	}
	w.equipment[id] = mgr
}
