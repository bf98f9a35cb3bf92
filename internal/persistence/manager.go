package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ashfall/mudcore/internal/bus"
	"github.com/ashfall/mudcore/internal/world"
	"github.com/pixil98/go-log/log"
)

// dirtySet tracks which of the four WorldState sections (spec.md §4.8)
// have changed since the last successful save.
type dirtySet struct {
	locations  bool
	containers bool
	player     bool
	global     bool
}

func (d dirtySet) any() bool {
	return d.locations || d.containers || d.player || d.global
}

func (d dirtySet) count() int {
	n := 0
	for _, v := range []bool{d.locations, d.containers, d.player, d.global} {
		if v {
			n++
		}
	}
	return n
}

func (d *dirtySet) clear() { *d = dirtySet{} }

// Manager is the World-State Persistence Manager (spec.md §4.8): it owns a
// live world.WorldState, a pluggable Backend, dirty-flag tracking driven off
// the Integration Bus, and full/partial save semantics with a cached
// baseline snapshot for merge-before-write.
type Manager struct {
	GameID  string
	Backend Backend
	World   *world.WorldState

	// AutoSaveEnabled, AutoSaveInterval, BackupInterval, and
	// DirtyCountThreshold configure ShouldAutoSave/ShouldBackup
	// (spec.md §4.8's auto-save design note). NewManager sets all four
	// (true, 300s, 3600s, 3); a Manager built without it starts from the
	// zero values.
	AutoSaveEnabled     bool
	AutoSaveInterval    time.Duration
	BackupInterval      time.Duration
	DirtyCountThreshold int

	mu            sync.Mutex
	dirty         dirtySet
	lastSnapshot  world.Snapshot
	hasSnapshot   bool
	lastSaveAt    time.Time
	lastBackupAt  time.Time
	activeSession bool
}

// NewManager wires a Backend to a live WorldState for one game session.
func NewManager(backend Backend, w *world.WorldState, gameID string) *Manager {
	return &Manager{
		GameID:              gameID,
		Backend:             backend,
		World:               w,
		AutoSaveEnabled:     true,
		AutoSaveInterval:    300 * time.Second,
		BackupInterval:      3600 * time.Second,
		DirtyCountThreshold: 3,
	}
}

// AttachBus subscribes to every Integration Bus event that mutates world
// state so the relevant dirty flags are set without the facade having to
// know anything about persistence (spec.md §4.8: "any facade mutation marks
// the appropriate flag via the integration bus").
func (m *Manager) AttachBus(b *bus.Bus) {
	m.activeSession = true

	markPlayer := func(ctx context.Context, evt bus.Event) { m.markDirty(dirtySet{player: true}) }
	markContainers := func(ctx context.Context, evt bus.Event) { m.markDirty(dirtySet{containers: true}) }
	markBoth := func(ctx context.Context, evt bus.Event) { m.markDirty(dirtySet{player: true, containers: true}) }
	markLocation := func(ctx context.Context, evt bus.Event) {
		m.markDirty(dirtySet{player: true, locations: true})
	}
	markGlobal := func(ctx context.Context, evt bus.Event) { m.markDirty(dirtySet{global: true}) }

	b.Subscribe(bus.EventItemTaken, markBoth)
	b.Subscribe(bus.EventItemDropped, markBoth)
	b.Subscribe(bus.EventItemUsed, markPlayer)
	b.Subscribe(bus.EventItemGiven, markPlayer)
	b.Subscribe(bus.EventEquipmentChange, markPlayer)
	b.Subscribe(bus.EventInventoryChange, markPlayer)
	b.Subscribe(bus.EventContainerUnlocked, markContainers)
	b.Subscribe(bus.EventContainerItemAdded, markContainers)
	b.Subscribe(bus.EventContainerItemRemoved, markContainers)
	b.Subscribe(bus.EventLocationChange, markLocation)
	b.Subscribe(bus.EventWorldStateChange, markGlobal)
}

func (m *Manager) markDirty(d dirtySet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirty.locations = m.dirty.locations || d.locations
	m.dirty.containers = m.dirty.containers || d.containers
	m.dirty.player = m.dirty.player || d.player
	m.dirty.global = m.dirty.global || d.global
}

// Save persists the current world state. When partial is false, the full
// live snapshot is validated and written whole, becoming the new merge
// baseline. When partial is true, only the currently-dirty sections are
// pulled from the live world and merged onto the last cached baseline
// before writing (spec.md §4.8: "save(partial=true) ... merges with the
// last cached snapshot before writing"; §8 invariant 9).
func (m *Manager) Save(ctx context.Context, partial bool) error {
	m.mu.Lock()
	dirty := m.dirty
	m.mu.Unlock()

	live := m.World.ToDict()

	var toWrite world.Snapshot
	if !partial {
		if err := ValidateFull(live); err != nil {
			return fmt.Errorf("validating full snapshot: %w", err)
		}
		toWrite = live
	} else {
		delta := partialSnapshot(live, dirty)
		if err := ValidatePartial(delta); err != nil {
			return fmt.Errorf("validating partial snapshot: %w", err)
		}
		base := m.baselineOrLoad(ctx)
		toWrite = mergeSnapshots(base, delta)
	}

	blob, err := m.encode(toWrite)
	if err != nil {
		return fmt.Errorf("encoding world state: %w", err)
	}

	// A persistence error is retried once before surfacing, per spec.md §7's
	// *persistence* error kind.
	err = m.Backend.Save(ctx, m.GameID, blob)
	if err != nil {
		log.GetLogger(ctx).Errorf("saving world state for %s failed, retrying once: %s", m.GameID, err.Error())
		err = m.Backend.Save(ctx, m.GameID, blob)
	}
	if err != nil {
		return fmt.Errorf("saving world state: %w", err)
	}

	m.mu.Lock()
	m.lastSnapshot = toWrite
	m.hasSnapshot = true
	m.lastSaveAt = time.Now().UTC()
	m.dirty.clear()
	m.mu.Unlock()

	return nil
}

// Load reads the backend's saved blob (if any) and merges it into the live
// world, establishing it as the new cached baseline.
func (m *Manager) Load(ctx context.Context) (bool, error) {
	blob, ok, err := m.Backend.Load(ctx, m.GameID)
	if err != nil {
		log.GetLogger(ctx).Errorf("loading world state for %s failed, retrying once: %s", m.GameID, err.Error())
		blob, ok, err = m.Backend.Load(ctx, m.GameID)
	}
	if err != nil {
		return false, fmt.Errorf("loading world state: %w", err)
	}
	if !ok {
		return false, nil
	}

	var file OnDiskFile
	if err := json.Unmarshal(blob, &file); err != nil {
		return false, fmt.Errorf("decoding world state: %w", err)
	}

	if err := verifyChecksum(file); err != nil {
		log.GetLogger(ctx).Errorf("save file for %s failed checksum verification: %s", m.GameID, err.Error())
	}

	snap := fromFileSnapshot(file.WorldState)
	m.World.Merge(snap)

	m.mu.Lock()
	m.lastSnapshot = snap
	m.hasSnapshot = true
	m.lastSaveAt = time.Now().UTC()
	m.dirty.clear()
	m.mu.Unlock()

	return true, nil
}

// baselineOrLoad returns the cached baseline snapshot, lazily loading it
// from the backend the first time a partial save runs in a fresh Manager
// (e.g. after a process restart with no prior in-memory Save/Load call).
func (m *Manager) baselineOrLoad(ctx context.Context) world.Snapshot {
	m.mu.Lock()
	if m.hasSnapshot {
		base := m.lastSnapshot
		m.mu.Unlock()
		return base
	}
	m.mu.Unlock()

	blob, ok, err := m.Backend.Load(ctx, m.GameID)
	if err != nil || !ok {
		return world.Snapshot{Locations: map[string]world.LocationDict{}, Containers: map[string]world.ContainerDict{}, Player: map[string]world.PlayerDict{}, GlobalState: map[string]any{}}
	}
	var file OnDiskFile
	if err := json.Unmarshal(blob, &file); err != nil {
		return world.Snapshot{Locations: map[string]world.LocationDict{}, Containers: map[string]world.ContainerDict{}, Player: map[string]world.PlayerDict{}, GlobalState: map[string]any{}}
	}
	return fromFileSnapshot(file.WorldState)
}

func (m *Manager) encode(snap world.Snapshot) ([]byte, error) {
	now := time.Now().UTC()
	wsf := toFileSnapshot(snap)
	wsf.Metadata = WorldStateMetadata{
		SerializedAt: now.Format(time.RFC3339),
		Version:      schemaVersion,
		Serializer:   serializerName,
	}
	wsf.Metadata.Checksum = checksum(wsf)

	file := OnDiskFile{
		Metadata: FileMetadata{
			GameID:  m.GameID,
			SavedAt: now.Format(time.RFC3339),
			Version: schemaVersion,
		},
		WorldState: wsf,
	}

	return json.MarshalIndent(file, "", "  ")
}

// partialSnapshot extracts only the dirty sections of live, leaving the
// rest as empty maps so the merge step below doesn't clobber untouched
// sections.
func partialSnapshot(live world.Snapshot, dirty dirtySet) world.Snapshot {
	out := world.Snapshot{
		Locations:   map[string]world.LocationDict{},
		Containers:  map[string]world.ContainerDict{},
		Player:      map[string]world.PlayerDict{},
		GlobalState: map[string]any{},
	}
	if dirty.locations {
		out.Locations = live.Locations
	}
	if dirty.containers {
		out.Containers = live.Containers
	}
	if dirty.player {
		out.Player = live.Player
	}
	if dirty.global {
		out.GlobalState = live.GlobalState
	}
	return out
}

// mergeSnapshots overlays delta's non-empty sections onto base, matching
// world.WorldState.Merge's own semantics but operating on two Snapshot
// values instead of a live WorldState.
func mergeSnapshots(base, delta world.Snapshot) world.Snapshot {
	out := world.Snapshot{
		Locations:   copyLocations(base.Locations),
		Containers:  copyContainers(base.Containers),
		Player:      copyPlayers(base.Player),
		GlobalState: copyGlobal(base.GlobalState),
	}
	for k, v := range delta.Locations {
		out.Locations[k] = v
	}
	for k, v := range delta.Containers {
		out.Containers[k] = v
	}
	for k, v := range delta.Player {
		out.Player[k] = v
	}
	for k, v := range delta.GlobalState {
		out.GlobalState[k] = v
	}
	return out
}

func copyLocations(m map[string]world.LocationDict) map[string]world.LocationDict {
	out := make(map[string]world.LocationDict, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyContainers(m map[string]world.ContainerDict) map[string]world.ContainerDict {
	out := make(map[string]world.ContainerDict, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyPlayers(m map[string]world.PlayerDict) map[string]world.PlayerDict {
	out := make(map[string]world.PlayerDict, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyGlobal(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
