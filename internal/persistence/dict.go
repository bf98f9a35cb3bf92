package persistence

import "github.com/ashfall/mudcore/internal/world"

// FileMetadata is the outer envelope metadata from spec.md §6.
type FileMetadata struct {
	GameID string `json:"game_id"`
	SavedAt string `json:"saved_at"`
	Version int    `json:"version"`
}

// WorldStateMetadata is the inner world_state.metadata block (spec.md
// §4.8: "metadata{serialized_at, version, serializer}"). Checksum is this
// rewrite's addition, grounded on golang.org/x/crypto/blake2b per
// SPEC_FULL.md §1.2, used to detect truncated/corrupted save files on
// load without gating save success on it.
type WorldStateMetadata struct {
	SerializedAt string `json:"serialized_at"`
	Version      int    `json:"version"`
	Serializer   string `json:"serializer"`
	Checksum     string `json:"checksum,omitempty"`
}

// WorldStateFile is the "world_state" object from spec.md §6.
type WorldStateFile struct {
	Metadata    WorldStateMetadata          `json:"metadata"`
	Locations   map[string]world.LocationDict  `json:"locations"`
	Containers  map[string]world.ContainerDict `json:"containers"`
	Player      map[string]world.PlayerDict    `json:"player"`
	GlobalState map[string]any                 `json:"global_state"`
}

// OnDiskFile is the full top-level JSON document spec.md §6 specifies.
type OnDiskFile struct {
	Metadata   FileMetadata   `json:"metadata"`
	WorldState WorldStateFile `json:"world_state"`
}

const schemaVersion = 1
const serializerName = "mudcore/persistence"

func toFileSnapshot(snap world.Snapshot) WorldStateFile {
	return WorldStateFile{
		Locations:   nilToEmptyLocations(snap.Locations),
		Containers:  nilToEmptyContainers(snap.Containers),
		Player:      nilToEmptyPlayers(snap.Player),
		GlobalState: nilToEmptyGlobal(snap.GlobalState),
	}
}

func nilToEmptyLocations(m map[string]world.LocationDict) map[string]world.LocationDict {
	if m == nil {
		return map[string]world.LocationDict{}
	}
	return m
}

func nilToEmptyContainers(m map[string]world.ContainerDict) map[string]world.ContainerDict {
	if m == nil {
		return map[string]world.ContainerDict{}
	}
	return m
}

func nilToEmptyPlayers(m map[string]world.PlayerDict) map[string]world.PlayerDict {
	if m == nil {
		return map[string]world.PlayerDict{}
	}
	return m
}

func nilToEmptyGlobal(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func fromFileSnapshot(f WorldStateFile) world.Snapshot {
	return world.Snapshot{
		Locations:   f.Locations,
		Containers:  f.Containers,
		Player:      f.Player,
		GlobalState: f.GlobalState,
	}
}
