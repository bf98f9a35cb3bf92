package location

// LocationKind tags a location for seeding purposes (spec.md §4.4
// "Location seeding uses the location's type tag to generate typical
// containers"). Fixtures, not procedural generation.
type LocationKind string

const (
	KindVillage LocationKind = "village"
	KindRuin    LocationKind = "ruin"
	KindCave    LocationKind = "cave"
	KindShop    LocationKind = "shop"
	KindGeneric LocationKind = "generic"
)

// fixture describes one container to create during seeding.
type fixture struct {
	ctype       ContainerType
	name        string
	description string
	tier        Tier
	hidden      bool
	discovery   int
	keyRequired string
	locked      bool
	lockDiff    int
}

var seedFixtures = map[LocationKind][]fixture{
	KindVillage: {
		{ctype: TypeBarrel, name: "the village well", description: "a stone well ringed with moss"},
		{ctype: TypeBookshelf, name: "the notice board", description: "a weathered notice board pinned with flyers"},
	},
	KindRuin: {
		{ctype: TypeChest, name: "a hidden treasure chest", description: "a chest half-buried in rubble",
			hidden: true, discovery: 15, locked: true, lockDiff: 20, keyRequired: "ancient_key"},
	},
	KindCave: {
		{ctype: TypeLootContainer, name: "an ore vein", description: "a vein of raw ore embedded in the cave wall"},
	},
	KindShop: {
		{ctype: TypeShop, name: "the shop counter", description: "a counter stacked with wares for sale"},
	},
	KindGeneric: {
		{ctype: TypeBarrel, name: "a storage barrel", description: "an ordinary wooden barrel"},
	},
}

// Seed populates a location with its kind's fixture containers. It is not
// idempotent: calling it twice creates duplicate containers — callers seed
// a location exactly once, typically at world-creation time.
func (s *System) Seed(locationID string, kind LocationKind) []*Container {
	fixtures, ok := seedFixtures[kind]
	if !ok {
		fixtures = seedFixtures[KindGeneric]
	}

	out := make([]*Container, 0, len(fixtures))
	for _, f := range fixtures {
		c := s.CreateContainer(locationID, f.ctype, f.name, f.description, f.tier)
		if f.hidden {
			c.IsHidden = true
			c.DiscoveryDifficulty = f.discovery
		}
		if f.locked {
			c.IsLocked = true
			c.LockDifficulty = f.lockDiff
		}
		if f.keyRequired != "" {
			c.KeyRequired = f.keyRequired
		}
		out = append(out, c)
	}
	return out
}
