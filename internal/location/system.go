package location

import (
	"sync"

	"github.com/ashfall/mudcore/internal/inventory"
)

// System is the LocationContainerSystem: location_id -> container_id ->
// ContainerData, with at most one GROUND container per location, lazily
// created (spec.md §3/§4.4).
type System struct {
	mu         sync.RWMutex
	byLocation map[string]map[string]*Container
}

// New creates an empty location container system.
func New() *System {
	return &System{byLocation: make(map[string]map[string]*Container)}
}

// CreateContainer registers a new named container at a location.
func (s *System) CreateContainer(locationID string, ctype ContainerType, name, description string, tier Tier) *Container {
	c := CreateContainer(locationID, ctype, name, description, tier)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(c)
	return c
}

func (s *System) put(c *Container) {
	bucket, ok := s.byLocation[c.LocationID]
	if !ok {
		bucket = make(map[string]*Container)
		s.byLocation[c.LocationID] = bucket
	}
	bucket[c.ContainerID] = c
}

// AdoptContainer registers a fully-formed Container (e.g. one reconstructed
// from a persisted snapshot) under its own LocationID.
func (s *System) AdoptContainer(c *Container) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(c)
}

// Get returns a container by id, or nil.
func (s *System) Get(containerID string) *Container {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, bucket := range s.byLocation {
		if c, ok := bucket[containerID]; ok {
			return c
		}
	}
	return nil
}

// All returns every container across every location, used by persistence
// to decompose the full world state.
func (s *System) All() []*Container {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Container
	for _, bucket := range s.byLocation {
		for _, c := range bucket {
			out = append(out, c)
		}
	}
	return out
}

// ContainersAt returns every container at a location, including the
// ground container only if it has been created.
func (s *System) ContainersAt(locationID string) []*Container {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bucket := s.byLocation[locationID]
	out := make([]*Container, 0, len(bucket))
	for _, c := range bucket {
		out = append(out, c)
	}
	return out
}

// ensureGround lazily creates the single GROUND container for a location
// (spec.md §3: "Each location has at most one container of type GROUND,
// lazily created"). Caller must hold s.mu.
func (s *System) ensureGround(locationID string) *Container {
	bucket, ok := s.byLocation[locationID]
	if ok {
		for _, c := range bucket {
			if c.ContainerType == TypeGround {
				return c
			}
		}
	}
	c := CreateContainer(locationID, TypeGround, "the ground", "the ground", TierNormal)
	c.ContainerID = "ground_" + locationID
	// The GROUND behavior row has zero capacities; the ground pile itself
	// is uncapped so drops always land.
	c.Inventory = inventory.New()
	s.put(c)
	return c
}

// Ground returns a location's ground container, creating it if necessary.
func (s *System) Ground(locationID string) *Container {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureGround(locationID)
}

// groundExists reports whether a GROUND container has been created for a
// location, without creating one. It does not look at the container's
// contents; TakeFromGround prunes an emptied ground container so that
// invariant 6 holds (a GROUND container exists iff at least one drop has
// occurred and not everything has since been taken).
func (s *System) groundExists(locationID string) (*Container, bool) {
	bucket := s.byLocation[locationID]
	for _, c := range bucket {
		if c.ContainerType == TypeGround {
			return c, true
		}
	}
	return nil, false
}

// DropToGround places qty of itemID on a location's ground, lazily
// creating the ground container.
func (s *System) DropToGround(locationID, itemID string, qty int, catalog inventory.ItemLookup) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ground := s.ensureGround(locationID)
	return ground.Inventory.Add(itemID, qty, catalog)
}

// TakeFromGround removes qty of itemID from a location's ground. After a
// successful take that empties the ground container entirely, the
// container is pruned so invariant 6 holds (it "exists iff" something is
// there).
func (s *System) TakeFromGround(locationID, itemID string, qty int, catalog inventory.ItemLookup) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ground, ok := s.groundExists(locationID)
	if !ok {
		return false
	}
	if !ground.Inventory.Remove(itemID, qty, catalog) {
		return false
	}
	if len(ground.Inventory.AllItems()) == 0 {
		delete(s.byLocation[locationID], ground.ContainerID)
	}
	return true
}

// AddToContainer proxies to a named container's inventory with the same
// contract as the inventory package (spec.md §4.4).
func (s *System) AddToContainer(containerID, itemID string, qty int, catalog inventory.ItemLookup) bool {
	c := s.Get(containerID)
	if c == nil {
		return false
	}
	if def, ok := catalog.ByID(itemID); ok {
		if typed, ok := def.(interface{ GetItemType() string }); ok && !c.AllowsType(typed.GetItemType()) {
			return false
		}
	}
	return c.Inventory.Add(itemID, qty, catalog)
}

// RemoveFromContainer proxies removal from a named container.
func (s *System) RemoveFromContainer(containerID, itemID string, qty int, catalog inventory.ItemLookup) bool {
	c := s.Get(containerID)
	if c == nil {
		return false
	}
	return c.Inventory.Remove(itemID, qty, catalog)
}
