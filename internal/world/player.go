package world

import "sort"

// PlayerState is the per-player record carried in WorldState (spec.md §3).
type PlayerState struct {
	PlayerID            string
	CurrentLocation      string
	DiscoveredLocations map[string]struct{}
}

// NewPlayerState creates an empty player record at the given location.
func NewPlayerState(playerID, startLocation string) *PlayerState {
	p := &PlayerState{
		PlayerID:            playerID,
		CurrentLocation:     startLocation,
		DiscoveredLocations: map[string]struct{}{},
	}
	if startLocation != "" {
		p.DiscoveredLocations[startLocation] = struct{}{}
	}
	return p
}

// Discover marks a location as known to the player.
func (p *PlayerState) Discover(locationID string) {
	p.DiscoveredLocations[locationID] = struct{}{}
}

// HasDiscovered reports whether the player has visited a location.
func (p *PlayerState) HasDiscovered(locationID string) bool {
	_, ok := p.DiscoveredLocations[locationID]
	return ok
}

// discoveredList returns a sorted slice view, since discovered_locations is
// "transported as a list but reconstituted as a set" (spec.md §4.8).
func (p *PlayerState) discoveredList() []string {
	out := make([]string, 0, len(p.DiscoveredLocations))
	for id := range p.DiscoveredLocations {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
