package persistence

import (
	"fmt"

	"github.com/ashfall/mudcore/internal/world"
	errors "github.com/pixil98/go-errors"
)

// ValidateFull enforces spec.md §4.8's save(partial=false) contract:
// locations, containers, and player must all be present. Containers may be
// an empty map (a fresh world with nothing dropped anywhere yet) but the
// key itself must exist, distinguishing "no containers" from "containers
// section omitted".
func ValidateFull(snap world.Snapshot) error {
	el := errors.NewErrorList()
	if snap.Locations == nil {
		el.Add(fmt.Errorf("locations section is required for a full save"))
	}
	if snap.Containers == nil {
		el.Add(fmt.Errorf("containers section is required for a full save"))
	}
	if snap.Player == nil {
		el.Add(fmt.Errorf("player section is required for a full save"))
	}
	for id, p := range snap.Player {
		if p.PlayerID == "" {
			el.Add(fmt.Errorf("player %q missing player_id", id))
		}
		if p.CurrentLocation == "" {
			el.Add(fmt.Errorf("player %q missing current_location", id))
		}
	}
	return el.Err()
}

// ValidatePartial enforces the lighter per-section shape checks spec.md
// §4.8 implies for save(partial=true): whatever sections are present must
// be internally well-formed, but no section is required and no
// cross-section completeness is expected.
func ValidatePartial(snap world.Snapshot) error {
	el := errors.NewErrorList()
	for id, p := range snap.Player {
		if id == "" {
			el.Add(fmt.Errorf("partial save contains a player entry with an empty key"))
		}
		if p.PlayerID != "" && p.PlayerID != id {
			el.Add(fmt.Errorf("player entry %q has mismatched player_id %q", id, p.PlayerID))
		}
	}
	for id, c := range snap.Containers {
		if c.ContainerID != "" && c.ContainerID != id {
			el.Add(fmt.Errorf("container entry %q has mismatched container_id %q", id, c.ContainerID))
		}
	}
	return el.Err()
}
