package engine

import (
	"context"

	"github.com/ashfall/mudcore/internal/bus"
)

const (
	eventItemTaken       = bus.EventItemTaken
	eventItemDropped     = bus.EventItemDropped
	eventItemUsed        = bus.EventItemUsed
	eventItemGiven       = bus.EventItemGiven
	eventEquipmentChange = bus.EventEquipmentChange
	eventInventoryChange = bus.EventInventoryChange
)

// emit is a no-op when no bus is wired (e.g. in unit tests that only
// exercise result values), matching spec.md §4.9's "events are... dropped"
// stance for an unavailable consumer.
func (e *Engine) emit(ctx context.Context, t bus.EventType, entityID string, data map[string]any) {
	if e.Bus == nil {
		return
	}
	e.Bus.Emit(ctx, bus.NewEvent(t, "engine", mergeSource(entityID, data)))
}

func mergeSource(entityID string, data map[string]any) map[string]any {
	out := map[string]any{"entity_id": entityID}
	for k, v := range data {
		out[k] = v
	}
	return out
}
