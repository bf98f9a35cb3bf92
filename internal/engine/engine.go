package engine

import (
	"context"
	"fmt"

	"github.com/ashfall/mudcore/internal/bus"
	"github.com/ashfall/mudcore/internal/world"
	"github.com/pixil98/go-log/log"
)

// Engine is the Inventory System Facade: every player command for
// inventory/equipment/container mutation routes through Handle.
type Engine struct {
	World *world.WorldState
	Bus   *bus.Bus
}

// New builds a facade over an already-populated WorldState and event bus.
func New(w *world.WorldState, b *bus.Bus) *Engine {
	return &Engine{World: w, Bus: b}
}

// Handle dispatches cmd for entityID, mirroring the teacher's
// Handler.Exec dispatch-by-name shape but keyed on the fixed Command enum
// instead of a JSON-configured handler registry (spec.md §4.5).
func (e *Engine) Handle(ctx context.Context, entityID string, cmd Command, details Details) (*Result, error) {
	logger := log.GetLogger(ctx)

	var res *Result
	switch cmd {
	case CommandTake:
		res = e.handleTake(ctx, entityID, details)
	case CommandDrop:
		res = e.handleDrop(ctx, entityID, details)
	case CommandUse:
		res = e.handleUse(ctx, entityID, details)
	case CommandInventoryView:
		res = e.handleInventoryView(ctx, entityID, details)
	case CommandGive:
		res = e.handleGive(ctx, entityID, details)
	case CommandEquip:
		res = e.handleEquip(ctx, entityID, details)
	case CommandUnequip:
		res = e.handleUnequip(ctx, entityID, details)
	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}

	if !res.Success {
		logger.Debugf("command %s for %s failed: %s", cmd, entityID, res.Message)
	}
	return res, nil
}

// resolveItemID resolves an item_name_or_id (or item_name) to a catalog
// id: tries a catalog name/synonym match first, then an exact id lookup.
func (e *Engine) resolveItemID(nameOrID string) (string, bool) {
	if nameOrID == "" {
		return "", false
	}
	if def, ok := e.World.Catalog.ByName(nameOrID); ok {
		return def.ItemID, true
	}
	if def, ok := e.World.Catalog.ByID(nameOrID); ok {
		return def.ItemID, true
	}
	return "", false
}

func quantityOrDefault(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}
