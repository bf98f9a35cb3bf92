package engine

import "github.com/ashfall/mudcore/internal/catalog"

// displayName renders an item's name for user-facing messages, falling
// back to its id if the catalog lookup failed (should not happen in
// practice since callers resolve the id from the catalog first).
func displayName(def *catalog.ItemDef, fallbackID string) string {
	if def == nil {
		return fallbackID
	}
	return def.Name
}
