// Package llmroute is the external LLM tool-routing client (spec.md §4.7
// stage 5): a fixed tool schema of one tool per canonical action, sent to a
// remote chat-completion endpoint, returning which tool (if any) fired and
// with what argument.
package llmroute

import "context"

// Tool is one canonical action the LLM may route to, per spec.md §4.7:
// "move, look, take, drop, use, talk, attack, cast_magic, inventory,
// search, unlock, equip, unequip".
type Tool string

const (
	ToolMove      Tool = "move"
	ToolLook      Tool = "look"
	ToolTake      Tool = "take"
	ToolDrop      Tool = "drop"
	ToolUse       Tool = "use"
	ToolTalk      Tool = "talk"
	ToolAttack    Tool = "attack"
	ToolCastMagic Tool = "cast_magic"
	ToolInventory Tool = "inventory"
	ToolSearch    Tool = "search"
	ToolUnlock    Tool = "unlock"
	ToolEquip     Tool = "equip"
	ToolUnequip   Tool = "unequip"
)

// AllTools is the fixed schema sent with every request.
var AllTools = []Tool{
	ToolMove, ToolLook, ToolTake, ToolDrop, ToolUse, ToolTalk, ToolAttack,
	ToolCastMagic, ToolInventory, ToolSearch, ToolUnlock, ToolEquip, ToolUnequip,
}

// Route is the endpoint's response: which tool it selected (empty if none),
// the free-text argument that tool should act on, and whether the endpoint
// itself reported confidence in the match.
type Route struct {
	Tool      Tool
	Argument  string
	Succeeded bool
}

// Client resolves free text to a Route. The "take off X" family must always
// route to ToolUnequip, never ToolTake — callers are expected to bake this
// disambiguation rule into the prompt/system message of a real
// implementation (spec.md §4.7).
type Client interface {
	Route(ctx context.Context, text string) (Route, error)
}
