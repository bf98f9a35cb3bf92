package llmroute

import (
	"context"
	"strings"
)

// MockClient is a deterministic stand-in for the real chat-completion
// endpoint: a small ordered verb→tool table with the "take off X"
// disambiguation rule applied first, exactly as spec.md §4.7 requires of
// the real prompt. This is the default wiring whenever no live endpoint is
// configured (SPEC_FULL.md §6).
type MockClient struct {
	// Verbs maps a leading verb to the tool it routes to. Populated with
	// sensible defaults by NewMockClient; callers may add/override entries.
	Verbs map[string]Tool
}

// NewMockClient builds a MockClient with a default verb table covering
// every tool in AllTools.
func NewMockClient() *MockClient {
	return &MockClient{
		Verbs: map[string]Tool{
			"go": ToolMove, "move": ToolMove, "walk": ToolMove,
			"look": ToolLook, "examine": ToolLook,
			"take": ToolTake, "get": ToolTake, "grab": ToolTake,
			"drop": ToolDrop, "discard": ToolDrop,
			"use": ToolUse,
			"talk": ToolTalk, "speak": ToolTalk,
			"attack": ToolAttack, "fight": ToolAttack, "hit": ToolAttack,
			"cast": ToolCastMagic,
			"inventory": ToolInventory, "inv": ToolInventory,
			"search": ToolSearch,
			"unlock": ToolUnlock,
			"equip": ToolEquip, "wear": ToolEquip, "wield": ToolEquip,
			"unequip": ToolUnequip, "remove": ToolUnequip,
		},
	}
}

// Route never errors; an unresolved input simply reports Succeeded=false
// with an empty Tool.
func (c *MockClient) Route(ctx context.Context, text string) (Route, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if isTakeOffFamily(lower) {
		return Route{Tool: ToolUnequip, Argument: takeOffTarget(lower), Succeeded: true}, nil
	}

	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return Route{}, nil
	}

	tool, ok := c.Verbs[fields[0]]
	if !ok {
		return Route{}, nil
	}

	return Route{Tool: tool, Argument: strings.Join(fields[1:], " "), Succeeded: true}, nil
}

// isTakeOffFamily matches the disambiguation rule the prompt must encode:
// "take off X"/"take X off" always routes to UNEQUIP, never TAKE.
func isTakeOffFamily(lower string) bool {
	return strings.HasPrefix(lower, "take off ") || (strings.HasPrefix(lower, "take ") && strings.HasSuffix(lower, " off"))
}

func takeOffTarget(lower string) string {
	switch {
	case strings.HasPrefix(lower, "take off "):
		return strings.TrimSpace(strings.TrimPrefix(lower, "take off "))
	case strings.HasSuffix(lower, " off"):
		rest := strings.TrimSuffix(lower, " off")
		return strings.TrimSpace(strings.TrimPrefix(rest, "take "))
	default:
		return lower
	}
}
