package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/ashfall/mudcore/internal/llmroute"
)

// DefaultLLMTimeout bounds the external tool-routing call (spec.md §5: "the
// LLM fallback must honor a per-call deadline and degrade to the
// suggestions path on timeout").
const DefaultLLMTimeout = 3 * time.Second

var toolToAction = map[llmroute.Tool]Action{
	llmroute.ToolMove:      ActionMove,
	llmroute.ToolLook:      ActionLook,
	llmroute.ToolTake:      ActionTake,
	llmroute.ToolDrop:      ActionDrop,
	llmroute.ToolUse:       ActionUse,
	llmroute.ToolTalk:      ActionTalk,
	llmroute.ToolAttack:    ActionAttack,
	llmroute.ToolCastMagic: ActionCastMagic,
	llmroute.ToolInventory: ActionInventoryView,
	llmroute.ToolSearch:    ActionSearch,
	llmroute.ToolUnlock:    ActionUnlock,
	llmroute.ToolEquip:     ActionEquip,
	llmroute.ToolUnequip:   ActionUnequip,
}

// llmFallback calls client with a bounded deadline and maps a successful
// Route to a Command. A timeout or an unresolved route both return nil so
// the caller falls through to the suggestions path (spec.md §4.7 stage 5 /
// §5 cancellation rule).
func llmFallback(ctx context.Context, client llmroute.Client, text string, timeout time.Duration) *Command {
	if client == nil {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	route, err := client.Route(callCtx, text)
	if err != nil {
		return nil
	}
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return nil
	}
	if !route.Succeeded || route.Tool == "" {
		return nil
	}

	action, ok := toolToAction[route.Tool]
	if !ok {
		return nil
	}

	return &Command{
		Action:     action,
		Target:     route.Argument,
		Confidence: 0.6,
		Source:     "llm",
	}
}
