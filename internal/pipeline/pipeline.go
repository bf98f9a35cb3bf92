package pipeline

import (
	"context"
	"time"

	"github.com/ashfall/mudcore/internal/engine"
	"github.com/ashfall/mudcore/internal/llmroute"
)

// facadeCommands maps the pipeline's Action enum to the subset of
// engine.Command values the Inventory System Facade (§4.5) actually
// implements. Actions outside this set (movement, look, talk, attack,
// help, search, unlock, cast_magic) are resolved structurally but never
// invoke the facade — they're out of this module's scope per spec.md's
// Non-goals.
var facadeCommands = map[Action]engine.Command{
	ActionTake:          engine.CommandTake,
	ActionDrop:          engine.CommandDrop,
	ActionUse:           engine.CommandUse,
	ActionInventoryView: engine.CommandInventoryView,
	ActionEquip:         engine.CommandEquip,
	ActionUnequip:       engine.CommandUnequip,
}

// Pipeline wires an EntityTagger and an llmroute.Client around the
// stateless prescan/regex/verb-noun stages, then invokes the Engine facade
// for any resolved action it implements.
type Pipeline struct {
	Engine     *engine.Engine
	Tagger     *EntityTagger
	LLM        llmroute.Client
	LLMTimeout time.Duration
}

// New builds a Pipeline. tagger may be nil to skip entity tagging (e.g. in
// tests that don't care about the confidence boost); llm may be nil to
// disable the fallback stage entirely.
func New(e *engine.Engine, tagger *EntityTagger, llm llmroute.Client) *Pipeline {
	return &Pipeline{Engine: e, Tagger: tagger, LLM: llm}
}

// Process runs text through the five stages in order and, if the resolved
// action maps to a facade command, executes it. It always returns the
// parsed Command; the *engine.Result is nil when the action has no facade
// mapping.
func (p *Pipeline) Process(ctx context.Context, entityID, text string) (*Command, *engine.Result, error) {
	cmd := p.resolve(ctx, text)

	action, ok := facadeCommands[cmd.Action]
	if !ok {
		return cmd, nil, nil
	}

	res, err := p.Engine.Handle(ctx, entityID, action, Details(cmd))
	if err != nil {
		return cmd, nil, err
	}

	if cmd.Source == "llm" {
		if res.Success {
			cmd.Confidence = 0.95
		} else {
			cmd.Confidence = 0.6
		}
	}

	return cmd, res, nil
}

// resolve runs the non-executing stages: prescan, entity tagging, regex
// bank, verb-noun fallback, then the LLM fallback if confidence is still
// too low or nothing resolved.
func (p *Pipeline) resolve(ctx context.Context, text string) *Command {
	if cmd := prescan(text); cmd != nil {
		p.tagAndBoost(cmd, text)
		return cmd
	}

	cmd := matchRegexBank(text)
	if cmd == nil {
		cmd = verbNounFallback(text)
	}

	if cmd != nil {
		p.tagAndBoost(cmd, text)
	}

	if cmd == nil || cmd.Confidence < 0.6 {
		if fromLLM := llmFallback(ctx, p.LLM, text, p.LLMTimeout); fromLLM != nil {
			p.tagAndBoost(fromLLM, text)
			cmd = fromLLM
		}
	}

	if cmd == nil {
		return &Command{
			Action:      ActionUnknown,
			Confidence:  0.1,
			Source:      "unresolved",
			Suggestions: partialVerbSuggestions(text),
		}
	}

	return cmd
}

func (p *Pipeline) tagAndBoost(cmd *Command, text string) {
	if p.Tagger == nil {
		return
	}
	entities := p.Tagger.Tag(text)
	if len(entities) == 0 {
		return
	}
	cmd.Context.Entities = entities
	cmd.Confidence = boostConfidence(cmd.Confidence, 0.1)
}

// Details adapts a resolved pipeline Command into the facade's Details
// envelope, folding the target and modifiers into whichever fields the
// target command reads (spec.md §4.5).
func Details(cmd *Command) engine.Details {
	d := engine.Details{
		ItemNameOrID: cmd.Target,
		Target:       cmd.Target,
	}
	if cmd.Modifiers.WithItem != "" {
		d.ContainerID = cmd.Modifiers.WithItem
	}
	if cmd.Modifiers.OnTarget != "" && d.ItemNameOrID == "" {
		d.ItemNameOrID = cmd.Modifiers.OnTarget
	}
	return d
}
