// Package pipeline implements the Command Pipeline (spec.md §4.7): raw
// text in, a resolved Command plus (when a handler actually ran) an
// executed engine.Result out. Stages run in the fixed order spec.md names:
// pre-scan fast-paths, entity tagger, regex bank, verb-noun fallback, LLM
// tool-routing fallback.
package pipeline

// Action is one of the canonical actions the pipeline can resolve to.
// These line up 1:1 with llmroute.Tool and engine.Command, but the
// pipeline keeps its own enum since "look", "movement", "talk", "attack",
// "help" and "unknown" have no facade command (they're out of this
// module's §4.5 scope, per spec.md's Non-goals) while still needing a
// label for the regex bank and suggestions machinery.
type Action string

const (
	ActionMove          Action = "move"
	ActionLook          Action = "look"
	ActionTake          Action = "take"
	ActionDrop          Action = "drop"
	ActionUse           Action = "use"
	ActionTalk          Action = "talk"
	ActionAttack        Action = "attack"
	ActionInventoryView Action = "inventory_view"
	ActionHelp          Action = "help"
	ActionSearch        Action = "search"
	ActionUnlock        Action = "unlock"
	ActionEquip         Action = "equip"
	ActionUnequip       Action = "unequip"
	ActionCastMagic     Action = "cast_magic"
	ActionUnknown       Action = "unknown"
)

// Modifiers carries the named capture groups the regex bank and fallback
// stages can populate, per spec.md §4.7 ("target and
// modifiers.{on_target, about_topic, with_item}").
type Modifiers struct {
	OnTarget   string `json:"on_target,omitempty"`
	AboutTopic string `json:"about_topic,omitempty"`
	WithItem   string `json:"with_item,omitempty"`
}

// Context carries ancillary parse state attached by earlier stages, most
// notably the entity tagger's matches (spec.md §4.7 stage 2).
type Context struct {
	Entities []string `json:"entities,omitempty"`
}

// Command is the pipeline's resolved output: an action, its target, any
// modifiers, a confidence score, and (on total failure) suggestions.
type Command struct {
	Action      Action    `json:"action"`
	Target      string    `json:"target,omitempty"`
	Modifiers   Modifiers `json:"modifiers,omitempty"`
	Context     Context   `json:"context,omitempty"`
	Confidence  float64   `json:"confidence"`
	Source      string    `json:"source"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

func boostConfidence(c float64, delta float64) float64 {
	c += delta
	if c > 1.0 {
		return 1.0
	}
	return c
}
