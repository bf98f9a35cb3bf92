package pipeline

import (
	"sort"
	"strings"
)

// verbSynonyms maps a leading verb to a canonical Action, used by the
// verb-noun fallback (spec.md §4.7 stage 4) when the regex bank finds no
// match. The remaining tokens become the target.
var verbSynonyms = map[string]Action{
	"go": ActionMove, "move": ActionMove, "walk": ActionMove, "head": ActionMove,
	"examine": ActionLook, "view": ActionLook, "inspect": ActionLook,
	"take": ActionTake, "get": ActionTake, "grab": ActionTake, "snatch": ActionTake,
	"drop": ActionDrop, "discard": ActionDrop, "toss": ActionDrop,
	"use": ActionUse, "apply": ActionUse, "drink": ActionUse, "eat": ActionUse,
	"talk": ActionTalk, "chat": ActionTalk, "speak": ActionTalk,
	"attack": ActionAttack, "fight": ActionAttack, "strike": ActionAttack,
	"cast": ActionCastMagic,
	"search": ActionSearch, "rummage": ActionSearch,
	"unlock": ActionUnlock,
	"equip":  ActionEquip, "wear": ActionEquip, "wield": ActionEquip, "don": ActionEquip,
	"unequip": ActionUnequip, "remove": ActionUnequip, "doff": ActionUnequip,
}

// verbNounFallback looks up the first token; remaining tokens form the
// target. Returns nil if the verb isn't recognized.
func verbNounFallback(text string) *Command {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(fields) == 0 {
		return nil
	}

	action, ok := verbSynonyms[fields[0]]
	if !ok {
		return nil
	}

	return &Command{
		Action:     action,
		Target:     strings.Join(fields[1:], " "),
		Confidence: 0.6,
		Source:     "verb_noun",
	}
}

// partialVerbSuggestions scans text's tokens for anything that prefix-
// matches a known verb, for the failure-handling suggestions list (spec.md
// §4.7: "a list of suggestions derived from partial verb matches").
func partialVerbSuggestions(text string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	seen := map[string]struct{}{}
	var out []string
	for _, f := range fields {
		for verb := range verbSynonyms {
			if strings.HasPrefix(verb, f) || strings.HasPrefix(f, verb) {
				if _, ok := seen[verb]; ok {
					continue
				}
				seen[verb] = struct{}{}
				out = append(out, verb)
			}
		}
	}
	sort.Strings(out)
	return out
}
