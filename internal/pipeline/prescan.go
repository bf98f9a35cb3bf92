package pipeline

import "strings"

// prescan implements spec.md §4.7 stage 1: literal "take off X", "take X
// off", "unequip X", "remove X" are rewritten to UNEQUIP at maximum
// confidence before any generic parsing runs, so they never fall through to
// the regex bank's TAKE pattern. Returns nil if text doesn't match any
// fast-path.
func prescan(text string) *Command {
	lower := strings.ToLower(strings.TrimSpace(text))

	if target, ok := strip(lower, "take off "); ok {
		return fastPathUnequip(target)
	}
	if target, ok := stripSuffix(lower, "take ", " off"); ok {
		return fastPathUnequip(target)
	}
	if target, ok := strip(lower, "unequip "); ok {
		return fastPathUnequip(target)
	}
	if target, ok := strip(lower, "remove "); ok {
		return fastPathUnequip(target)
	}

	return nil
}

func fastPathUnequip(target string) *Command {
	return &Command{
		Action:     ActionUnequip,
		Target:     strings.TrimSpace(target),
		Confidence: 0.95,
		Source:     "prescan",
	}
}

func strip(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	return strings.TrimPrefix(s, prefix), true
}

func stripSuffix(s, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(s, prefix), suffix), true
}
