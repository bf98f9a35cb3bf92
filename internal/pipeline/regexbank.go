package pipeline

import "regexp"

// pattern is one labeled entry in the ordered regex bank (spec.md §4.7
// stage 3). Capture groups named "target", "on_target", "about_topic", and
// "with_item" feed the corresponding Command fields.
type pattern struct {
	label  Action
	regexp *regexp.Regexp
}

// regexBank is the ordered set of labeled patterns; the first successful
// match wins, matching the teacher's staged-resolution style of trying
// search spaces in order (internal/commands/resolve.go's FindTarget).
var regexBank = []pattern{
	{ActionMove, regexp.MustCompile(`(?i)^(?:go|move|walk|head)\s+(?P<target>\w+)$`)},
	{ActionMove, regexp.MustCompile(`(?i)^(north|south|east|west|up|down|northeast|northwest|southeast|southwest)$`)},
	{ActionLook, regexp.MustCompile(`(?i)^look(?:\s+at\s+(?P<on_target>.+)|\s+(?P<target>.+))?$`)},
	{ActionTake, regexp.MustCompile(`(?i)^(?:take|get|grab|pick up)\s+(?P<target>.+?)(?:\s+from\s+(?P<with_item>.+))?$`)},
	{ActionDrop, regexp.MustCompile(`(?i)^(?:drop|discard)\s+(?P<target>.+)$`)},
	{ActionUse, regexp.MustCompile(`(?i)^use\s+(?P<target>.+?)(?:\s+on\s+(?P<on_target>.+))?$`)},
	{ActionTalk, regexp.MustCompile(`(?i)^(?:talk to|speak to|speak with)\s+(?P<target>.+?)(?:\s+about\s+(?P<about_topic>.+))?$`)},
	{ActionAttack, regexp.MustCompile(`(?i)^(?:attack|fight|hit)\s+(?P<target>.+?)(?:\s+with\s+(?P<with_item>.+))?$`)},
	{ActionInventoryView, regexp.MustCompile(`(?i)^(?:inventory|inv|i)$`)},
	{ActionHelp, regexp.MustCompile(`(?i)^help(?:\s+(?P<target>.+))?$`)},
	{ActionSearch, regexp.MustCompile(`(?i)^search(?:\s+(?P<target>.+))?$`)},
	{ActionUnlock, regexp.MustCompile(`(?i)^unlock\s+(?P<target>.+?)(?:\s+with\s+(?P<with_item>.+))?$`)},
	{ActionUnequip, regexp.MustCompile(`(?i)^unequip\s+(?P<target>.+)$`)},
}

// matchRegexBank returns the first matching pattern's Command, or nil.
func matchRegexBank(text string) *Command {
	for _, p := range regexBank {
		m := p.regexp.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		cmd := &Command{Action: p.label, Confidence: 0.8, Source: "regex"}
		names := p.regexp.SubexpNames()
		for i, name := range names {
			if i == 0 || i >= len(m) || m[i] == "" {
				continue
			}
			switch name {
			case "target":
				cmd.Target = m[i]
			case "on_target":
				cmd.Modifiers.OnTarget = m[i]
				if cmd.Target == "" {
					cmd.Target = m[i]
				}
			case "about_topic":
				cmd.Modifiers.AboutTopic = m[i]
			case "with_item":
				cmd.Modifiers.WithItem = m[i]
			}
		}
		return cmd
	}
	return nil
}
