package spell

// Modifications is the composition input spec.md §4.6 describes: scalar
// multipliers for power/cost/time, enum-index deltas for duration/range/area,
// and extra elements contributed by the casting location's affinities.
type Modifications struct {
	PowerMultiplier float64
	CostMultiplier  float64
	TimeMultiplier  float64
	DurationDelta   int
	RangeDelta      int
	AreaDelta       int
	AddElements     []Element
}

// Instance is the derived, per-cast result of Instantiate. Unlike Template,
// an Instance carries no identity beyond the TemplateID it came from; it is
// never registered or looked up.
type Instance struct {
	TemplateID    string
	Name          string
	Elements      []Element
	Power         float64
	Duration      Tier
	Range         Tier
	Area          Tier
	ManaCost      int
	CastingTimeMs int
	FocusRequired bool
	Components    []string
}

// Instantiate derives an Instance from tmpl by applying mods, in the order
// spec.md §4.6 specifies: scalar multiply power/cost/time first, then shift
// duration/range/area by their enum-index deltas (clamped to bounds), then
// union in any location-contributed elements.
func Instantiate(tmpl *Template, mods Modifications) *Instance {
	power := tmpl.BasePower
	if mods.PowerMultiplier != 0 {
		power *= mods.PowerMultiplier
	}

	cost := float64(tmpl.ManaCost)
	if mods.CostMultiplier != 0 {
		cost *= mods.CostMultiplier
	}

	castTime := float64(tmpl.CastingTimeMs)
	if mods.TimeMultiplier != 0 {
		castTime *= mods.TimeMultiplier
	}

	duration := (tmpl.BaseDuration + Tier(mods.DurationDelta)).clamp()
	rng := (tmpl.BaseRange + Tier(mods.RangeDelta)).clamp()
	area := (tmpl.BaseArea + Tier(mods.AreaDelta)).clamp()

	return &Instance{
		TemplateID:    tmpl.ID,
		Name:          tmpl.Name,
		Elements:      unionElements(tmpl.Elements, mods.AddElements),
		Power:         power,
		Duration:      duration,
		Range:         rng,
		Area:          area,
		ManaCost:      int(cost),
		CastingTimeMs: int(castTime),
		FocusRequired: tmpl.FocusRequired,
		Components:    tmpl.Components,
	}
}

func unionElements(base, extra []Element) []Element {
	seen := make(map[Element]struct{}, len(base)+len(extra))
	out := make([]Element, 0, len(base)+len(extra))
	for _, e := range base {
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	for _, e := range extra {
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// LocationAffinityModifications derives the AddElements component of a
// Modifications from a location's magical affinities (spec.md §4.6:
// "element additions derived from the location's magical affinities"),
// leaving the scalar/enum-index fields for the caller to fill in.
func LocationAffinityModifications(affinities []Element) Modifications {
	return Modifications{AddElements: affinities}
}
