package equipment

// numericStatKeys are the fields get_equipment_stats folds across every
// equipped item (spec.md §4.3).
var numericStatKeys = []string{"armor", "damage", "strength", "dexterity", "intelligence", "constitution"}

// StatTotals is the folded result of get_equipment_stats.
type StatTotals struct {
	Numeric        map[string]float64
	Resistances    map[string]float64
	SpecialEffects []string
}

// GetEquipmentStats folds numeric fields, resistances and special_effects
// across every equipped item's properties. Numeric fields accept either a
// scalar or a {base?, bonus?} shape, summing both when present.
func (m *Manager) GetEquipmentStats(catalog ItemCatalog) StatTotals {
	totals := StatTotals{
		Numeric:     make(map[string]float64, len(numericStatKeys)),
		Resistances: make(map[string]float64),
	}

	for _, equipped := range m.items {
		def, ok := catalog.ByID(equipped.ItemID)
		if !ok {
			continue
		}

		for _, key := range numericStatKeys {
			totals.Numeric[key] += extractNumeric(def, key)
		}

		if raw, ok := def.GetProperty("resistances"); ok {
			for k, v := range toFloatMap(raw) {
				totals.Resistances[k] += v
			}
		}

		if raw, ok := def.GetProperty("special_effects"); ok {
			totals.SpecialEffects = append(totals.SpecialEffects, toStringSlice(raw)...)
		}
	}

	return totals
}

func extractNumeric(def ItemInfo, key string) float64 {
	raw, ok := def.GetProperty(key)
	if !ok {
		return 0
	}
	switch v := raw.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	case map[string]any:
		return toFloat(v["base"]) + toFloat(v["bonus"])
	default:
		return 0
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func toFloatMap(raw any) map[string]float64 {
	out := make(map[string]float64)
	m, ok := raw.(map[string]any)
	if !ok {
		return out
	}
	for k, v := range m {
		out[k] = toFloat(v)
	}
	return out
}

func toStringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
