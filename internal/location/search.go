package location

// SearchResult reports containers newly revealed by a search attempt.
type SearchResult struct {
	Found    []*Container
	Searched int
}

// Search implements spec.md §4.4's search_location(location_id,
// search_skill): every hidden container at the location whose
// DiscoveryDifficulty is at most search_skill becomes visible (IsHidden
// cleared). Already-visible containers are left untouched and not
// reported again.
func (s *System) Search(locationID string, searchSkill int) SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.byLocation[locationID]
	result := SearchResult{Searched: len(bucket)}
	for _, c := range bucket {
		if !c.IsHidden {
			continue
		}
		if c.DiscoveryDifficulty <= searchSkill {
			c.IsHidden = false
			result.Found = append(result.Found, c)
		}
	}
	return result
}

// Visible returns the containers at a location that are not currently
// hidden, i.e. what a plain "look" would show without searching.
func (s *System) Visible(locationID string) []*Container {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.byLocation[locationID]
	out := make([]*Container, 0, len(bucket))
	for _, c := range bucket {
		if !c.IsHidden {
			out = append(out, c)
		}
	}
	return out
}
