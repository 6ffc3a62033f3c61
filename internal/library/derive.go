package library

type alternateTitles struct {
	generation uint64
	titles     map[int]string
}

// deriveAlternateTitles rebuilds the alternate-titles map off the caller's
// goroutine unless every item already has an entry. The map is swapped in
// whole, so readers of the previous map are unaffected, and an older
// derivation never replaces a newer one.
func (s *Store[T]) deriveAlternateTitles(items []T) {
	if current := s.altTitles.Load(); current != nil {
		covered := 0
		for _, item := range items {
			if _, ok := current.titles[item.Identity()]; ok {
				covered++
			}
		}
		if covered == len(items) {
			return
		}
	}

	gen := s.generation.Add(1)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		next := &alternateTitles{generation: gen, titles: make(map[int]string, len(items))}
		for _, item := range items {
			next.titles[item.Identity()] = item.AlternateTitlesString()
		}
		for {
			current := s.altTitles.Load()
			if current != nil && current.generation > gen {
				return
			}
			if s.altTitles.CompareAndSwap(current, next) {
				break
			}
		}
		s.status.Emit("alternate-titles")
	}()
}

// AlternateTitles returns the identity to alternate-titles map of the newest
// completed derivation. It may be nil and must not be modified.
func (s *Store[T]) AlternateTitles() map[int]string {
	if current := s.altTitles.Load(); current != nil {
		return current.titles
	}
	return nil
}
