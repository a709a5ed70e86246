package history

// Store is an immutable player id -> population table built once per run.
type Store struct {
	populations map[string][]float64
}

// NewStore builds a Store from a history document.
func NewStore(doc Document) *Store {
	pops := make(map[string][]float64, len(doc))
	for id, p := range doc {
		if pts := p.Points(); len(pts) > 0 {
			pops[id] = pts
		}
	}
	return &Store{populations: pops}
}

// NewStoreFromPopulations copies pops into a Store.
func NewStoreFromPopulations(pops map[string][]float64) *Store {
	out := make(map[string][]float64, len(pops))
	for id, values := range pops {
		if len(values) == 0 {
			continue
		}
		cp := make([]float64, len(values))
		copy(cp, values)
		out[id] = cp
	}
	return &Store{populations: out}
}

// Population implements simulation.HistoryStore.
func (s *Store) Population(playerID string) ([]float64, bool) {
	pop, ok := s.populations[playerID]
	return pop, ok
}

// Len is the number of players with at least one game.
func (s *Store) Len() int {
	return len(s.populations)
}
