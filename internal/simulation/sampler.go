package simulation

import "math/rand"

// SampleFinalScore draws one plausible final fantasy score for a player's day.
//
// Cases, in order: no state or no game scores 0; a finished game scores what
// was already banked; no history scores what was already banked; otherwise a
// uniformly drawn historical game is scaled by the fraction left to play and
// added to the banked points.
func SampleFinalScore(state *LiveState, population []float64, rng *rand.Rand) float64 {
	if state == nil || !state.HasGameToday {
		return 0
	}
	if state.FractionDone >= 1 {
		return state.PointsSoFar
	}
	if len(population) == 0 {
		return state.PointsSoFar
	}

	draw := population[rng.Intn(len(population))]
	return state.PointsSoFar + draw*(1-state.FractionDone)
}

// Sampler draws one player's score. SampleFinalScore is the default.
type Sampler func(state *LiveState, population []float64, rng *rand.Rand) float64

// PlayerEntry is an active player with everything a trial needs already resolved.
type PlayerEntry struct {
	PlayerID   string
	State      *LiveState
	Population []float64
}

// SampleTeamScore sums one independent draw per active entry.
func SampleTeamScore(entries []PlayerEntry, sample Sampler, rng *rand.Rand) float64 {
	if sample == nil {
		sample = SampleFinalScore
	}

	total := 0.0
	for i := range entries {
		total += sample(entries[i].State, entries[i].Population, rng)
	}
	return total
}
